package dbase

import "fmt"

// FileVersion is the file type flag stored in the first byte of a table file.
type FileVersion byte

// Supported table versions. Any other first byte is rejected while decoding the header.
const (
	DBase        FileVersion = 0x03 // dBase table without memo
	DBase3Memo   FileVersion = 0x83 // dBase III table with memo
	DBase4Memo   FileVersion = 0x8B // dBase IV/5 table with memo
	FoxProMemo   FileVersion = 0xF5 // FoxPro table with memo
	VisualFoxPro FileVersion = 0x30 // Visual FoxPro table without memo
)

func (v FileVersion) String() string {
	switch v {
	case DBase:
		return "dBase file without memo"
	case DBase3Memo:
		return "dBase III file with memo"
	case DBase4Memo:
		return "dBase IV/5 file with memo"
	case FoxProMemo:
		return "FoxPro file with memo"
	case VisualFoxPro:
		return "Visual FoxPro file without memo"
	default:
		return fmt.Sprintf("unknown file version 0x%02X", byte(v))
	}
}

func (v FileVersion) valid() bool {
	switch v {
	case DBase, DBase3Memo, DBase4Memo, FoxProMemo, VisualFoxPro:
		return true
	}
	return false
}

// DataType is the column type tag stored at byte 11 of a column descriptor.
type DataType byte

const (
	Character DataType = 0x43 // C - Character
	Numeric   DataType = 0x4E // N - Numeric
	Float     DataType = 0x46 // F - Float
	Date      DataType = 0x44 // D - Date
	Logical   DataType = 0x4C // L - Logical
	Memo      DataType = 0x4D // M - Memo
	Integer   DataType = 0x49 // I - Integer (FoxPro)
	Currency  DataType = 0x59 // Y - Currency (FoxPro)
	DateTime  DataType = 0x54 // T - DateTime (FoxPro)
	Double    DataType = 0x42 // B - Double (FoxPro)
)

// Returns the type tag as a one letter string
func (t DataType) String() string {
	return string(t)
}

func (t DataType) valid() bool {
	switch t {
	case Character, Numeric, Float, Date, Logical, Memo, Integer, Currency, DateTime, Double:
		return true
	}
	return false
}

// Only text and the two numeric types carry a size and decimal count.
func (t DataType) sized() bool {
	return t == Character || t == Numeric || t == Float
}

// Marker is a single byte with a structural meaning.
type Marker byte

const (
	Null      Marker = 0x00
	Blank     Marker = 0x20
	ColumnEnd Marker = 0x0D
	Active           = Blank
	Deleted   Marker = 0x2A
	EOFMarker Marker = 0x1A
)

// Fixed sizes of the table structures.
const (
	headerSize     = 32
	descriptorSize = 32
	nameSize       = 11
)

var (
	nameTerminator = []byte{byte(Null)}
	memoTerminator = []byte{byte(EOFMarker), byte(EOFMarker)}
)
