package dbase

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"
)

// Header is the decoded table header. It never changes after decoding.
// https://docs.microsoft.com/en-us/previous-versions/visualstudio/foxpro/st4a0s68(v=vs.80)#table-header-record-structure
type Header struct {
	Version    FileVersion // File type flag
	LastUpdate time.Time   // Last update date, year taken as 1900 + stored byte
	RowsCount  uint32      // Number of rows in file
	FirstRow   uint16      // Position of first data row
	RowLength  uint16      // Length of one data row, including delete flag
	TableFlags byte        // Table flags
	CodePage   byte        // Code page mark
}

// rawHeader mirrors the 32 header bytes as stored on disk.
type rawHeader struct {
	FileType   byte     // File type flag
	Year       uint8    // Last update year (0-255, added to 1900)
	Month      uint8    // Last update month
	Day        uint8    // Last update day
	RowsCount  uint32   // Number of rows in file
	FirstRow   uint16   // Position of first data row
	RowLength  uint16   // Length of one data row, including delete flag
	Reserved   [16]byte // Reserved
	TableFlags byte     // Table flags
	CodePage   byte     // Code page mark
	Reserved2  [2]byte  // Reserved
}

// DecodeHeader decodes the first 32 bytes of a table file.
//
// The year byte is always added to 1900, for every file version.
// Files written after 1999 by dBase III or FoxPro therefore decode to the wrong century, this is kept on purpose.
func DecodeHeader(b []byte) (*Header, error) {
	if len(b) < headerSize {
		return nil, newError("dbase-header-decode-1", &IOError{Op: "read header", Offset: int64(len(b)), Err: io.ErrUnexpectedEOF})
	}
	raw := &rawHeader{}
	// LittleEndian - Integers in table files are stored with the least significant byte first.
	if err := binary.Read(bytes.NewReader(b[:headerSize]), binary.LittleEndian, raw); err != nil {
		return nil, newError("dbase-header-decode-2", &IOError{Op: "read header", Err: err})
	}
	version := FileVersion(raw.FileType)
	if !version.valid() {
		return nil, newError("dbase-header-decode-3", &FormatError{Kind: UnsupportedVersion, Byte: raw.FileType})
	}
	modified, err := lastUpdate(raw.Year, raw.Month, raw.Day)
	if err != nil {
		return nil, newError("dbase-header-decode-4", err)
	}
	debugf("Header: version %v, last update %v, rows %d, first row %d, row length %d", version, modified.Format("2006-01-02"), raw.RowsCount, raw.FirstRow, raw.RowLength)
	return &Header{
		Version:    version,
		LastUpdate: modified,
		RowsCount:  raw.RowsCount,
		FirstRow:   raw.FirstRow,
		RowLength:  raw.RowLength,
		TableFlags: raw.TableFlags,
		CodePage:   raw.CodePage,
	}, nil
}

// ReadHeader seeks to the start of r and decodes the table header.
func ReadHeader(r io.ReadSeeker) (*Header, error) {
	debugf("Reading header...")
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, newError("dbase-header-read-1", &IOError{Op: "seek header", Err: err})
	}
	b := make([]byte, headerSize)
	n, err := io.ReadFull(r, b)
	if err != nil {
		return nil, newError("dbase-header-read-2", &IOError{Op: "read header", Offset: int64(n), Err: unexpected(err)})
	}
	return DecodeHeader(b)
}

func lastUpdate(year, month, day uint8) (time.Time, error) {
	y := 1900 + int(year)
	if month < 1 || month > 12 {
		return time.Time{}, &FormatError{Kind: InvalidDate, Year: y, Month: int(month), Day: int(day)}
	}
	t := time.Date(y, time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflowing days into the next month
	if t.Month() != time.Month(month) || t.Day() != int(day) {
		return time.Time{}, &FormatError{Kind: InvalidDate, Year: y, Month: int(month), Day: int(day)}
	}
	return t, nil
}

// ColumnsCount returns the number of column descriptors implied by FirstRow.
// Files do not always agree with their terminator byte, see ReadColumns.
func (h *Header) ColumnsCount() int {
	n := (int(h.FirstRow)-1)/descriptorSize - 1
	if n < 0 {
		return 0
	}
	return n
}

// FileSize returns the table size calculated from the header alone.
func (h *Header) FileSize() int64 {
	return int64(h.FirstRow) + int64(h.RowsCount)*int64(h.RowLength)
}

// HasMemo reports whether the version byte announces a companion memo file.
func (h *Header) HasMemo() bool {
	return h.Version == DBase3Memo || h.Version == DBase4Memo || h.Version == FoxProMemo
}
