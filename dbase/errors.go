package dbase

import (
	"errors"
	"fmt"
)

var (
	// Returned for every structural problem in a table or memo file.
	ErrFormat = errors.New("FORMAT")
	// The first byte of the table is not a known file version.
	ErrUnsupportedVersion = errors.New("UNSUPPORTED_VERSION")
	// The last update date in the table header is not a calendar date.
	ErrInvalidDate = errors.New("INVALID_DATE")
	// A column descriptor carries an unknown type tag.
	ErrUnsupportedFieldType = errors.New("UNSUPPORTED_FIELD_TYPE")
	// A dBase IV memo block declares a total length smaller than its own block header.
	ErrLengthUnderflow = errors.New("LENGTH_UNDERFLOW")
	// A memo payload could not be projected to text.
	ErrEncoding = errors.New("INVALID_ENCODING")
	// Returned when a row beyond the last one is requested.
	ErrEOF = errors.New("EOF")
	// Returned when a read did not deliver all requested bytes.
	ErrIncomplete = errors.New("INCOMPLETE")
	// Returned when the table file is missing.
	ErrNoDBF = errors.New("DBF_FILE_NOT_FOUND")
	// Returned when memo access is requested but no memo file is attached.
	ErrNoMemo = errors.New("MEMO_FILE_NOT_FOUND")
)

// FormatErrorKind names the structural defect behind a FormatError.
type FormatErrorKind uint8

const (
	UnsupportedVersion FormatErrorKind = iota + 1
	InvalidDate
	UnsupportedFieldType
	LengthUnderflow
)

func (k FormatErrorKind) String() string {
	switch k {
	case UnsupportedVersion:
		return "unsupported version"
	case InvalidDate:
		return "invalid date"
	case UnsupportedFieldType:
		return "unsupported field type"
	case LengthUnderflow:
		return "length underflow"
	default:
		return "unknown"
	}
}

func (k FormatErrorKind) sentinel() error {
	switch k {
	case UnsupportedVersion:
		return ErrUnsupportedVersion
	case InvalidDate:
		return ErrInvalidDate
	case UnsupportedFieldType:
		return ErrUnsupportedFieldType
	case LengthUnderflow:
		return ErrLengthUnderflow
	default:
		return nil
	}
}

// FormatError reports a structural defect in a table or memo file.
// Only the fields relevant to the kind are set.
type FormatError struct {
	Kind   FormatErrorKind
	Byte   byte   // Offending version or type byte
	Year   int    // Decoded year for InvalidDate
	Month  int    // Raw month for InvalidDate
	Day    int    // Raw day for InvalidDate
	Column string // Column name for UnsupportedFieldType
	Offset int64  // Byte offset of the offending structure
	Length uint32 // Declared length for LengthUnderflow
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case UnsupportedVersion:
		return fmt.Sprintf("unsupported file version: 0x%02X", e.Byte)
	case InvalidDate:
		return fmt.Sprintf("invalid date in header: %04d-%02d-%02d", e.Year, e.Month, e.Day)
	case UnsupportedFieldType:
		return fmt.Sprintf("unsupported field type 0x%02X (%q) for column %q at offset %d", e.Byte, rune(e.Byte), e.Column, e.Offset)
	case LengthUnderflow:
		return fmt.Sprintf("memo block at offset %d declares total length %d < 8", e.Offset, e.Length)
	default:
		return "format error"
	}
}

// Is matches ErrFormat and the sentinel of the error kind.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat || (target != nil && target == e.Kind.sentinel())
}

// IOError wraps a failure of the underlying source. The cause is kept as is.
type IOError struct {
	Op     string
	Offset int64
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when a memo payload is not valid text.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	if e.Err == nil {
		return ErrEncoding.Error()
	}
	return fmt.Sprintf("%v: %v", ErrEncoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}
