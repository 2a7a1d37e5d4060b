package dbase

import (
	"fmt"
	"strings"
)

// Column describes one table field as read from its 32 byte descriptor.
// Columns are created while decoding the schema and are read only afterwards.
type Column struct {
	name     string
	dataType DataType
	length   uint8
	decimals uint8
}

// DecodeColumn decodes a single 32 byte column descriptor.
//
// Bytes 16 and 17 (size and decimal places) are kept for Character, Numeric and Float columns only,
// every other type reports zero for both.
func DecodeColumn(b []byte) (*Column, error) {
	if len(b) < descriptorSize {
		return nil, newError("dbase-column-decode-1", fmt.Errorf("%w: descriptor has %d bytes, expected %d", ErrIncomplete, len(b), descriptorSize))
	}
	column := &Column{
		name:     string(TrimAt(b[:nameSize], nameTerminator)),
		dataType: DataType(b[11]),
	}
	if !column.dataType.valid() {
		return nil, newError("dbase-column-decode-2", &FormatError{Kind: UnsupportedFieldType, Byte: b[11], Column: column.name})
	}
	// 12-15 displacement, skipped
	if column.dataType.sized() {
		column.length = b[16]
		column.decimals = b[17]
	}
	return column, nil
}

// Name returns the column name without NUL padding
func (c *Column) Name() string {
	return c.name
}

// Type returns the column data type
func (c *Column) Type() DataType {
	return c.dataType
}

// Length returns the declared size for Character, Numeric and Float columns, zero otherwise
func (c *Column) Length() uint8 {
	return c.length
}

// Decimals returns the declared decimal places for Character, Numeric and Float columns, zero otherwise
func (c *Column) Decimals() uint8 {
	return c.decimals
}

func (c *Column) String() string {
	if c.dataType.sized() {
		return fmt.Sprintf("%s %s(%d,%d)", c.name, c.dataType, c.length, c.decimals)
	}
	return fmt.Sprintf("%s %s", c.name, c.dataType)
}

// IsMemo reports whether values of this column are block addresses in the memo file
func (c *Column) IsMemo() bool {
	return c.dataType == Memo
}

func columnByName(columns []*Column, name string) int {
	for i, column := range columns {
		if strings.EqualFold(column.name, name) {
			return i
		}
	}
	return -1
}
