package dbase

import (
	"errors"
	"io"
)

// ReadColumns reads the column descriptors following the table header.
//
// Decoding stops at whichever comes first: a descriptor starting with the terminator byte 0x0D,
// or header.ColumnsCount() descriptors. Real files disagree about which of the two is reliable,
// so neither boundary is treated as an error.
// An unknown type tag fails the whole schema, no partial result is returned.
func ReadColumns(r io.ReadSeeker, header *Header) ([]*Column, error) {
	debugf("Reading columns...")
	limit := header.ColumnsCount()
	columns := make([]*Column, 0, limit)
	buf := make([]byte, descriptorSize)
	offset := int64(headerSize)
	for i := 0; i < limit; i++ {
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return nil, newError("dbase-schema-readcolumns-1", &IOError{Op: "seek column", Offset: offset, Err: err})
		}
		// Check if we are at 0x0D by reading one byte ahead
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return nil, newError("dbase-schema-readcolumns-2", &IOError{Op: "read column", Offset: offset, Err: unexpected(err)})
		}
		if Marker(buf[0]) == ColumnEnd {
			debugf("Found column terminator at offset: %d", offset)
			break
		}
		if _, err := io.ReadFull(r, buf[1:]); err != nil {
			return nil, newError("dbase-schema-readcolumns-3", &IOError{Op: "read column", Offset: offset + 1, Err: unexpected(err)})
		}
		column, err := DecodeColumn(buf)
		if err != nil {
			var formatErr *FormatError
			if errors.As(err, &formatErr) {
				formatErr.Offset = offset
			}
			return nil, newError("dbase-schema-readcolumns-4", err)
		}
		debugf("Found column %v of type %v at offset: %d", column.Name(), column.Type(), offset)
		columns = append(columns, column)
		offset += descriptorSize
	}
	return columns, nil
}

// Decode reads the header and the column descriptors of a table.
func Decode(r io.ReadSeeker) (*Header, []*Column, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, nil, newError("dbase-schema-decode-1", err)
	}
	columns, err := ReadColumns(r, header)
	if err != nil {
		return nil, nil, newError("dbase-schema-decode-2", err)
	}
	return header, columns, nil
}

// A source ending in the middle of a structure is never a clean EOF.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
