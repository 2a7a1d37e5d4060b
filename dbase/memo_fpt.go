package dbase

import (
	"encoding/binary"
	"io"
)

// FoxProMemoReader reads FoxPro and Visual FoxPro memo files.
// Unlike the dBase layouts every integer in an FPT file is big endian.
type FoxProMemoReader struct {
	handle io.ReadSeeker
	header MemoHeader
}

// OpenFoxProMemo reads the memo header from r.
// The block size is taken from the header as is. FoxPro usually writes 64, but that is not assumed.
func OpenFoxProMemo(r io.ReadSeeker) (*FoxProMemoReader, error) {
	debugf("Reading FoxPro memo header...")
	b, err := readMemoHeaderBytes(r, 8)
	if err != nil {
		return nil, newError("dbase-memo-fpt-open-1", err)
	}
	header := MemoHeader{
		NextFree:  binary.BigEndian.Uint32(b[0:4]),
		BlockSize: uint32(binary.BigEndian.Uint16(b[6:8])),
		Format:    MemoFoxPro,
	}
	debugf("Memo header: %+v", header)
	return &FoxProMemoReader{handle: r, header: header}, nil
}

func (m *FoxProMemoReader) ReadMemo(block uint32) (MemoData, error) {
	position, err := seekBlock(m.handle, block, m.header.BlockSize)
	if err != nil {
		return nil, newError("dbase-memo-fpt-read-1", err)
	}
	// Read the memo block header, instead of reading into a struct using binary.Read we just read the two
	// uints in one buffer and then convert, as it avoids using the reflection in binary.Read
	hbuf := make([]byte, 8)
	if n, err := io.ReadFull(m.handle, hbuf); err != nil {
		return nil, newError("dbase-memo-fpt-read-2", &IOError{Op: "read memo block header", Offset: position + int64(n), Err: unexpected(err)})
	}
	sign := binary.BigEndian.Uint32(hbuf[:4])
	length := binary.BigEndian.Uint32(hbuf[4:])
	debugf("Reading memo block %d at position %d => type: %d, length: %d", block, position, sign, length)
	data, err := readPayload(m.handle, length, position+8)
	if err != nil {
		return nil, newError("dbase-memo-fpt-read-3", err)
	}
	return data, nil
}

func (m *FoxProMemoReader) NextAvailableBlock() uint32 {
	return m.header.NextFree
}

func (m *FoxProMemoReader) Header() MemoHeader {
	return m.header
}
