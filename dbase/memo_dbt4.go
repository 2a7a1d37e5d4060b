package dbase

import (
	"encoding/binary"
	"io"
)

const (
	dbt4DefaultBlockSize = 512
	dbt4BlockHeaderSize  = 8
)

// DBaseIVMemoReader reads dBase IV and dBase 5 memo files.
//
// Every block starts with a 4 byte record type and a 4 byte little endian total length
// that includes those 8 bytes. 0x1A bytes inside the payload are regular data.
type DBaseIVMemoReader struct {
	handle io.ReadSeeker
	header MemoHeader
}

// OpenDBaseIVMemo reads the memo header from r. A block size of zero falls back to 512.
func OpenDBaseIVMemo(r io.ReadSeeker) (*DBaseIVMemoReader, error) {
	debugf("Reading dBase IV memo header...")
	b, err := readMemoHeaderBytes(r, 22)
	if err != nil {
		return nil, newError("dbase-memo-dbt4-open-1", err)
	}
	header := MemoHeader{
		NextFree:  binary.LittleEndian.Uint32(b[0:4]),
		BlockSize: uint32(binary.LittleEndian.Uint16(b[20:22])),
		Version:   b[16],
		Format:    MemoDBaseIV,
	}
	if header.BlockSize == 0 {
		header.BlockSize = dbt4DefaultBlockSize
	}
	debugf("Memo header: %+v", header)
	return &DBaseIVMemoReader{handle: r, header: header}, nil
}

func (m *DBaseIVMemoReader) ReadMemo(block uint32) (MemoData, error) {
	position, err := seekBlock(m.handle, block, m.header.BlockSize)
	if err != nil {
		return nil, newError("dbase-memo-dbt4-read-1", err)
	}
	hbuf := make([]byte, dbt4BlockHeaderSize)
	if n, err := io.ReadFull(m.handle, hbuf); err != nil {
		return nil, newError("dbase-memo-dbt4-read-2", &IOError{Op: "read memo block header", Offset: position + int64(n), Err: unexpected(err)})
	}
	// The first 4 bytes are the record type (0xFFFF0800 for text), not needed to locate the payload
	total := binary.LittleEndian.Uint32(hbuf[4:8])
	debugf("Reading memo block %d at position %d => total length: %d", block, position, total)
	if total < dbt4BlockHeaderSize {
		return nil, newError("dbase-memo-dbt4-read-3", &FormatError{Kind: LengthUnderflow, Offset: position, Length: total})
	}
	data, err := readPayload(m.handle, total-dbt4BlockHeaderSize, position+dbt4BlockHeaderSize)
	if err != nil {
		return nil, newError("dbase-memo-dbt4-read-4", err)
	}
	return data, nil
}

func (m *DBaseIVMemoReader) NextAvailableBlock() uint32 {
	return m.header.NextFree
}

func (m *DBaseIVMemoReader) Header() MemoHeader {
	return m.header
}
