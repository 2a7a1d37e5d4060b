package dbase

import (
	"bufio"
	"encoding/binary"
	"io"
)

const dbt3BlockSize = 512

// DBaseIIIMemoReader reads dBase III memo files.
// Payloads carry no length, they end at the first 0x1A 0x1A.
type DBaseIIIMemoReader struct {
	handle io.ReadSeeker
	header MemoHeader
}

// OpenDBaseIIIMemo reads the memo header from r.
// The block size is always 512 bytes, the header has no field for it.
func OpenDBaseIIIMemo(r io.ReadSeeker) (*DBaseIIIMemoReader, error) {
	debugf("Reading dBase III memo header...")
	b, err := readMemoHeaderBytes(r, 17)
	if err != nil {
		return nil, newError("dbase-memo-dbt3-open-1", err)
	}
	header := MemoHeader{
		NextFree:  binary.LittleEndian.Uint32(b[0:4]),
		BlockSize: dbt3BlockSize,
		Version:   b[16],
		Format:    MemoDBaseIII,
	}
	debugf("Memo header: %+v", header)
	return &DBaseIIIMemoReader{handle: r, header: header}, nil
}

func (m *DBaseIIIMemoReader) ReadMemo(block uint32) (MemoData, error) {
	position, err := seekBlock(m.handle, block, m.header.BlockSize)
	if err != nil {
		return nil, newError("dbase-memo-dbt3-read-1", err)
	}
	debugf("Reading memo block %d at position %d", block, position)
	data, err := ReadUntil(bufio.NewReader(m.handle), memoTerminator)
	if err != nil {
		if ioErr, ok := err.(*IOError); ok {
			ioErr.Offset += position
		}
		return nil, newError("dbase-memo-dbt3-read-2", err)
	}
	return MemoData(data), nil
}

func (m *DBaseIIIMemoReader) NextAvailableBlock() uint32 {
	return m.header.NextFree
}

func (m *DBaseIIIMemoReader) Header() MemoHeader {
	return m.header
}
