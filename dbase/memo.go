package dbase

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MemoFormat selects one of the three memo file layouts.
// The format is never guessed from the file, the caller picks it.
type MemoFormat uint8

const (
	MemoDBaseIII MemoFormat = iota + 1 // dBase III .DBT, 512 byte blocks, payload ends with 0x1A 0x1A
	MemoDBaseIV                        // dBase IV/5 .DBT, little endian length prefixed blocks
	MemoFoxPro                         // FoxPro / Visual FoxPro .FPT, big endian length prefixed blocks
)

func (f MemoFormat) String() string {
	switch f {
	case MemoDBaseIII:
		return "dbt3"
	case MemoDBaseIV:
		return "dbt4"
	case MemoFoxPro:
		return "fpt"
	default:
		return fmt.Sprintf("unknown memo format %d", uint8(f))
	}
}

// ParseMemoFormat parses the short names returned by MemoFormat.String.
func ParseMemoFormat(s string) (MemoFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dbt3", "dbase3", "dbaseiii":
		return MemoDBaseIII, nil
	case "dbt4", "dbase4", "dbaseiv", "dbase5":
		return MemoDBaseIV, nil
	case "fpt", "foxpro", "vfp":
		return MemoFoxPro, nil
	}
	return 0, fmt.Errorf("unknown memo format %q, expected dbt3, dbt4 or fpt", s)
}

// MemoHeader is the decoded header of a memo file.
type MemoHeader struct {
	NextFree  uint32     // Next free block, informational only
	BlockSize uint32     // Block size (bytes per block)
	Version   byte       // Version byte at offset 16, DBT files only
	Format    MemoFormat // Layout the header was decoded with
}

// MemoReader resolves block indexes of a memo file to payloads.
// Blocks are always addressed by explicit index, the reader never walks the file.
type MemoReader interface {
	// ReadMemo returns the payload stored at the given block index.
	ReadMemo(block uint32) (MemoData, error)
	// NextAvailableBlock returns the next free block as stored in the header.
	NextAvailableBlock() uint32
	// Header returns the decoded memo header.
	Header() MemoHeader
}

// OpenMemo opens r with the memo layout named by format.
func OpenMemo(format MemoFormat, r io.ReadSeeker) (MemoReader, error) {
	var (
		reader MemoReader
		err    error
	)
	switch format {
	case MemoDBaseIII:
		reader, err = OpenDBaseIIIMemo(r)
	case MemoDBaseIV:
		reader, err = OpenDBaseIVMemo(r)
	case MemoFoxPro:
		reader, err = OpenFoxProMemo(r)
	default:
		return nil, newError("dbase-memo-open-1", fmt.Errorf("unknown memo format %d", uint8(format)))
	}
	if err != nil {
		return nil, newError("dbase-memo-open-2", err)
	}
	return reader, nil
}

// MemoData is a raw memo payload.
type MemoData []byte

// Bytes returns the payload unchanged
func (m MemoData) Bytes() []byte {
	return []byte(m)
}

// Text returns the payload as a string. It fails with *EncodingError if the payload is not valid UTF-8.
func (m MemoData) Text() (string, error) {
	if !utf8.Valid(m) {
		return "", newError("dbase-memo-text-1", &EncodingError{Err: fmt.Errorf("payload of %d bytes is not valid UTF-8", len(m))})
	}
	return string(m), nil
}

// Decode converts the payload to a UTF-8 string using the given code page converter.
func (m MemoData) Decode(converter EncodingConverter) (string, error) {
	if converter == nil {
		return m.Text()
	}
	out, err := converter.Decode(m)
	if err != nil {
		return "", newError("dbase-memo-decode-1", &EncodingError{Err: err})
	}
	return string(out), nil
}

func readMemoHeaderBytes(r io.ReadSeeker, n int) ([]byte, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &IOError{Op: "seek memo header", Err: err}
	}
	b := make([]byte, n)
	if read, err := io.ReadFull(r, b); err != nil {
		return nil, &IOError{Op: "read memo header", Offset: int64(read), Err: unexpected(err)}
	}
	return b, nil
}

func seekBlock(r io.Seeker, block uint32, blockSize uint32) (int64, error) {
	// The position in the file is blocknumber*blocksize
	position := int64(block) * int64(blockSize)
	if _, err := r.Seek(position, io.SeekStart); err != nil {
		return position, &IOError{Op: "seek memo block", Offset: position, Err: err}
	}
	return position, nil
}

// Reads exactly length payload bytes. The buffer grows with the data actually read,
// so a corrupt length field can not force a huge allocation.
func readPayload(r io.Reader, length uint32, offset int64) (MemoData, error) {
	initial := length
	if initial > 64*1024 {
		initial = 64 * 1024
	}
	buf := bytes.NewBuffer(make([]byte, 0, initial))
	n, err := io.Copy(buf, io.LimitReader(r, int64(length)))
	if err != nil {
		return nil, &IOError{Op: "read memo payload", Offset: offset + n, Err: err}
	}
	if n != int64(length) {
		return nil, &IOError{Op: "read memo payload", Offset: offset + n, Err: io.ErrUnexpectedEOF}
	}
	return MemoData(buf.Bytes()), nil
}
