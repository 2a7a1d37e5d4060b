package dbase

import (
	"bytes"
	"errors"
	"io"
)

// TrimAt returns the part of b in front of the first complete occurrence of delim.
// If delim never occurs in full, b is returned unchanged.
// An empty delim matches at the start of b.
func TrimAt(b []byte, delim []byte) []byte {
	i := bytes.Index(b, delim)
	if i < 0 {
		return b
	}
	return b[:i]
}

// ReadUntil reads r byte by byte until the last len(delim) bytes read equal delim and
// returns everything before the delimiter. A partial match does not end the scan.
//
// Running out of input is not an error: whatever was read so far is returned.
// Any other read error is returned as *IOError, its Offset counting the bytes consumed by this scan.
func ReadUntil(r io.ByteReader, delim []byte) ([]byte, error) {
	out := make([]byte, 0, 64)
	if len(delim) == 0 {
		return out, nil
	}
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, &IOError{Op: "scan", Offset: int64(len(out)), Err: err}
		}
		out = append(out, b)
		if n := len(out) - len(delim); n >= 0 && bytes.Equal(out[n:], delim) {
			return out[:n], nil
		}
	}
}
