package dbase

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/axgle/mahonia"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// EncodingConverter turns text stored in a legacy code page into UTF-8.
type EncodingConverter interface {
	Decode(in []byte) ([]byte, error)
	CodePage() byte
}

// DefaultConverter decodes single byte code pages known to dBase and FoxPro.
type DefaultConverter struct {
	encoding *charmap.Charmap
}

func NewDefaultConverter(encoding *charmap.Charmap) DefaultConverter {
	return DefaultConverter{encoding: encoding}
}

// Decode decodes a specified encoding to byte slice to a UTF8 byte slice
func (c DefaultConverter) Decode(in []byte) ([]byte, error) {
	if utf8.Valid(in) {
		return in, nil
	}
	r := transform.NewReader(bytes.NewReader(in), c.encoding.NewDecoder())
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newError("dbase-encoding-decode-1", err)
	}
	return data, nil
}

// CodePage returns corresponding code page mark for the encoding
func (c DefaultConverter) CodePage() byte {
	switch c.encoding {
	case charmap.CodePage437: // U.S. MS-DOS
		return 0x01
	case charmap.CodePage850: // International MS-DOS
		return 0x02
	case charmap.CodePage852: // Eastern European MS-DOS
		return 0x64
	case charmap.CodePage865: // Nordic MS-DOS
		return 0x66
	case charmap.CodePage866: // Russian MS-DOS
		return 0x65
	case charmap.Windows874: // Thai Windows
		return 0x7C
	case charmap.Windows1250: // Central European Windows
		return 0xC8
	case charmap.Windows1251: // Russian Windows
		return 0xC9
	case charmap.Windows1252: // Windows ANSI
		return 0x03
	case charmap.Windows1253: // Greek Windows
		return 0xCB
	case charmap.Windows1254: // Turkish Windows
		return 0xCA
	case charmap.Windows1255: // Hebrew Windows
		return 0x7D
	case charmap.Windows1256: // Arabic Windows
		return 0x7E
	case charmap.Macintosh: // Standard Macintosh
		return 0x04
	default:
		return 0x00
	}
}

// Code page marks as found at byte 29 of the table header.
// dBase IV uses its own numbers for some of the code pages.
var codePages = map[byte]*charmap.Charmap{
	0x01: charmap.CodePage437,
	0x02: charmap.CodePage850,
	0x64: charmap.CodePage852,
	0x66: charmap.CodePage865,
	0x65: charmap.CodePage866,
	0x7C: charmap.Windows874,
	0xC8: charmap.Windows1250,
	0xC9: charmap.Windows1251,
	0x03: charmap.Windows1252,
	0xCB: charmap.Windows1253,
	0xCA: charmap.Windows1254,
	0x7D: charmap.Windows1255,
	0x7E: charmap.Windows1256,
	0x04: charmap.Macintosh,
	0x57: charmap.Windows1252,
	0x26: charmap.CodePage866,
}

// ConverterFromCodePage returns a converter for the code page mark stored at byte 29 of the table header.
// Unknown marks fall back to Windows-1252.
func ConverterFromCodePage(codePageMark byte) DefaultConverter {
	if encoding, ok := codePages[codePageMark]; ok {
		return NewDefaultConverter(encoding)
	}
	debugf("Unknown code page mark 0x%02x, falling back to Windows-1252", codePageMark)
	return NewDefaultConverter(charmap.Windows1252)
}

// NamedConverter decodes any charset known by name to mahonia, e.g. "gbk", "big5" or "cp1252".
// It covers the multi byte code pages that have no charmap.
type NamedConverter struct {
	name    string
	decoder mahonia.Decoder
}

// NewNamedConverter returns a converter for the charset name or an error if the name is unknown.
func NewNamedConverter(name string) (*NamedConverter, error) {
	decoder := mahonia.NewDecoder(strings.ToLower(strings.TrimSpace(name)))
	if decoder == nil {
		return nil, newError("dbase-encoding-named-1", fmt.Errorf("unknown charset %q", name))
	}
	return &NamedConverter{name: name, decoder: decoder}, nil
}

// Decode converts the input one character at a time and fails on the first byte sequence the charset rejects.
// A multi byte character cut off at the end of the input is invalid as well.
func (c *NamedConverter) Decode(in []byte) ([]byte, error) {
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); {
		r, size, status := c.decoder(in[i:])
		switch status {
		case mahonia.INVALID_CHAR:
			return nil, newError("dbase-encoding-named-decode-1", fmt.Errorf("invalid %s input at byte %d", c.name, i))
		case mahonia.NO_ROOM:
			return nil, newError("dbase-encoding-named-decode-2", fmt.Errorf("incomplete %s character at byte %d", c.name, i))
		case mahonia.SUCCESS:
			out = append(out, r)
		}
		if size == 0 {
			return nil, newError("dbase-encoding-named-decode-3", fmt.Errorf("%s decoder made no progress at byte %d", c.name, i))
		}
		i += size
	}
	return []byte(string(out)), nil
}

// CodePage returns 0x00, charsets selected by name have no code page mark
func (c *NamedConverter) CodePage() byte {
	return 0x00
}

// ConverterFor resolves a converter by name. Names of the form "0xC8" are read as code page marks,
// everything else is passed to NewNamedConverter.
func ConverterFor(name string) (EncodingConverter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	var mark byte
	if _, err := fmt.Sscanf(strings.ToLower(name), "0x%x", &mark); err == nil {
		return ConverterFromCodePage(mark), nil
	}
	converter, err := NewNamedConverter(name)
	if err != nil {
		return nil, err
	}
	return converter, nil
}
