package dbase

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"gotest.tools/assert"
)

func TestDefaultConverter_Decode(t *testing.T) {
	tests := []struct {
		converter   DefaultConverter
		input       []byte
		expected    []byte
		hasError    bool
		description string
	}{
		{DefaultConverter{encoding: charmap.Windows1252}, []byte("sample"), []byte("sample"), false, "Windows1252 ASCII"},
		{DefaultConverter{encoding: charmap.Windows1252}, []byte("Gr\xf6\xdfe"), []byte("Größe"), false, "Windows1252 umlauts"},
		{DefaultConverter{encoding: charmap.CodePage437}, []byte("Gr\x94\xe1e"), []byte("Größe"), false, "CodePage437 umlauts"},
		{DefaultConverter{encoding: charmap.Windows1251}, []byte("\xcf\xf0\xe8\xe2\xe5\xf2"), []byte("Привет"), false, "Windows1251 Cyrillic"},
		{DefaultConverter{encoding: charmap.Windows1252}, []byte("Größe"), []byte("Größe"), false, "Valid UTF-8 passes through"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := tt.converter.Decode(tt.input)
			if (err != nil) != tt.hasError {
				t.Errorf("expected error=%v, got %v", tt.hasError, err)
			}
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestDefaultConverter_CodePage(t *testing.T) {
	tests := []struct {
		converter   DefaultConverter
		expected    byte
		description string
	}{
		{DefaultConverter{encoding: charmap.Windows1252}, 0x03, "Windows1252 Encoding"},
		{DefaultConverter{encoding: charmap.CodePage437}, 0x01, "CodePage437 Encoding"},
		{DefaultConverter{encoding: charmap.CodePage850}, 0x02, "CodePage850 Encoding"},
		{DefaultConverter{encoding: charmap.Windows1250}, 0xC8, "Windows1250 Encoding"},
		{DefaultConverter{encoding: charmap.Macintosh}, 0x04, "Macintosh Encoding"},
		{DefaultConverter{encoding: charmap.ISO8859_1}, 0x00, "Encoding without code page mark"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := tt.converter.CodePage()
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConverterFromCodePage(t *testing.T) {
	tests := []struct {
		mark        byte
		expected    byte
		description string
	}{
		{0x03, 0x03, "Windows ANSI"},
		{0x01, 0x01, "U.S. MS-DOS"},
		{0xC9, 0xC9, "Russian Windows"},
		{0x57, 0x03, "dBase IV ANSI alias"},
		{0x26, 0x65, "dBase IV Russian alias"},
		{0x00, 0x03, "No mark falls back to Windows ANSI"},
		{0xEE, 0x03, "Unknown mark falls back to Windows ANSI"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, ConverterFromCodePage(tt.mark).CodePage(), tt.expected)
		})
	}
}

func TestNamedConverter(t *testing.T) {
	converter, err := NewNamedConverter("GBK")
	assert.NilError(t, err)
	got, err := converter.Decode([]byte{0xc4, 0xe3, 0xba, 0xc3})
	assert.NilError(t, err)
	assert.Equal(t, string(got), "你好")
	assert.Equal(t, converter.CodePage(), byte(0x00))

	_, err = converter.Decode([]byte{0xc4, 0xe3, 0x81, 0x20})
	assert.ErrorContains(t, err, "invalid GBK input at byte 2")
	_, err = converter.Decode([]byte{0xc4})
	assert.ErrorContains(t, err, "incomplete GBK character at byte 0")

	_, err = NewNamedConverter("no-such-charset")
	assert.ErrorContains(t, err, "unknown charset")
}

func TestConverterFor(t *testing.T) {
	converter, err := ConverterFor("")
	assert.NilError(t, err)
	assert.Assert(t, converter == nil)

	converter, err = ConverterFor("0xC8")
	assert.NilError(t, err)
	assert.Equal(t, converter.CodePage(), byte(0xC8))

	converter, err = ConverterFor("big5")
	assert.NilError(t, err)
	_, ok := converter.(*NamedConverter)
	assert.Assert(t, ok)

	_, err = ConverterFor("klingon")
	assert.ErrorContains(t, err, "unknown charset")
}
