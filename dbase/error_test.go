package dbase

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		context     string
		underlying  error
		expectedMsg string
		description string
	}{
		{"sampleContext1", ErrEOF, "EOF", "EOF Error"},
		{"sampleContext2", ErrNoMemo, "MEMO_FILE_NOT_FOUND", "Missing memo Error"},
		{"sampleContext3", &FormatError{Kind: UnsupportedVersion, Byte: 0x02}, "unsupported file version: 0x02", "Format Error"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			err := newError(tt.context, tt.underlying)
			if err.Error() != tt.expectedMsg {
				t.Errorf("got %s, want %s", err.Error(), tt.expectedMsg)
			}

			if len(err.Context()) != 1 || err.Context()[0] != tt.context {
				t.Errorf("got context %v, want %s", err.Context(), tt.context)
			}

			trace := err.trace()
			if !strings.Contains(trace, tt.context) {
				t.Errorf("trace %s does not contain context %s", trace, tt.context)
			}

			if !errors.Is(err, tt.underlying) {
				t.Errorf("wrapped error does not match %v", tt.underlying)
			}
		})
	}
}

func TestErrorContextChain(t *testing.T) {
	err := newError("outer", newError("middle", newError("inner", ErrIncomplete)))
	assert.DeepEqual(t, err.Context(), []string{"outer", "middle", "inner"})
	assert.Equal(t, GetErrorTrace(err).Error(), "outer:middle:inner:INCOMPLETE")
	assert.Assert(t, errors.Is(err, ErrIncomplete))
}

func TestGetErrorTrace(t *testing.T) {
	tests := []struct {
		inputError  error
		expected    string
		description string
	}{
		{newError("sampleContext1", ErrEOF), "sampleContext1:EOF", "Custom Error with EOF"},
		{newError("sampleContext2", ErrNoDBF), "sampleContext2:DBF_FILE_NOT_FOUND", "Custom Error with missing table"},
		{fmt.Errorf("wrapped: %w", newError("inner", ErrEOF)), "inner:EOF", "Custom Error wrapped by fmt"},
		{ErrIncomplete, "INCOMPLETE", "Package-level error"},
		{errors.New("generic error"), "generic error", "Generic error"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			trace := GetErrorTrace(tt.inputError)
			if trace.Error() != tt.expected {
				t.Errorf("got %s, want %s", trace.Error(), tt.expected)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		err         *FormatError
		sentinel    error
		message     string
		description string
	}{
		{&FormatError{Kind: UnsupportedVersion, Byte: 0xFB}, ErrUnsupportedVersion, "unsupported file version: 0xFB", "Unsupported version"},
		{&FormatError{Kind: InvalidDate, Year: 1999, Month: 2, Day: 31}, ErrInvalidDate, "invalid date in header: 1999-02-31", "Invalid date"},
		{&FormatError{Kind: UnsupportedFieldType, Byte: 'X', Column: "WEIRD", Offset: 64}, ErrUnsupportedFieldType, `unsupported field type 0x58 ('X') for column "WEIRD" at offset 64`, "Unsupported field type"},
		{&FormatError{Kind: LengthUnderflow, Offset: 512, Length: 4}, ErrLengthUnderflow, "memo block at offset 512 declares total length 4 < 8", "Length underflow"},
	}

	kinds := []error{ErrUnsupportedVersion, ErrInvalidDate, ErrUnsupportedFieldType, ErrLengthUnderflow}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.err.Error(), tt.message)
			assert.Assert(t, errors.Is(tt.err, ErrFormat))
			for _, kind := range kinds {
				assert.Equal(t, errors.Is(tt.err, kind), kind == tt.sentinel, "kind %v", kind)
			}
			assert.Assert(t, !errors.Is(tt.err, ErrEncoding))
		})
	}
}

func TestFormatErrorKindString(t *testing.T) {
	assert.Equal(t, UnsupportedVersion.String(), "unsupported version")
	assert.Equal(t, LengthUnderflow.String(), "length underflow")
	assert.Equal(t, FormatErrorKind(0).String(), "unknown")
}

func TestIOError(t *testing.T) {
	err := &IOError{Op: "read row", Offset: 200, Err: io.ErrUnexpectedEOF}
	assert.Equal(t, err.Error(), "read row at offset 200: unexpected EOF")
	assert.Assert(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Assert(t, !errors.Is(err, ErrFormat))
}

func TestEncodingError(t *testing.T) {
	cause := errors.New("bad byte")
	err := &EncodingError{Err: cause}
	assert.Equal(t, err.Error(), "INVALID_ENCODING: bad byte")
	assert.Assert(t, errors.Is(err, ErrEncoding))
	assert.Assert(t, errors.Is(err, cause))
	assert.Equal(t, (&EncodingError{}).Error(), "INVALID_ENCODING")
}
