package dbase

import (
	"strings"
	"testing"
)

func TestFileVersion_Constants(t *testing.T) {
	expectedValues := map[FileVersion]byte{
		DBase:        0x03,
		DBase3Memo:   0x83,
		DBase4Memo:   0x8B,
		FoxProMemo:   0xF5,
		VisualFoxPro: 0x30,
	}

	for version, expected := range expectedValues {
		if byte(version) != expected {
			t.Errorf("Expected FileVersion %v to have value %02x, got %02x", version, expected, byte(version))
		}
		if !version.valid() {
			t.Errorf("Expected FileVersion %v to be valid", version)
		}
		if strings.HasPrefix(version.String(), "unknown") {
			t.Errorf("Expected a description for FileVersion %02x, got %s", expected, version.String())
		}
	}

	if FileVersion(0x31).valid() {
		t.Errorf("Expected FileVersion 0x31 to be invalid")
	}
	if got := FileVersion(0x31).String(); got != "unknown file version 0x31" {
		t.Errorf("Expected unknown description, got %s", got)
	}
}

func TestDataType_Constants(t *testing.T) {
	testCases := []struct {
		dataType DataType
		letter   string
		sized    bool
	}{
		{Character, "C", true},
		{Numeric, "N", true},
		{Float, "F", true},
		{Date, "D", false},
		{Logical, "L", false},
		{Memo, "M", false},
		{Integer, "I", false},
		{Currency, "Y", false},
		{DateTime, "T", false},
		{Double, "B", false},
	}

	for _, tc := range testCases {
		if tc.dataType.String() != tc.letter {
			t.Errorf("Expected DataType %v to print as %s", tc.dataType, tc.letter)
		}
		if !tc.dataType.valid() {
			t.Errorf("Expected DataType %v to be valid", tc.dataType)
		}
		if tc.dataType.sized() != tc.sized {
			t.Errorf("Expected DataType %v sized=%v", tc.dataType, tc.sized)
		}
	}

	for _, tag := range []byte{'0', 'V', 'Q', 'G', 'P', 'W', '@', '+', 'O'} {
		if DataType(tag).valid() {
			t.Errorf("Expected DataType %q to be invalid", tag)
		}
	}
}

func TestMarker_Constants(t *testing.T) {
	expectedValues := map[Marker]byte{
		Null:      0x00,
		Blank:     0x20,
		ColumnEnd: 0x0D,
		Deleted:   0x2A,
		EOFMarker: 0x1A,
	}

	for marker, expected := range expectedValues {
		if byte(marker) != expected {
			t.Errorf("Expected Marker to have value %02x, got %02x", expected, byte(marker))
		}
	}
	if len(memoTerminator) != 2 || memoTerminator[0] != 0x1A || memoTerminator[1] != 0x1A {
		t.Errorf("Expected memo terminator 1A 1A, got %X", memoTerminator)
	}
}
