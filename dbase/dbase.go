// Package dbase decodes dBase, FoxPro and Visual FoxPro table files and their memo files.
//
// A table is read in two steps: the 32 byte header (ReadHeader) and the column descriptors
// that follow it (ReadColumns). Values of memo columns are block indexes into a companion
// memo file. Which memo layout belongs to a table is decided by the caller and passed to
// OpenMemo, the package never guesses it. Three layouts are supported:
//
//   - dBase III (.DBT): fixed 512 byte blocks, payloads end with 0x1A 0x1A
//   - dBase IV/5 (.DBT): little endian block size and length prefixed payloads
//   - FoxPro / Visual FoxPro (.FPT): big endian block size and length prefixed payloads
//
// The package only reads. Decoding the values inside a row is left to the caller,
// ReadRow returns the raw bytes of a row.
//
// Nothing in this package is safe for concurrent use. Every read seeks the underlying
// source, callers sharing a source must serialize access or open one handle per reader.
package dbase

// Config is a struct containing the configuration for opening a table.
// The filename is mandatory.
//
// MemoFilename is optional. If it is set MemoFormat must name the layout of that file.
// If Converter is not set and InterpretCodePage is true the converter is chosen from the code page mark of the table.
type Config struct {
	Filename          string            // The filename of the DBF file.
	MemoFilename      string            // The filename of the memo file (DBT or FPT).
	MemoFormat        MemoFormat        // The layout of the memo file.
	Converter         EncodingConverter // The encoding converter used for memo text.
	InterpretCodePage bool              // Whether or not the code page mark should be interpreted. Ignores the defined converter.
}
