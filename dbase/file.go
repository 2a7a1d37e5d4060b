package dbase

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
)

// File is an opened table with its decoded header, columns and optional memo file.
type File struct {
	config  *Config       // The config used when opening the table.
	handle  io.ReadSeeker // DBase file handle.
	memo    MemoReader    // Memo file reader, nil if the table was opened without memo file.
	closers []io.Closer   // Handles opened by OpenTable.
	header  *Header       // DBase file header containing relevant information.
	columns []*Column     // Columns defined in this table.
}

// OpenTable opens the table named in the config and, if set, its memo file.
// Close releases both files.
func OpenTable(config *Config) (*File, error) {
	if config == nil {
		return nil, newError("dbase-file-opentable-1", fmt.Errorf("missing configuration"))
	}
	debugf("Opening table: %s - Memo: %s (%v) - InterpretCodepage: %v", config.Filename, config.MemoFilename, config.MemoFormat, config.InterpretCodePage)
	if len(strings.TrimSpace(config.Filename)) == 0 {
		return nil, newError("dbase-file-opentable-2", fmt.Errorf("%w: missing filename", ErrNoDBF))
	}
	handle, err := OpenFile(config.Filename)
	if err != nil {
		return nil, newError("dbase-file-opentable-3", err)
	}
	closers := []io.Closer{handle}
	var memoHandle io.ReadSeeker
	if len(strings.TrimSpace(config.MemoFilename)) > 0 {
		relatedHandle, err := OpenFile(config.MemoFilename)
		if err != nil {
			return nil, newError("dbase-file-opentable-4", multierr.Append(err, closeAll(closers)))
		}
		closers = append(closers, relatedHandle)
		memoHandle = relatedHandle
	}
	file, err := OpenStream(handle, memoHandle, config)
	if err != nil {
		return nil, newError("dbase-file-opentable-5", multierr.Append(err, closeAll(closers)))
	}
	file.closers = closers
	return file, nil
}

// OpenStream decodes a table from already opened sources. memo may be nil.
// The sources are not closed by File.Close.
func OpenStream(table io.ReadSeeker, memo io.ReadSeeker, config *Config) (*File, error) {
	if table == nil {
		return nil, newError("dbase-file-openstream-1", ErrNoDBF)
	}
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	config = &cfg
	header, columns, err := Decode(table)
	if err != nil {
		return nil, newError("dbase-file-openstream-2", err)
	}
	file := &File{
		config:  config,
		handle:  table,
		header:  header,
		columns: columns,
	}
	if memo != nil {
		file.memo, err = OpenMemo(config.MemoFormat, memo)
		if err != nil {
			return nil, newError("dbase-file-openstream-3", err)
		}
	} else if header.HasMemo() {
		debugf("Table version %v announces a memo file but none was given", header.Version)
	}
	// Interpret the code page mark if needed
	if config.InterpretCodePage {
		file.config.Converter = ConverterFromCodePage(header.CodePage)
		debugf("Code page: 0x%02x => interpreted: 0x%02x", header.CodePage, file.config.Converter.CodePage())
	}
	return file, nil
}

// Close closes the files opened by OpenTable
func (file *File) Close() error {
	err := closeAll(file.closers)
	file.closers = nil
	if err != nil {
		return newError("dbase-file-close-1", err)
	}
	return nil
}

func closeAll(closers []io.Closer) error {
	var err error
	for _, c := range closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}

// Returns the dBase table file header struct for inspecting
func (file *File) Header() *Header {
	return file.header
}

// returns the number of rows
func (file *File) RowsCount() uint32 {
	return file.header.RowsCount
}

// Returns all columns
func (file *File) Columns() []*Column {
	return file.columns
}

// Returns the requested column
func (file *File) Column(pos int) *Column {
	if pos < 0 || pos >= len(file.columns) {
		return nil
	}
	return file.columns[pos]
}

// Returns the number of columns
func (file *File) ColumnsCount() int {
	return len(file.columns)
}

// Returns a slice of all the column names
func (file *File) ColumnNames() []string {
	names := make([]string, len(file.columns))
	for i, column := range file.columns {
		names[i] = column.Name()
	}
	return names
}

// Returns the column position of a column by name or -1 if not found.
// The name is compared case insensitive.
func (file *File) ColumnPosByName(name string) int {
	return columnByName(file.columns, name)
}

// ReadRow returns the raw bytes of the row at position, including the leading delete flag.
func (file *File) ReadRow(position uint32) ([]byte, error) {
	if position >= file.header.RowsCount {
		return nil, newError("dbase-file-readrow-1", ErrEOF)
	}
	offset := int64(file.header.FirstRow) + int64(position)*int64(file.header.RowLength)
	debugf("Reading row: %d at offset: %v", position, offset)
	if _, err := file.handle.Seek(offset, io.SeekStart); err != nil {
		return nil, newError("dbase-file-readrow-2", &IOError{Op: "seek row", Offset: offset, Err: err})
	}
	buf := make([]byte, file.header.RowLength)
	if n, err := io.ReadFull(file.handle, buf); err != nil {
		return nil, newError("dbase-file-readrow-3", &IOError{Op: "read row", Offset: offset + int64(n), Err: unexpected(err)})
	}
	return buf, nil
}

// Deleted reports whether the row at position carries the delete flag.
func (file *File) Deleted(position uint32) (bool, error) {
	row, err := file.ReadRow(position)
	if err != nil {
		return false, newError("dbase-file-deleted-1", err)
	}
	if len(row) == 0 {
		return false, newError("dbase-file-deleted-2", ErrIncomplete)
	}
	return Marker(row[0]) == Deleted, nil
}

// Memo returns the memo reader or nil if the table was opened without memo file
func (file *File) Memo() MemoReader {
	return file.memo
}

// ReadMemo reads the payload at block from the memo file.
func (file *File) ReadMemo(block uint32) (MemoData, error) {
	if file.memo == nil {
		return nil, newError("dbase-file-readmemo-1", ErrNoMemo)
	}
	data, err := file.memo.ReadMemo(block)
	if err != nil {
		return nil, newError("dbase-file-readmemo-2", err)
	}
	return data, nil
}

// ReadMemoText reads the payload at block and converts it to text with the configured converter.
// Without converter the payload must be valid UTF-8.
func (file *File) ReadMemoText(block uint32) (string, error) {
	data, err := file.ReadMemo(block)
	if err != nil {
		return "", newError("dbase-file-readmemotext-1", err)
	}
	text, err := data.Decode(file.config.Converter)
	if err != nil {
		errorf("Memo block %d is not valid text: %v", block, err)
		return "", newError("dbase-file-readmemotext-2", err)
	}
	return text, nil
}
