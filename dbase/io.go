package dbase

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Handle is a read only, seekable file handle as returned by OpenFile.
type Handle interface {
	io.ReadSeeker
	io.Closer
}

// OpenFile opens name read only. If the exact name does not exist a file
// with the same name in a different case is used, dBase files are often stored upper case.
func OpenFile(name string) (Handle, error) {
	fileName, err := findFile(filepath.Clean(name))
	if err != nil {
		return nil, newError("dbase-io-openfile-1", err)
	}
	debugf("Opening file: %s", fileName)
	handle, err := openHandle(fileName)
	if err != nil {
		return nil, newError("dbase-io-openfile-2", &IOError{Op: "open " + fileName, Err: err})
	}
	return handle, nil
}

func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	debugf("Searching for file: %s", name)
	files, err := os.ReadDir(filepath.Dir(name))
	if err != nil {
		return "", err
	}
	for _, file := range files {
		if strings.EqualFold(file.Name(), filepath.Base(name)) {
			debugf("Found file: %s", file.Name())
			return filepath.Join(filepath.Dir(name), file.Name()), nil
		}
	}
	return name, nil
}
