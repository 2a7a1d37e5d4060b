//go:build !unix && !windows

package dbase

import "os"

// x/sys has no raw file API for these platforms
func openHandle(name string) (Handle, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return file, nil
}
