//go:build windows

package dbase

import (
	"io"

	"golang.org/x/sys/windows"
)

// windowsHandle reads a file through its raw windows handle.
type windowsHandle struct {
	fd windows.Handle
}

func openHandle(name string) (Handle, error) {
	fd, err := windows.Open(name, windows.O_RDONLY|windows.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &windowsHandle{fd: fd}, nil
}

func (h *windowsHandle) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := windows.Read(h.fd, p)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (h *windowsHandle) Seek(offset int64, whence int) (int64, error) {
	return windows.Seek(h.fd, offset, whence)
}

func (h *windowsHandle) Close() error {
	debugf("Closing file handle: %v", h.fd)
	return windows.Close(h.fd)
}
