//go:build unix

package dbase

import (
	"io"

	"golang.org/x/sys/unix"
)

// unixHandle reads a file through its raw descriptor.
type unixHandle struct {
	fd int
}

func openHandle(name string) (Handle, error) {
	fd, err := unix.Open(name, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &unixHandle{fd: fd}, nil
}

func (h *unixHandle) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(h.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

func (h *unixHandle) Seek(offset int64, whence int) (int64, error) {
	return unix.Seek(h.fd, offset, whence)
}

func (h *unixHandle) Close() error {
	debugf("Closing file descriptor: %d", h.fd)
	return unix.Close(h.fd)
}
