package host

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Fdatasync flushes f's data, skipping metadata not needed to read it back.
func (Local) Fdatasync(f File) error {
	if err := unix.Fdatasync(int(f.Fd())); err != nil {
		return &fs.PathError{Op: "fdatasync", Path: f.Name(), Err: err}
	}
	return nil
}
