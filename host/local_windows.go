//go:build windows

package host

import (
	"io/fs"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

// Access approximates access(2): existence is checked with Stat and write
// access against the read-only attribute.
func (Local) Access(name string, mode uint32) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	if mode&AccessWrite != 0 && info.Mode().Perm()&0o200 == 0 {
		return &fs.PathError{Op: "access", Path: name, Err: syscall.EACCES}
	}
	return nil
}

func (Local) Rmdir(name string) error {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return &fs.PathError{Op: "rmdir", Path: name, Err: err}
	}
	if err := windows.RemoveDirectory(p); err != nil {
		return &fs.PathError{Op: "rmdir", Path: name, Err: err}
	}
	return nil
}

func (Local) Unlink(name string) error {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return &fs.PathError{Op: "unlink", Path: name, Err: err}
	}
	if err := windows.DeleteFile(p); err != nil {
		return &fs.PathError{Op: "unlink", Path: name, Err: err}
	}
	return nil
}

// Statfs reports byte counts with a block size of one; file counts are
// not available.
func (Local) Statfs(name string) (StatFS, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return StatFS{}, &fs.PathError{Op: "statfs", Path: name, Err: err}
	}
	var avail, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &avail, &total, &free); err != nil {
		return StatFS{}, &fs.PathError{Op: "statfs", Path: name, Err: err}
	}
	return StatFS{
		BlockSize:       1,
		Blocks:          total,
		BlocksFree:      free,
		BlocksAvailable: avail,
	}, nil
}

func (Local) Lchtimes(name string, _, _ time.Time) error {
	return unsupported("lutimes", name)
}

func (Local) Futimes(f File, atime, mtime time.Time) error {
	a := windows.NsecToFiletime(atime.UnixNano())
	m := windows.NsecToFiletime(mtime.UnixNano())
	if err := windows.SetFileTime(windows.Handle(f.Fd()), nil, &a, &m); err != nil {
		return &fs.PathError{Op: "futimes", Path: f.Name(), Err: err}
	}
	return nil
}
