//go:build linux || darwin

package host

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func (Local) Access(name string, mode uint32) error {
	if err := unix.Access(name, mode); err != nil {
		return &fs.PathError{Op: "access", Path: name, Err: err}
	}
	return nil
}

// Rmdir removes an empty directory. Unlike Remove it fails with ENOTDIR
// on anything else.
func (Local) Rmdir(name string) error {
	if err := unix.Rmdir(name); err != nil {
		return &fs.PathError{Op: "rmdir", Path: name, Err: err}
	}
	return nil
}

// Unlink removes a non-directory entry.
func (Local) Unlink(name string) error {
	if err := unix.Unlink(name); err != nil {
		return &fs.PathError{Op: "unlink", Path: name, Err: err}
	}
	return nil
}

func (Local) Statfs(name string) (StatFS, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(name, &st); err != nil {
		return StatFS{}, &fs.PathError{Op: "statfs", Path: name, Err: err}
	}
	return StatFS{
		Type:            int64(st.Type),
		BlockSize:       int64(st.Bsize),
		Blocks:          uint64(st.Blocks),
		BlocksFree:      uint64(st.Bfree),
		BlocksAvailable: uint64(st.Bavail),
		Files:           uint64(st.Files),
		FilesFree:       uint64(st.Ffree),
	}, nil
}

// Lchtimes changes the timestamps of name without following a final symlink.
func (Local) Lchtimes(name string, atime, mtime time.Time) error {
	ts := []unix.Timespec{
		unix.NsecToTimespec(atime.UnixNano()),
		unix.NsecToTimespec(mtime.UnixNano()),
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, name, ts, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return &fs.PathError{Op: "lutimes", Path: name, Err: err}
	}
	return nil
}

func (Local) Futimes(f File, atime, mtime time.Time) error {
	tv := []unix.Timeval{
		unix.NsecToTimeval(atime.UnixNano()),
		unix.NsecToTimeval(mtime.UnixNano()),
	}
	if err := unix.Futimes(int(f.Fd()), tv); err != nil {
		return &fs.PathError{Op: "futimes", Path: f.Name(), Err: err}
	}
	return nil
}
