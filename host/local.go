package host

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Local implements FS using package os and golang.org/x/sys.
type Local struct{}

func (Local) Stat(name string) (fs.FileInfo, error)  { return os.Stat(name) }
func (Local) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }

func (Local) Mkdir(name string, perm fs.FileMode) error    { return os.Mkdir(name, perm) }
func (Local) MkdirAll(name string, perm fs.FileMode) error { return os.MkdirAll(name, perm) }
func (Local) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}
func (Local) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (Local) ReadFile(name string) ([]byte, error)       { return os.ReadFile(name) }

func (Local) WriteFile(name string, data []byte, flag int, perm fs.FileMode) error {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// CopyFile copies src's contents and permission bits to dst. With exclusive
// set it fails if dst already exists.
func (Local) CopyFile(src, dst string, exclusive bool) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if exclusive {
		flag |= os.O_EXCL
	}
	out, err := os.OpenFile(dst, flag, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// CopyTree copies the directory tree rooted at src into dst.
func (Local) CopyTree(src, dst string) error {
	return os.CopyFS(dst, os.DirFS(src))
}

func (Local) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }
func (Local) Remove(name string) error             { return os.Remove(name) }
func (Local) RemoveAll(name string) error          { return os.RemoveAll(name) }

func (Local) Link(oldname, newname string) error    { return os.Link(oldname, newname) }
func (Local) Symlink(oldname, newname string) error { return os.Symlink(oldname, newname) }
func (Local) Readlink(name string) (string, error)  { return os.Readlink(name) }

// Realpath resolves name to an absolute path with all symlinks evaluated.
func (Local) Realpath(name string) (string, error) {
	resolved, err := filepath.EvalSymlinks(name)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

func (Local) Chmod(name string, mode fs.FileMode) error { return os.Chmod(name, mode) }
func (Local) Chown(name string, uid, gid int) error     { return os.Chown(name, uid, gid) }
func (Local) Lchown(name string, uid, gid int) error    { return os.Lchown(name, uid, gid) }
func (Local) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}
func (Local) Truncate(name string, size int64) error { return os.Truncate(name, size) }

func (Local) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		// Avoid returning a typed-nil *os.File inside a non-nil File.
		return nil, err
	}
	return f, nil
}

func (Local) NewWatcher(buffer uint) (*fsnotify.Watcher, error) {
	if buffer == 0 {
		return fsnotify.NewWatcher()
	}
	return fsnotify.NewBufferedWatcher(buffer)
}
