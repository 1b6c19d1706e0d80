package host

import (
	"io"
	"io/fs"
	"time"

	"github.com/fsnotify/fsnotify"
)

// File represents an open file.
type File interface {
	io.ReadWriteCloser
	io.ReaderAt
	io.WriterAt
	io.Seeker
	Sync() error
	Stat() (fs.FileInfo, error)
	Truncate(size int64) error
	Chmod(mode fs.FileMode) error
	Chown(uid, gid int) error
	ReadDir(n int) ([]fs.DirEntry, error)
	Name() string
	Fd() uintptr
}

// Access modes for [FS.Access]; they match the POSIX values.
const (
	AccessExists  uint32 = 0x0
	AccessExecute uint32 = 0x1
	AccessWrite   uint32 = 0x2
	AccessRead    uint32 = 0x4
)

// StatFS describes a mounted filesystem.
type StatFS struct {
	Type            int64
	BlockSize       int64
	Blocks          uint64
	BlocksFree      uint64
	BlocksAvailable uint64
	Files           uint64
	FilesFree       uint64
}

// FS abstracts the host filesystem primitives.
type FS interface {
	Access(name string, mode uint32) error
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Statfs(name string) (StatFS, error)

	Mkdir(name string, perm fs.FileMode) error
	MkdirAll(name string, perm fs.FileMode) error
	MkdirTemp(dir, pattern string) (string, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	ReadFile(name string) ([]byte, error)
	// WriteFile opens name with flag (which must include a write mode) and
	// writes data.
	WriteFile(name string, data []byte, flag int, perm fs.FileMode) error
	CopyFile(src, dst string, exclusive bool) error
	CopyTree(src, dst string) error

	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(name string) error
	Rmdir(name string) error
	Unlink(name string) error

	Link(oldname, newname string) error
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Realpath(name string) (string, error)

	Chmod(name string, mode fs.FileMode) error
	Chown(name string, uid, gid int) error
	Lchown(name string, uid, gid int) error
	Chtimes(name string, atime, mtime time.Time) error
	Lchtimes(name string, atime, mtime time.Time) error
	Truncate(name string, size int64) error

	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
	Fdatasync(f File) error
	Futimes(f File, atime, mtime time.Time) error

	// NewWatcher creates a change watcher; buffer sizes its event channel.
	NewWatcher(buffer uint) (*fsnotify.Watcher, error)
}

// Default is the default local file system.
var Default FS = Local{}
