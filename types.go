package fsresult

import (
	"io/fs"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/jvens/fsresult/host"
)

// AccessMode selects the checks made by Access. Modes can be or'ed.
type AccessMode uint32

// Access modes, with POSIX values.
const (
	F_OK AccessMode = AccessMode(host.AccessExists)  //nolint:revive
	X_OK AccessMode = AccessMode(host.AccessExecute) //nolint:revive
	W_OK AccessMode = AccessMode(host.AccessWrite)   //nolint:revive
	R_OK AccessMode = AccessMode(host.AccessRead)    //nolint:revive
)

const (
	defaultDirMode   fs.FileMode = 0o777
	defaultFileMode  fs.FileMode = 0o666
	defaultWatchSize uint        = 64
)

// MkdirOptions controls Mkdir.
type MkdirOptions struct {
	// Recursive creates missing parents and succeeds if the directory exists.
	Recursive bool
	// Mode defaults to 0o777 (before umask).
	Mode fs.FileMode
}

func (o MkdirOptions) mode() fs.FileMode {
	if o.Mode == 0 {
		return defaultDirMode
	}
	return o.Mode
}

// WriteFileOptions controls WriteFile.
type WriteFileOptions struct {
	// Mode defaults to 0o666 (before umask) and only applies on creation.
	Mode fs.FileMode
	// Flag defaults to os.O_WRONLY|os.O_CREATE|os.O_TRUNC.
	Flag int
	// Exclusive fails with FileAlreadyExists if the file exists.
	Exclusive bool
}

func (o WriteFileOptions) flag() int {
	flag := o.Flag
	if flag == 0 {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	if o.Exclusive {
		flag |= os.O_CREATE | os.O_EXCL
	}
	return flag
}

func (o WriteFileOptions) mode() fs.FileMode {
	if o.Mode == 0 {
		return defaultFileMode
	}
	return o.Mode
}

// CopyOptions controls CopyFile.
type CopyOptions struct {
	// Exclusive fails with FileAlreadyExists if the destination exists.
	Exclusive bool
}

// RmOptions controls Rm.
type RmOptions struct {
	// Recursive removes directories and their contents.
	Recursive bool
	// Force turns a missing path into success.
	Force bool
}

// OpenOptions controls Open.
type OpenOptions struct {
	// Flag defaults to os.O_RDONLY.
	Flag int
	// Mode defaults to 0o666 (before umask) and only applies on creation.
	Mode fs.FileMode
}

func (o OpenOptions) mode() fs.FileMode {
	if o.Mode == 0 {
		return defaultFileMode
	}
	return o.Mode
}

// ReadOptions controls Read.
type ReadOptions struct {
	// Positional reads at Offset without moving the file position.
	Positional bool
	Offset     int64
}

// WriteOptions controls Write.
type WriteOptions struct {
	// Positional writes at Offset without moving the file position.
	Positional bool
	Offset     int64
}

// WatchOptions controls Watch.
type WatchOptions struct {
	// Recursive also watches subdirectories, including ones created later.
	Recursive bool
	// Buffer sizes the event channel; defaults to 64.
	Buffer uint
}

func (o WatchOptions) buffer() uint {
	if o.Buffer == 0 {
		return defaultWatchSize
	}
	return o.Buffer
}

// StatFS describes a mounted filesystem.
type StatFS = host.StatFS

// File is an open file handle returned by Open.
type File = host.File

// Op describes a set of change operations.
type Op uint32

const (
	Create Op = Op(fsnotify.Create)
	Write  Op = Op(fsnotify.Write)
	Remove Op = Op(fsnotify.Remove)
	Rename Op = Op(fsnotify.Rename)
	Chmod  Op = Op(fsnotify.Chmod)
)

// Has reports if o includes op.
func (o Op) Has(op Op) bool { return o&op != 0 }

func (o Op) String() string { return fsnotify.Op(o).String() }

// Event is a change reported by a Watcher.
type Event struct {
	Path string
	Op   Op
}
