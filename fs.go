package fsresult

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"syscall"
	"time"

	"github.com/samber/mo"

	"github.com/jvens/fsresult/fserr"
	"github.com/jvens/fsresult/host"
	"github.com/jvens/fsresult/internal/invoke"
)

// FS wraps host primitives so that each call returns a mo.Result whose
// failure is always a classified *Error.
//
// Every method makes one attempt and adds no buffering, retry or caching.
// An FS is safe for concurrent use if its host is.
type FS struct {
	host    host.FS
	logger  *Logger
	metrics MetricsCollector
	hooks   invoke.Hooks
}

// Default wraps host.Default with no logging or metrics.
var Default = New()

// New creates an FS.
func New(optFns ...Option) *FS {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	fsys := &FS{
		host:    o.host,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	fsys.hooks = invoke.Hooks{Observe: fsys.observe}
	return fsys
}

// Host returns the primitives fsys calls.
func (fsys *FS) Host() host.FS { return fsys.host }

func (fsys *FS) observe(op, _ string, d time.Duration, err *fserr.Error) {
	fsys.metrics.RecordOperation(op, d, err)
	if err != nil {
		fsys.logger.LogFailure(context.Background(), op, err)
	}
}

func call[T any](fsys *FS, op, path string, fn func() (T, error)) mo.Result[T] {
	return invoke.Call(op, path, fn, fsys.hooks)
}

func do(fsys *FS, op, path string, fn func() error) mo.Result[struct{}] {
	return invoke.Do(op, path, fn, fsys.hooks)
}

// Access checks that path is reachable with mode.
func (fsys *FS) Access(path string, mode AccessMode) mo.Result[struct{}] {
	return do(fsys, "access", path, func() error {
		return fsys.host.Access(path, uint32(mode))
	})
}

// Exists reports whether path exists. A missing path is Ok(false); any other
// failure, permission included, is an error.
func (fsys *FS) Exists(path string) mo.Result[bool] {
	return call(fsys, "access", path, func() (bool, error) {
		err := fsys.host.Access(path, uint32(F_OK))
		if err != nil {
			if fserr.Classify(err, path).Kind == fserr.FileNotFound {
				return false, nil
			}
			return false, err
		}
		return true, nil
	})
}

func (fsys *FS) Stat(path string) mo.Result[fs.FileInfo] {
	return call(fsys, "stat", path, func() (fs.FileInfo, error) {
		return fsys.host.Stat(path)
	})
}

// Lstat is Stat without following a final symlink.
func (fsys *FS) Lstat(path string) mo.Result[fs.FileInfo] {
	return call(fsys, "lstat", path, func() (fs.FileInfo, error) {
		return fsys.host.Lstat(path)
	})
}

func (fsys *FS) Statfs(path string) mo.Result[StatFS] {
	return call(fsys, "statfs", path, func() (StatFS, error) {
		return fsys.host.Statfs(path)
	})
}

func (fsys *FS) Mkdir(path string, opts MkdirOptions) mo.Result[struct{}] {
	return do(fsys, "mkdir", path, func() error {
		if opts.Recursive {
			return fsys.host.MkdirAll(path, opts.mode())
		}
		return fsys.host.Mkdir(path, opts.mode())
	})
}

// Mkdtemp creates a new directory in dir whose name starts with pattern
// (a "*" in pattern is replaced by the random part) and returns its path.
func (fsys *FS) Mkdtemp(dir, pattern string) mo.Result[string] {
	return call(fsys, "mkdtemp", dir, func() (string, error) {
		return fsys.host.MkdirTemp(dir, pattern)
	})
}

// Readdir returns the sorted entry names of the directory at path.
func (fsys *FS) Readdir(path string) mo.Result[[]string] {
	return call(fsys, "readdir", path, func() ([]string, error) {
		entries, err := fsys.host.ReadDir(path)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		slices.Sort(names)
		return names, nil
	})
}

// ReaddirEntries is Readdir returning full entries.
func (fsys *FS) ReaddirEntries(path string) mo.Result[[]fs.DirEntry] {
	return call(fsys, "readdir", path, func() ([]fs.DirEntry, error) {
		return fsys.host.ReadDir(path)
	})
}

// Opendir opens the directory at path for incremental reading.
func (fsys *FS) Opendir(path string) mo.Result[*Dir] {
	return call(fsys, "opendir", path, func() (*Dir, error) {
		f, err := fsys.host.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			return nil, err
		}
		return &Dir{fsys: fsys, path: path, f: f}, nil
	})
}

func (fsys *FS) ReadFile(path string) mo.Result[[]byte] {
	return call(fsys, "readfile", path, func() ([]byte, error) {
		return fsys.host.ReadFile(path)
	})
}

// ReadTextFile is ReadFile returning a string.
func (fsys *FS) ReadTextFile(path string) mo.Result[string] {
	return call(fsys, "readfile", path, func() (string, error) {
		data, err := fsys.host.ReadFile(path)
		return string(data), err
	})
}

func (fsys *FS) WriteFile(path string, data []byte, opts WriteFileOptions) mo.Result[struct{}] {
	return do(fsys, "writefile", path, func() error {
		return fsys.host.WriteFile(path, data, opts.flag(), opts.mode())
	})
}

// AppendFile appends data to path, creating it with mode (default 0o666)
// if needed.
func (fsys *FS) AppendFile(path string, data []byte, mode fs.FileMode) mo.Result[struct{}] {
	if mode == 0 {
		mode = defaultFileMode
	}
	return do(fsys, "appendfile", path, func() error {
		return fsys.host.WriteFile(path, data, os.O_WRONLY|os.O_CREATE|os.O_APPEND, mode)
	})
}

// CopyFile copies a single file. Failures carry src as their path.
func (fsys *FS) CopyFile(src, dst string, opts CopyOptions) mo.Result[struct{}] {
	return do(fsys, "copyfile", src, func() error {
		return fsys.host.CopyFile(src, dst, opts.Exclusive)
	})
}

// Cp copies src to dst, recursing into directories.
func (fsys *FS) Cp(src, dst string) mo.Result[struct{}] {
	return do(fsys, "cp", src, func() error {
		info, err := fsys.host.Stat(src)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fsys.host.CopyTree(src, dst)
		}
		return fsys.host.CopyFile(src, dst, false)
	})
}

// Rename moves oldpath to newpath. Failures carry oldpath as their path.
func (fsys *FS) Rename(oldpath, newpath string) mo.Result[struct{}] {
	return do(fsys, "rename", oldpath, func() error {
		return fsys.host.Rename(oldpath, newpath)
	})
}

// Rm removes path. Directories need opts.Recursive, otherwise the call fails
// with IsADirectory. With opts.Force a missing path is not an error; other
// failures still are.
func (fsys *FS) Rm(path string, opts RmOptions) mo.Result[struct{}] {
	return do(fsys, "rm", path, func() error {
		err := fsys.rm(path, opts.Recursive)
		if err != nil && opts.Force && fserr.Classify(err, path).Kind == fserr.FileNotFound {
			return nil
		}
		return err
	})
}

func (fsys *FS) rm(path string, recursive bool) error {
	info, err := fsys.host.Lstat(path)
	if err != nil {
		return err
	}
	if recursive {
		return fsys.host.RemoveAll(path)
	}
	if info.IsDir() {
		return &fs.PathError{Op: "rm", Path: path, Err: syscall.EISDIR}
	}
	return fsys.host.Remove(path)
}

// Rmdir removes an empty directory.
func (fsys *FS) Rmdir(path string) mo.Result[struct{}] {
	return do(fsys, "rmdir", path, func() error {
		return fsys.host.Rmdir(path)
	})
}

// Unlink removes a file or symlink.
func (fsys *FS) Unlink(path string) mo.Result[struct{}] {
	return do(fsys, "unlink", path, func() error {
		return fsys.host.Unlink(path)
	})
}

// Link creates newpath as a hard link to existing. Failures carry existing
// as their path.
func (fsys *FS) Link(existing, newpath string) mo.Result[struct{}] {
	return do(fsys, "link", existing, func() error {
		return fsys.host.Link(existing, newpath)
	})
}

// Symlink creates path as a symbolic link to target.
func (fsys *FS) Symlink(target, path string) mo.Result[struct{}] {
	return do(fsys, "symlink", path, func() error {
		return fsys.host.Symlink(target, path)
	})
}

func (fsys *FS) Readlink(path string) mo.Result[string] {
	return call(fsys, "readlink", path, func() (string, error) {
		return fsys.host.Readlink(path)
	})
}

// Realpath returns the absolute path of path with all symlinks resolved.
func (fsys *FS) Realpath(path string) mo.Result[string] {
	return call(fsys, "realpath", path, func() (string, error) {
		return fsys.host.Realpath(path)
	})
}

func (fsys *FS) Chmod(path string, mode fs.FileMode) mo.Result[struct{}] {
	return do(fsys, "chmod", path, func() error {
		return fsys.host.Chmod(path, mode)
	})
}

func (fsys *FS) Chown(path string, uid, gid int) mo.Result[struct{}] {
	return do(fsys, "chown", path, func() error {
		return fsys.host.Chown(path, uid, gid)
	})
}

func (fsys *FS) Lchown(path string, uid, gid int) mo.Result[struct{}] {
	return do(fsys, "lchown", path, func() error {
		return fsys.host.Lchown(path, uid, gid)
	})
}

// Utimes sets the access and modification times of path.
func (fsys *FS) Utimes(path string, atime, mtime time.Time) mo.Result[struct{}] {
	return do(fsys, "utimes", path, func() error {
		return fsys.host.Chtimes(path, atime, mtime)
	})
}

// Lutimes is Utimes without following a final symlink.
func (fsys *FS) Lutimes(path string, atime, mtime time.Time) mo.Result[struct{}] {
	return do(fsys, "lutimes", path, func() error {
		return fsys.host.Lchtimes(path, atime, mtime)
	})
}

func (fsys *FS) Truncate(path string, size int64) mo.Result[struct{}] {
	return do(fsys, "truncate", path, func() error {
		return fsys.host.Truncate(path, size)
	})
}

// Open opens path. The handle must be released with Close.
func (fsys *FS) Open(path string, opts OpenOptions) mo.Result[File] {
	return call(fsys, "open", path, func() (File, error) {
		return fsys.host.OpenFile(path, opts.Flag, opts.mode())
	})
}

// The handle-based methods below classify failures without a context path.
// A nil handle fails with InvalidArgument.

func handleCall[T any](fsys *FS, op string, f File, fn func() (T, error)) mo.Result[T] {
	return call(fsys, op, "", func() (T, error) {
		if f == nil {
			var zero T
			return zero, fs.ErrInvalid
		}
		return fn()
	})
}

func handleDo(fsys *FS, op string, f File, fn func() error) mo.Result[struct{}] {
	return handleCall(fsys, op, f, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

func (fsys *FS) Close(f File) mo.Result[struct{}] {
	return handleDo(fsys, "close", f, func() error {
		return f.Close()
	})
}

func (fsys *FS) Fstat(f File) mo.Result[fs.FileInfo] {
	return handleCall(fsys, "fstat", f, func() (fs.FileInfo, error) {
		return f.Stat()
	})
}

func (fsys *FS) Fsync(f File) mo.Result[struct{}] {
	return handleDo(fsys, "fsync", f, func() error {
		return f.Sync()
	})
}

func (fsys *FS) Fdatasync(f File) mo.Result[struct{}] {
	return handleDo(fsys, "fdatasync", f, func() error {
		return fsys.host.Fdatasync(f)
	})
}

func (fsys *FS) Ftruncate(f File, size int64) mo.Result[struct{}] {
	return handleDo(fsys, "ftruncate", f, func() error {
		return f.Truncate(size)
	})
}

func (fsys *FS) Fchmod(f File, mode fs.FileMode) mo.Result[struct{}] {
	return handleDo(fsys, "fchmod", f, func() error {
		return f.Chmod(mode)
	})
}

func (fsys *FS) Fchown(f File, uid, gid int) mo.Result[struct{}] {
	return handleDo(fsys, "fchown", f, func() error {
		return f.Chown(uid, gid)
	})
}

func (fsys *FS) Futimes(f File, atime, mtime time.Time) mo.Result[struct{}] {
	return handleDo(fsys, "futimes", f, func() error {
		return fsys.host.Futimes(f, atime, mtime)
	})
}

// Read reads into buf and returns the number of bytes read. Reaching the
// end of the file is not a failure: it yields a short or zero count.
func (fsys *FS) Read(f File, buf []byte, opts ReadOptions) mo.Result[int] {
	return handleCall(fsys, "read", f, func() (int, error) {
		var (
			n   int
			err error
		)
		if opts.Positional {
			n, err = f.ReadAt(buf, opts.Offset)
		} else {
			n, err = f.Read(buf)
		}
		if errors.Is(err, io.EOF) {
			err = nil
		}
		return n, err
	})
}

// Write writes data and returns the number of bytes written.
func (fsys *FS) Write(f File, data []byte, opts WriteOptions) mo.Result[int] {
	return handleCall(fsys, "write", f, func() (int, error) {
		if opts.Positional {
			return f.WriteAt(data, opts.Offset)
		}
		return f.Write(data)
	})
}

// ReadAll reads from the current position to the end of f.
func (fsys *FS) ReadAll(f File) mo.Result[[]byte] {
	return handleCall(fsys, "read", f, func() ([]byte, error) {
		return io.ReadAll(f)
	})
}

// Watch starts watching path for changes.
func (fsys *FS) Watch(path string, opts WatchOptions) mo.Result[*Watcher] {
	return call(fsys, "watch", path, func() (*Watcher, error) {
		return newWatcher(fsys, path, opts)
	})
}
