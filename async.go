package fsresult

import (
	"context"
	"io/fs"
	"time"

	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"

	"github.com/jvens/fsresult/internal/invoke"
)

// Future is the pending result of an AsyncFS call.
//
// Await blocks for the result, Done signals settlement and Result polls.
type Future[T any] = invoke.Future[T]

// AsyncFS is the non-blocking counterpart of FS. Each method starts the
// matching FS call on its own goroutine and returns a Future. The call makes
// exactly one attempt and always runs to completion.
type AsyncFS struct {
	fs *FS
}

// Async returns the non-blocking view of fsys.
func (fsys *FS) Async() *AsyncFS { return &AsyncFS{fs: fsys} }

// NewAsync is New(optFns...).Async().
func NewAsync(optFns ...Option) *AsyncFS { return New(optFns...).Async() }

// Sync returns the blocking FS behind a.
func (a *AsyncFS) Sync() *FS { return a.fs }

// All awaits every future and returns their values in order, or the first
// failure. On failure the remaining futures are no longer awaited, but
// their operations still complete.
func All[T any](ctx context.Context, futures ...*Future[T]) mo.Result[[]T] {
	if len(futures) == 0 {
		return mo.Ok([]T{})
	}
	g, gctx := errgroup.WithContext(ctx)
	out := make([]T, len(futures))
	for i, f := range futures {
		g.Go(func() error {
			v, err := f.Await(gctx).Get()
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return mo.Err[[]T](err)
	}
	return mo.Ok(out)
}

func (a *AsyncFS) Access(path string, mode AccessMode) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Access(path, mode) })
}

func (a *AsyncFS) Exists(path string) *Future[bool] {
	return invoke.Go(func() mo.Result[bool] { return a.fs.Exists(path) })
}

func (a *AsyncFS) Stat(path string) *Future[fs.FileInfo] {
	return invoke.Go(func() mo.Result[fs.FileInfo] { return a.fs.Stat(path) })
}

func (a *AsyncFS) Lstat(path string) *Future[fs.FileInfo] {
	return invoke.Go(func() mo.Result[fs.FileInfo] { return a.fs.Lstat(path) })
}

func (a *AsyncFS) Statfs(path string) *Future[StatFS] {
	return invoke.Go(func() mo.Result[StatFS] { return a.fs.Statfs(path) })
}

func (a *AsyncFS) Mkdir(path string, opts MkdirOptions) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Mkdir(path, opts) })
}

func (a *AsyncFS) Mkdtemp(dir, pattern string) *Future[string] {
	return invoke.Go(func() mo.Result[string] { return a.fs.Mkdtemp(dir, pattern) })
}

func (a *AsyncFS) Readdir(path string) *Future[[]string] {
	return invoke.Go(func() mo.Result[[]string] { return a.fs.Readdir(path) })
}

func (a *AsyncFS) ReaddirEntries(path string) *Future[[]fs.DirEntry] {
	return invoke.Go(func() mo.Result[[]fs.DirEntry] { return a.fs.ReaddirEntries(path) })
}

func (a *AsyncFS) Opendir(path string) *Future[*Dir] {
	return invoke.Go(func() mo.Result[*Dir] { return a.fs.Opendir(path) })
}

func (a *AsyncFS) ReadFile(path string) *Future[[]byte] {
	return invoke.Go(func() mo.Result[[]byte] { return a.fs.ReadFile(path) })
}

func (a *AsyncFS) ReadTextFile(path string) *Future[string] {
	return invoke.Go(func() mo.Result[string] { return a.fs.ReadTextFile(path) })
}

func (a *AsyncFS) WriteFile(path string, data []byte, opts WriteFileOptions) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.WriteFile(path, data, opts) })
}

func (a *AsyncFS) AppendFile(path string, data []byte, mode fs.FileMode) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.AppendFile(path, data, mode) })
}

func (a *AsyncFS) CopyFile(src, dst string, opts CopyOptions) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.CopyFile(src, dst, opts) })
}

func (a *AsyncFS) Cp(src, dst string) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Cp(src, dst) })
}

func (a *AsyncFS) Rename(oldpath, newpath string) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Rename(oldpath, newpath) })
}

func (a *AsyncFS) Rm(path string, opts RmOptions) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Rm(path, opts) })
}

func (a *AsyncFS) Rmdir(path string) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Rmdir(path) })
}

func (a *AsyncFS) Unlink(path string) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Unlink(path) })
}

func (a *AsyncFS) Link(existing, newpath string) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Link(existing, newpath) })
}

func (a *AsyncFS) Symlink(target, path string) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Symlink(target, path) })
}

func (a *AsyncFS) Readlink(path string) *Future[string] {
	return invoke.Go(func() mo.Result[string] { return a.fs.Readlink(path) })
}

func (a *AsyncFS) Realpath(path string) *Future[string] {
	return invoke.Go(func() mo.Result[string] { return a.fs.Realpath(path) })
}

func (a *AsyncFS) Chmod(path string, mode fs.FileMode) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Chmod(path, mode) })
}

func (a *AsyncFS) Chown(path string, uid, gid int) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Chown(path, uid, gid) })
}

func (a *AsyncFS) Lchown(path string, uid, gid int) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Lchown(path, uid, gid) })
}

func (a *AsyncFS) Utimes(path string, atime, mtime time.Time) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Utimes(path, atime, mtime) })
}

func (a *AsyncFS) Lutimes(path string, atime, mtime time.Time) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Lutimes(path, atime, mtime) })
}

func (a *AsyncFS) Truncate(path string, size int64) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Truncate(path, size) })
}

func (a *AsyncFS) Open(path string, opts OpenOptions) *Future[File] {
	return invoke.Go(func() mo.Result[File] { return a.fs.Open(path, opts) })
}

func (a *AsyncFS) Close(f File) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Close(f) })
}

func (a *AsyncFS) Fstat(f File) *Future[fs.FileInfo] {
	return invoke.Go(func() mo.Result[fs.FileInfo] { return a.fs.Fstat(f) })
}

func (a *AsyncFS) Fsync(f File) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Fsync(f) })
}

func (a *AsyncFS) Fdatasync(f File) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Fdatasync(f) })
}

func (a *AsyncFS) Ftruncate(f File, size int64) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Ftruncate(f, size) })
}

func (a *AsyncFS) Fchmod(f File, mode fs.FileMode) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Fchmod(f, mode) })
}

func (a *AsyncFS) Fchown(f File, uid, gid int) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Fchown(f, uid, gid) })
}

func (a *AsyncFS) Futimes(f File, atime, mtime time.Time) *Future[struct{}] {
	return invoke.Go(func() mo.Result[struct{}] { return a.fs.Futimes(f, atime, mtime) })
}

// Read must not be called again on f, nor buf reused, until the future settles.
func (a *AsyncFS) Read(f File, buf []byte, opts ReadOptions) *Future[int] {
	return invoke.Go(func() mo.Result[int] { return a.fs.Read(f, buf, opts) })
}

func (a *AsyncFS) Write(f File, data []byte, opts WriteOptions) *Future[int] {
	return invoke.Go(func() mo.Result[int] { return a.fs.Write(f, data, opts) })
}

func (a *AsyncFS) ReadAll(f File) *Future[[]byte] {
	return invoke.Go(func() mo.Result[[]byte] { return a.fs.ReadAll(f) })
}

func (a *AsyncFS) Watch(path string, opts WatchOptions) *Future[*Watcher] {
	return invoke.Go(func() mo.Result[*Watcher] { return a.fs.Watch(path, opts) })
}
