package host

import (
	"errors"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrInjected is returned by Faulty when a rule has no error of its own.
var ErrInjected = errors.New("injected fault")

// Fault defines how files opened through Faulty misbehave.
type Fault struct {
	FailAfterBytes int64 // Fail writes once this many bytes went to the file. -1 to disable.
	FailOnSync     bool
	FailOnClose    bool
	Err            error
}

type opRule struct {
	op      string
	pattern string
	err     error
}

// Faulty wraps an FS and injects failures, either per primitive call
// (FailOp) or per opened file (AddRule).
type Faulty struct {
	FS FS

	mu      sync.Mutex
	ops     []opRule
	files   map[string]Fault
	Default Fault
}

// NewFaulty wraps base (or Default if nil).
func NewFaulty(base FS) *Faulty {
	if base == nil {
		base = Default
	}
	return &Faulty{
		FS:      base,
		files:   make(map[string]Fault),
		Default: Fault{FailAfterBytes: -1},
	}
}

// FailOp makes the primitive op (e.g. "stat", or "*" for any) fail with err
// for every path containing pattern. Later rules win.
func (f *Faulty) FailOp(op, pattern string, err error) {
	if err == nil {
		err = ErrInjected
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, opRule{op: op, pattern: pattern, err: err})
}

// AddRule sets the file fault for opened files whose name contains pattern.
func (f *Faulty) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[pattern] = fault
}

// Reset drops all rules.
func (f *Faulty) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = nil
	f.files = make(map[string]Fault)
}

func (f *Faulty) check(op string, names ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.ops) - 1; i >= 0; i-- {
		r := f.ops[i]
		if r.op != op && r.op != "*" {
			continue
		}
		for _, name := range names {
			if strings.Contains(name, r.pattern) {
				return &fs.PathError{Op: op, Path: name, Err: r.err}
			}
		}
	}
	return nil
}

func (f *Faulty) Access(name string, mode uint32) error {
	if err := f.check("access", name); err != nil {
		return err
	}
	return f.FS.Access(name, mode)
}

func (f *Faulty) Stat(name string) (fs.FileInfo, error) {
	if err := f.check("stat", name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *Faulty) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check("lstat", name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *Faulty) Statfs(name string) (StatFS, error) {
	if err := f.check("statfs", name); err != nil {
		return StatFS{}, err
	}
	return f.FS.Statfs(name)
}

func (f *Faulty) Mkdir(name string, perm fs.FileMode) error {
	if err := f.check("mkdir", name); err != nil {
		return err
	}
	return f.FS.Mkdir(name, perm)
}

func (f *Faulty) MkdirAll(name string, perm fs.FileMode) error {
	if err := f.check("mkdir", name); err != nil {
		return err
	}
	return f.FS.MkdirAll(name, perm)
}

func (f *Faulty) MkdirTemp(dir, pattern string) (string, error) {
	if err := f.check("mkdtemp", dir); err != nil {
		return "", err
	}
	return f.FS.MkdirTemp(dir, pattern)
}

func (f *Faulty) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *Faulty) ReadFile(name string) ([]byte, error) {
	if err := f.check("open", name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *Faulty) WriteFile(name string, data []byte, flag int, perm fs.FileMode) error {
	if err := f.check("open", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, flag, perm)
}

func (f *Faulty) CopyFile(src, dst string, exclusive bool) error {
	if err := f.check("copyfile", src, dst); err != nil {
		return err
	}
	return f.FS.CopyFile(src, dst, exclusive)
}

func (f *Faulty) CopyTree(src, dst string) error {
	if err := f.check("copytree", src, dst); err != nil {
		return err
	}
	return f.FS.CopyTree(src, dst)
}

func (f *Faulty) Rename(oldpath, newpath string) error {
	if err := f.check("rename", oldpath, newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *Faulty) Remove(name string) error {
	if err := f.check("remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *Faulty) RemoveAll(name string) error {
	if err := f.check("remove", name); err != nil {
		return err
	}
	return f.FS.RemoveAll(name)
}

func (f *Faulty) Rmdir(name string) error {
	if err := f.check("rmdir", name); err != nil {
		return err
	}
	return f.FS.Rmdir(name)
}

func (f *Faulty) Unlink(name string) error {
	if err := f.check("unlink", name); err != nil {
		return err
	}
	return f.FS.Unlink(name)
}

func (f *Faulty) Link(oldname, newname string) error {
	if err := f.check("link", oldname, newname); err != nil {
		return err
	}
	return f.FS.Link(oldname, newname)
}

func (f *Faulty) Symlink(oldname, newname string) error {
	if err := f.check("symlink", newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *Faulty) Readlink(name string) (string, error) {
	if err := f.check("readlink", name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *Faulty) Realpath(name string) (string, error) {
	if err := f.check("realpath", name); err != nil {
		return "", err
	}
	return f.FS.Realpath(name)
}

func (f *Faulty) Chmod(name string, mode fs.FileMode) error {
	if err := f.check("chmod", name); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *Faulty) Chown(name string, uid, gid int) error {
	if err := f.check("chown", name); err != nil {
		return err
	}
	return f.FS.Chown(name, uid, gid)
}

func (f *Faulty) Lchown(name string, uid, gid int) error {
	if err := f.check("lchown", name); err != nil {
		return err
	}
	return f.FS.Lchown(name, uid, gid)
}

func (f *Faulty) Chtimes(name string, atime, mtime time.Time) error {
	if err := f.check("chtimes", name); err != nil {
		return err
	}
	return f.FS.Chtimes(name, atime, mtime)
}

func (f *Faulty) Lchtimes(name string, atime, mtime time.Time) error {
	if err := f.check("lutimes", name); err != nil {
		return err
	}
	return f.FS.Lchtimes(name, atime, mtime)
}

func (f *Faulty) Truncate(name string, size int64) error {
	if err := f.check("truncate", name); err != nil {
		return err
	}
	return f.FS.Truncate(name, size)
}

func (f *Faulty) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	if err := f.check("open", name); err != nil {
		return nil, err
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	fault := f.Default
	for pattern, rule := range f.files {
		if strings.Contains(name, pattern) {
			fault = rule
		}
	}
	f.mu.Unlock()

	return &faultyFile{File: file, fault: fault}, nil
}

func (f *Faulty) Fdatasync(file File) error {
	if err := f.check("fdatasync", file.Name()); err != nil {
		return err
	}
	if ff, ok := file.(*faultyFile); ok {
		if err := ff.syncFault(); err != nil {
			return err
		}
		file = ff.File
	}
	return f.FS.Fdatasync(file)
}

func (f *Faulty) Futimes(file File, atime, mtime time.Time) error {
	if err := f.check("futimes", file.Name()); err != nil {
		return err
	}
	if ff, ok := file.(*faultyFile); ok {
		file = ff.File
	}
	return f.FS.Futimes(file, atime, mtime)
}

func (f *Faulty) NewWatcher(buffer uint) (*fsnotify.Watcher, error) {
	if err := f.check("watch", "*"); err != nil {
		return nil, err
	}
	return f.FS.NewWatcher(buffer)
}

type faultyFile struct {
	File
	fault   Fault
	written int64
}

func (ff *faultyFile) err() error {
	if ff.fault.Err != nil {
		return ff.fault.Err
	}
	return ErrInjected
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if ff.fault.FailAfterBytes >= 0 && ff.written+int64(len(p)) > ff.fault.FailAfterBytes {
		return 0, &fs.PathError{Op: "write", Path: ff.Name(), Err: ff.err()}
	}
	n, err := ff.File.Write(p)
	if n > 0 {
		ff.written += int64(n)
	}
	return n, err
}

func (ff *faultyFile) syncFault() error {
	if ff.fault.FailOnSync {
		return &fs.PathError{Op: "sync", Path: ff.Name(), Err: ff.err()}
	}
	return nil
}

func (ff *faultyFile) Sync() error {
	if err := ff.syncFault(); err != nil {
		return err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		_ = ff.File.Close()
		return &fs.PathError{Op: "close", Path: ff.Name(), Err: ff.err()}
	}
	return ff.File.Close()
}
