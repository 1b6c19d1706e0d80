package host

import (
	"io/fs"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Unsupported implements every FS primitive by failing with ENOTSUP.
// Backends embed it and override what they can serve.
type Unsupported struct{}

var _ FS = Unsupported{}

func (Unsupported) Access(name string, _ uint32) error    { return unsupported("access", name) }
func (Unsupported) Stat(name string) (fs.FileInfo, error) { return nil, unsupported("stat", name) }
func (Unsupported) Lstat(name string) (fs.FileInfo, error) {
	return nil, unsupported("lstat", name)
}
func (Unsupported) Statfs(name string) (StatFS, error) {
	return StatFS{}, unsupported("statfs", name)
}
func (Unsupported) Mkdir(name string, _ fs.FileMode) error    { return unsupported("mkdir", name) }
func (Unsupported) MkdirAll(name string, _ fs.FileMode) error { return unsupported("mkdir", name) }
func (Unsupported) MkdirTemp(dir, _ string) (string, error) {
	return "", unsupported("mkdtemp", dir)
}
func (Unsupported) ReadDir(name string) ([]fs.DirEntry, error) {
	return nil, unsupported("readdir", name)
}
func (Unsupported) ReadFile(name string) ([]byte, error) { return nil, unsupported("open", name) }
func (Unsupported) WriteFile(name string, _ []byte, _ int, _ fs.FileMode) error {
	return unsupported("open", name)
}
func (Unsupported) CopyFile(src, _ string, _ bool) error { return unsupported("copyfile", src) }
func (Unsupported) CopyTree(src, _ string) error         { return unsupported("copytree", src) }
func (Unsupported) Rename(oldpath, _ string) error       { return unsupported("rename", oldpath) }
func (Unsupported) Remove(name string) error             { return unsupported("remove", name) }
func (Unsupported) RemoveAll(name string) error          { return unsupported("remove", name) }
func (Unsupported) Rmdir(name string) error              { return unsupported("rmdir", name) }
func (Unsupported) Unlink(name string) error             { return unsupported("unlink", name) }
func (Unsupported) Link(oldname, _ string) error         { return unsupported("link", oldname) }
func (Unsupported) Symlink(_, newname string) error      { return unsupported("symlink", newname) }
func (Unsupported) Readlink(name string) (string, error) {
	return "", unsupported("readlink", name)
}
func (Unsupported) Realpath(name string) (string, error) {
	return "", unsupported("realpath", name)
}
func (Unsupported) Chmod(name string, _ fs.FileMode) error { return unsupported("chmod", name) }
func (Unsupported) Chown(name string, _, _ int) error      { return unsupported("chown", name) }
func (Unsupported) Lchown(name string, _, _ int) error     { return unsupported("lchown", name) }
func (Unsupported) Chtimes(name string, _, _ time.Time) error {
	return unsupported("chtimes", name)
}
func (Unsupported) Lchtimes(name string, _, _ time.Time) error {
	return unsupported("lutimes", name)
}
func (Unsupported) Truncate(name string, _ int64) error { return unsupported("truncate", name) }
func (Unsupported) OpenFile(name string, _ int, _ fs.FileMode) (File, error) {
	return nil, unsupported("open", name)
}
func (Unsupported) Fdatasync(f File) error { return unsupported("fdatasync", f.Name()) }
func (Unsupported) Futimes(f File, _, _ time.Time) error {
	return unsupported("futimes", f.Name())
}
func (Unsupported) NewWatcher(uint) (*fsnotify.Watcher, error) {
	return nil, unsupported("watch", "")
}
