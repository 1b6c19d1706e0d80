//go:build !linux && !darwin && !windows

package host

import (
	"os"
	"time"
)

func (Local) Access(name string, _ uint32) error {
	_, err := os.Stat(name)
	return err
}

func (Local) Rmdir(name string) error {
	info, err := os.Lstat(name)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return unsupported("rmdir", name)
	}
	return os.Remove(name)
}

func (Local) Unlink(name string) error { return os.Remove(name) }

func (Local) Statfs(name string) (StatFS, error) {
	return StatFS{}, unsupported("statfs", name)
}

func (Local) Lchtimes(name string, _, _ time.Time) error {
	return unsupported("lutimes", name)
}

func (Local) Futimes(f File, _, _ time.Time) error {
	return unsupported("futimes", f.Name())
}
