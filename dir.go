package fsresult

import (
	"errors"
	"io"
	"io/fs"
	"sync"

	"github.com/samber/mo"
)

const dirBatch = 32

// Dir is an open directory stream returned by Opendir.
type Dir struct {
	fsys *FS
	path string
	f    File

	mu  sync.Mutex
	buf []fs.DirEntry
	eof bool
}

// Path returns the path Opendir was called with.
func (d *Dir) Path() string { return d.path }

// Read returns the next entry, or Ok(nil) once the stream is exhausted.
// Entries are in the order the host returns them.
func (d *Dir) Read() mo.Result[fs.DirEntry] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.buf) == 0 && !d.eof {
		r := call(d.fsys, "readdir", d.path, func() ([]fs.DirEntry, error) {
			entries, err := d.f.ReadDir(dirBatch)
			if errors.Is(err, io.EOF) {
				d.eof = true
				err = nil
			}
			return entries, err
		})
		if r.IsError() {
			return mo.Err[fs.DirEntry](r.Error())
		}
		d.buf = r.MustGet()
	}
	if len(d.buf) == 0 {
		return mo.Ok[fs.DirEntry](nil)
	}
	e := d.buf[0]
	d.buf = d.buf[1:]
	return mo.Ok(e)
}

// Close releases the directory handle.
func (d *Dir) Close() mo.Result[struct{}] {
	return do(d.fsys, "closedir", d.path, d.f.Close)
}
