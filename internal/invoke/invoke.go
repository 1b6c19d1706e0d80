// Package invoke runs a single host primitive and turns its outcome into a
// result, classifying any failure. It is shared by the blocking and the
// non-blocking wrapper layers so classification happens in one place.
package invoke

import (
	"time"

	"github.com/samber/mo"

	"github.com/jvens/fsresult/fserr"
)

// Hooks observe completed calls. A nil Observe is ignored.
type Hooks struct {
	Observe func(op, path string, d time.Duration, err *fserr.Error)
}

func (h Hooks) observe(op, path string, start time.Time, err *fserr.Error) {
	if h.Observe != nil {
		h.Observe(op, path, time.Since(start), err)
	}
}

// Call invokes fn exactly once. On failure the error is classified with
// path as context; an empty path means none.
func Call[T any](op, path string, fn func() (T, error), h Hooks) mo.Result[T] {
	start := time.Now()
	v, err := fn()
	if err != nil {
		ce := classify(err, path)
		h.observe(op, path, start, ce)
		return mo.Err[T](ce)
	}
	h.observe(op, path, start, nil)
	return mo.Ok(v)
}

// Do is Call for primitives that produce no value.
func Do(op, path string, fn func() error, h Hooks) mo.Result[struct{}] {
	return Call(op, path, func() (struct{}, error) {
		return struct{}{}, fn()
	}, h)
}

func classify(err error, path string) *fserr.Error {
	if path == "" {
		return fserr.Classify(err)
	}
	return fserr.Classify(err, path)
}
