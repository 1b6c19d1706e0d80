package fserr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// shape is the error-shaped view of an arbitrary failure value.
type shape struct {
	message string
	code    string
	path    string
	syscall string

	// classified is set when the failure already is (or wraps) an *Error.
	classified *Error
}

// Classify maps failure to exactly one classified error.
//
// failure may be any value. contextPath, when given and non-empty, takes
// precedence over a path carried by the failure itself; only the first
// contextPath is used. The returned error retains failure as its cause.
//
// Classify never panics and never returns nil.
func Classify(failure any, contextPath ...string) (ce *Error) {
	var path string
	if len(contextPath) > 0 {
		path = contextPath[0]
	}

	defer func() {
		if r := recover(); r != nil {
			ce = unknown(failure, path)
		}
	}()

	s, ok := inspect(failure)
	if !ok {
		return unknown(failure, path)
	}
	return s.build(failure, path)
}

func unknown(failure any, path string) *Error {
	return &Error{
		Kind:    Unknown,
		Message: fmt.Sprint(failure),
		Path:    path,
		cause:   failure,
	}
}

func (s shape) build(cause any, contextPath string) *Error {
	kind := KindForCode(s.code)
	if s.classified != nil {
		kind = s.classified.Kind
	}

	e := &Error{
		Kind:    kind,
		Message: s.message,
		Path:    contextPath,
		cause:   cause,
	}
	if e.Message == "" {
		e.Message = DefaultMessage
	}
	if e.Path == "" {
		e.Path = s.path
	}
	if kind == IOError {
		e.Syscall = s.syscall
		e.Code = s.code
	}
	return e
}

// inspect decides whether failure is error-shaped, i.e. exposes a string
// message, and extracts what it carries.
//
// The check is structural: anything with an Error() string method qualifies,
// as do maps and structs with a string "message" field. Failures that crossed
// a serialization boundary keep their fields but lose their Go type, and are
// still classified correctly. Where type identity is reliably preserved this
// could be narrowed to errors.As against concrete types.
func inspect(failure any) (shape, bool) {
	switch f := failure.(type) {
	case nil:
		return shape{}, false
	case error:
		return inspectError(f), true
	default:
		return inspectValue(f)
	}
}

type coder interface{ Code() string }

type pather interface{ Path() string }

type syscaller interface{ Syscall() string }

func inspectError(err error) shape {
	s := shape{message: err.Error()}

	if ce, ok := As(err); ok {
		s.classified = ce
		s.code, s.syscall, s.path = ce.Code, ce.Syscall, ce.Path
		return s
	}

	s.code = nativeCode(err)
	s.syscall, s.path = location(err)
	return s
}

// nativeCode extracts an errno-style code such as "ENOENT" from err's chain.
func nativeCode(err error) string {
	var c coder
	if errors.As(err, &c) {
		if code := c.Code(); code != "" {
			return code
		}
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if name := errnoName(errno); name != "" {
			return name
		}
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "ENOENT"
	case errors.Is(err, fs.ErrPermission):
		return "EACCES"
	case errors.Is(err, fs.ErrExist):
		return "EEXIST"
	case errors.Is(err, fs.ErrInvalid):
		return "EINVAL"
	}
	return ""
}

// location extracts the failing primitive's name and path from err's chain.
func location(err error) (op, path string) {
	var p pather
	if errors.As(err, &p) {
		path = p.Path()
	}
	var sc syscaller
	if errors.As(err, &sc) {
		op = sc.Syscall()
	}
	if op != "" || path != "" {
		return op, path
	}

	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Op, pe.Path
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Op, le.Old
	}
	var se *os.SyscallError
	if errors.As(err, &se) {
		return se.Syscall, ""
	}
	return "", ""
}
