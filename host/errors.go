package host

import "errors"

// CodedError is a primitive failure that carries an errno-style code
// (e.g. "ENOENT") instead of a platform errno.
type CodedError struct {
	op   string
	path string
	code string
	err  error
}

// NewCodedError creates a CodedError. err may be nil.
func NewCodedError(op, path, code string, err error) *CodedError {
	return &CodedError{op: op, path: path, code: code, err: err}
}

func (e *CodedError) Error() string {
	msg := e.code
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	if e.path != "" {
		msg += ", " + e.op + " '" + e.path + "'"
	} else if e.op != "" {
		msg += ", " + e.op
	}
	return msg
}

// Code returns the errno-style code.
func (e *CodedError) Code() string { return e.code }

// Path returns the path the primitive was called with.
func (e *CodedError) Path() string { return e.path }

// Syscall returns the name of the failing primitive.
func (e *CodedError) Syscall() string { return e.op }

func (e *CodedError) Unwrap() error { return e.err }

func unsupported(op, path string) error {
	return NewCodedError(op, path, "ENOTSUP", errors.ErrUnsupported)
}
