package fserr

import "errors"

// DefaultMessage is used when a failure carries an empty message.
const DefaultMessage = "Unknown error"

// Error is a classified filesystem failure.
//
// Syscall and Code are only set for IOError; the specific kinds already say
// everything those fields would. The original failure is available via
// [Error.Cause], and via errors.Unwrap when it is an error.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Syscall string
	Code    string
	cause   any
}

func (e *Error) Error() string { return e.Message }

// Cause returns the failure this error was classified from, unmodified.
func (e *Error) Cause() any { return e.cause }

func (e *Error) Unwrap() error {
	if err, ok := e.cause.(error); ok {
		return err
	}
	return nil
}

// Is reports whether target is a classified error of the same Kind, or the
// io/fs sentinel corresponding to e's Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t != nil && e.Kind == t.Kind
	}
	s, ok := kindToSentinel[e.Kind]
	return ok && target == s
}

// As finds the first classified error in err's chain.
func As(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) && ce != nil {
		return ce, true
	}
	return nil, false
}

// KindOf returns the Kind of the first classified error in err's chain,
// or Unknown if there is none.
func KindOf(err error) Kind {
	if ce, ok := As(err); ok {
		return ce.Kind
	}
	return Unknown
}
