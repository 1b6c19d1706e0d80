package fsresult

import "github.com/jvens/fsresult/fserr"

// Error is a classified filesystem failure. See package fserr.
type Error = fserr.Error

// Kind tags an Error.
type Kind = fserr.Kind

const (
	Unknown           = fserr.Unknown
	FileNotFound      = fserr.FileNotFound
	PermissionDenied  = fserr.PermissionDenied
	DirectoryNotEmpty = fserr.DirectoryNotEmpty
	FileAlreadyExists = fserr.FileAlreadyExists
	NotADirectory     = fserr.NotADirectory
	IsADirectory      = fserr.IsADirectory
	InvalidArgument   = fserr.InvalidArgument
	IOError           = fserr.IOError
)

// Classify maps any failure to an *Error. See fserr.Classify.
func Classify(failure any, contextPath ...string) *Error {
	return fserr.Classify(failure, contextPath...)
}

// KindOf returns the Kind of the first classified error in err's chain.
func KindOf(err error) Kind { return fserr.KindOf(err) }
