package fserr

import "io/fs"

// Kind specifies the semantic category of a filesystem failure.
type Kind uint8

//go:generate stringer -type=Kind
const (
	Unknown           Kind = iota // Failure was not error-shaped.
	FileNotFound                  // Item does not exist.
	PermissionDenied              // Permission denied.
	DirectoryNotEmpty             // Directory not empty.
	FileAlreadyExists             // Item already exists.
	NotADirectory                 // Item is not a directory.
	IsADirectory                  // Item is a directory.
	InvalidArgument               // Invalid argument for the item or operation.
	IOError                       // Any other failure; keeps Syscall and Code.
)

// codeToKind is the classification table. Codes not listed map to IOError.
var codeToKind = map[string]Kind{
	"ENOENT":    FileNotFound,
	"EACCES":    PermissionDenied,
	"EPERM":     PermissionDenied,
	"ENOTEMPTY": DirectoryNotEmpty,
	"EEXIST":    FileAlreadyExists,
	"ENOTDIR":   NotADirectory,
	"EISDIR":    IsADirectory,
	"EINVAL":    InvalidArgument,
}

// kindToSentinel lets classified errors match the io/fs sentinels.
var kindToSentinel = map[Kind]error{
	FileNotFound:      fs.ErrNotExist,
	PermissionDenied:  fs.ErrPermission,
	FileAlreadyExists: fs.ErrExist,
	InvalidArgument:   fs.ErrInvalid,
}

// KindForCode returns the Kind a native error code classifies as.
// Unrecognized and empty codes yield IOError.
func KindForCode(code string) Kind {
	if k, ok := codeToKind[code]; ok {
		return k
	}
	return IOError
}
