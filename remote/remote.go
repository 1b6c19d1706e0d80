// Package remote holds what the object-store backends share: translation
// of service error codes into native codes, key mapping and synthesized
// file metadata.
//
// Object stores have no directories. A directory exists when at least one
// key lives below it; creating one is a no-op.
package remote

import (
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/jvens/fsresult/host"
)

var codes = map[string]string{
	"NoSuchKey":    "ENOENT",
	"NotFound":     "ENOENT",
	"NoSuchBucket": "ENOENT",

	"AccessDenied": "EACCES",
	"Forbidden":    "EACCES",

	"BucketAlreadyExists":     "EEXIST",
	"BucketAlreadyOwnedByYou": "EEXIST",
	"PreconditionFailed":      "EEXIST",

	"BucketNotEmpty": "ENOTEMPTY",

	"InvalidArgument":   "EINVAL",
	"InvalidObjectName": "EINVAL",
	"KeyTooLongError":   "EINVAL",
	"InvalidBucketName": "EINVAL",
}

// NativeCode translates an object-store error code. Unknown codes are
// returned unchanged.
func NativeCode(serviceCode string) string {
	if c, ok := codes[serviceCode]; ok {
		return c
	}
	return serviceCode
}

// Error wraps a failed request as a *host.CodedError carrying the native
// code for serviceCode.
func Error(op, name, serviceCode string, err error) error {
	return host.NewCodedError(op, name, NativeCode(serviceCode), err)
}

// Errno builds a failure for a condition detected locally, such as
// removing a directory with Remove.
func Errno(op, name, code string) error {
	return host.NewCodedError(op, name, code, nil)
}

// Key maps a path to an object key below prefix. The bucket root maps to
// prefix itself.
func Key(prefix, name string) string {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// DirPrefix returns the listing prefix for the directory at key.
func DirPrefix(key string) string {
	if key == "" || strings.HasSuffix(key, "/") {
		return key
	}
	return key + "/"
}

// FileInfo is synthesized metadata for an object or implicit directory.
type FileInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

// NewFileInfo creates metadata for key.
func NewFileInfo(key string, size int64, modTime time.Time, dir bool) FileInfo {
	return FileInfo{
		name:    path.Base(strings.TrimSuffix(key, "/")),
		size:    size,
		modTime: modTime,
		dir:     dir,
	}
}

func (fi FileInfo) Name() string       { return fi.name }
func (fi FileInfo) Size() int64        { return fi.size }
func (fi FileInfo) ModTime() time.Time { return fi.modTime }
func (fi FileInfo) IsDir() bool        { return fi.dir }
func (fi FileInfo) Sys() any           { return nil }

func (fi FileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// Entry converts fi to a directory entry.
func Entry(fi FileInfo) fs.DirEntry { return fs.FileInfoToDirEntry(fi) }
