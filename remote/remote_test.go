package remote

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvens/fsresult/fserr"
	"github.com/jvens/fsresult/host"
)

func TestNativeCode(t *testing.T) {
	tests := []struct {
		service string
		want    fserr.Kind
	}{
		{"NoSuchKey", fserr.FileNotFound},
		{"NotFound", fserr.FileNotFound},
		{"NoSuchBucket", fserr.FileNotFound},
		{"AccessDenied", fserr.PermissionDenied},
		{"Forbidden", fserr.PermissionDenied},
		{"BucketAlreadyExists", fserr.FileAlreadyExists},
		{"PreconditionFailed", fserr.FileAlreadyExists},
		{"BucketNotEmpty", fserr.DirectoryNotEmpty},
		{"InvalidObjectName", fserr.InvalidArgument},
		{"KeyTooLongError", fserr.InvalidArgument},
		{"SlowDown", fserr.IOError},
		{"", fserr.IOError},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			err := Error("get", "a/b", tt.service, errors.New("request failed"))
			ce := fserr.Classify(err)
			assert.Equal(t, tt.want, ce.Kind)
			assert.Equal(t, "a/b", ce.Path)
		})
	}

	t.Run("unknown codes survive", func(t *testing.T) {
		ce := fserr.Classify(Error("put", "k", "SlowDown", nil))
		assert.Equal(t, "SlowDown", ce.Code)
		assert.Equal(t, "put", ce.Syscall)
	})
}

func TestErrno(t *testing.T) {
	err := Errno("remove", "dir", "EISDIR")
	var coded *host.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, fserr.IsADirectory, fserr.Classify(err).Kind)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "a/b", Key("", "/a/b"))
	assert.Equal(t, "a/b", Key("", "a//b/"))
	assert.Equal(t, "p/a", Key("p/", "a"))
	assert.Equal(t, "p", Key("p", ""))
	assert.Equal(t, "", Key("", "/"))
	assert.Equal(t, "p/x", Key("p", "../x"))

	assert.Equal(t, "", DirPrefix(""))
	assert.Equal(t, "a/", DirPrefix("a"))
	assert.Equal(t, "a/", DirPrefix("a/"))
}

func TestFileInfo(t *testing.T) {
	mod := time.Unix(100, 0)
	fi := NewFileInfo("p/dir/", 0, mod, true)
	assert.Equal(t, "dir", fi.Name())
	assert.True(t, fi.IsDir())
	assert.True(t, fi.Mode().IsDir())

	fi = NewFileInfo("p/file.txt", 12, mod, false)
	assert.Equal(t, "file.txt", fi.Name())
	assert.Equal(t, int64(12), fi.Size())
	assert.Equal(t, mod, fi.ModTime())
	assert.Nil(t, fi.Sys())

	e := Entry(fi)
	assert.Equal(t, "file.txt", e.Name())
	assert.Equal(t, fs.FileMode(0), e.Type())
}
