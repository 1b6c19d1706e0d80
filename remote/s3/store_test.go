package s3

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jvens/fsresult"
)

func headKey(key string) any {
	return mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return *in.Bucket == "test-bucket" && *in.Key == key
	})
}

func getKey(key string) any {
	return mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Bucket == "test-bucket" && *in.Key == key
	})
}

func listPrefix(prefix string) any {
	return mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return *in.Bucket == "test-bucket" && *in.Prefix == prefix
	})
}

func newTestFS(t *testing.T) (*MockS3Client, *fsresult.FS) {
	t.Helper()
	mockClient := new(MockS3Client)
	t.Cleanup(func() { mockClient.AssertExpectations(t) })
	store := New(mockClient, "test-bucket", WithPrefix("/prefix/"), WithTimeout(time.Second))
	return mockClient, fsresult.New(fsresult.WithHost(store))
}

func requireKind(t *testing.T, err error, kind fsresult.Kind) *fsresult.Error {
	t.Helper()
	require.Error(t, err)
	var ce *fsresult.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, kind, ce.Kind, ce.Message)
	return ce
}

func TestStore_Stat(t *testing.T) {
	mod := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("object", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("HeadObject", mock.Anything, headKey("prefix/a.txt")).Return(&s3.HeadObjectOutput{
			ContentLength: aws.Int64(42),
			LastModified:  aws.Time(mod),
		}, nil).Once()

		r := fsys.Stat("a.txt")
		require.True(t, r.IsOk())
		info := r.MustGet()
		assert.Equal(t, "a.txt", info.Name())
		assert.Equal(t, int64(42), info.Size())
		assert.Equal(t, mod, info.ModTime())
		assert.False(t, info.IsDir())
	})

	t.Run("implicit directory", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("HeadObject", mock.Anything, headKey("prefix/dir")).Return(nil, &types.NotFound{}).Once()
		mockClient.On("ListObjectsV2", mock.Anything, listPrefix("prefix/dir/")).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{{Key: aws.String("prefix/dir/x")}},
		}, nil).Once()

		r := fsys.Stat("dir")
		require.True(t, r.IsOk())
		assert.True(t, r.MustGet().IsDir())
	})

	t.Run("missing", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("HeadObject", mock.Anything, headKey("prefix/nope")).Return(nil, &types.NotFound{}).Once()
		mockClient.On("ListObjectsV2", mock.Anything, listPrefix("prefix/nope/")).Return(&s3.ListObjectsV2Output{}, nil).Once()

		ce := requireKind(t, fsys.Stat("nope").Error(), fsresult.FileNotFound)
		assert.Equal(t, "nope", ce.Path)

		mockClient.On("HeadObject", mock.Anything, headKey("prefix/nope")).Return(nil, &types.NotFound{}).Once()
		mockClient.On("ListObjectsV2", mock.Anything, listPrefix("prefix/nope/")).Return(&s3.ListObjectsV2Output{}, nil).Once()
		exists := fsys.Exists("nope")
		require.True(t, exists.IsOk())
		assert.False(t, exists.MustGet())
	})

	t.Run("access denied", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("HeadObject", mock.Anything, headKey("prefix/secret")).Return(nil, &smithy.GenericAPIError{
			Code:    "Forbidden",
			Message: "Forbidden",
		}).Once()

		ce := requireKind(t, fsys.Lstat("secret").Error(), fsresult.PermissionDenied)
		assert.Equal(t, "secret", ce.Path)
	})
}

func TestStore_ReadFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("GetObject", mock.Anything, getKey("prefix/a.txt")).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader("hello")),
		}, nil).Once()

		assert.Equal(t, "hello", fsys.ReadTextFile("a.txt").MustGet())
	})

	t.Run("no such key", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("GetObject", mock.Anything, getKey("prefix/gone")).Return(nil, &types.NoSuchKey{}).Once()
		mockClient.On("ListObjectsV2", mock.Anything, listPrefix("prefix/gone/")).Return(&s3.ListObjectsV2Output{}, nil).Once()

		ce := requireKind(t, fsys.ReadFile("gone").Error(), fsresult.FileNotFound)
		assert.Equal(t, "gone", ce.Path)
		assert.Empty(t, ce.Code)
	})

	t.Run("directory", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("GetObject", mock.Anything, getKey("prefix/dir")).Return(nil, &types.NoSuchKey{}).Once()
		mockClient.On("ListObjectsV2", mock.Anything, listPrefix("prefix/dir/")).Return(&s3.ListObjectsV2Output{
			CommonPrefixes: []types.CommonPrefix{{Prefix: aws.String("prefix/dir/sub/")}},
		}, nil).Once()

		requireKind(t, fsys.ReadFile("dir").Error(), fsresult.IsADirectory)
	})

	t.Run("service failure keeps its code", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("GetObject", mock.Anything, getKey("prefix/busy")).Return(nil, &smithy.GenericAPIError{
			Code:    "SlowDown",
			Message: "Please reduce your request rate.",
		}).Once()

		ce := requireKind(t, fsys.ReadFile("busy").Error(), fsresult.IOError)
		assert.Equal(t, "SlowDown", ce.Code)
		assert.Equal(t, "open", ce.Syscall)
	})
}

func TestStore_WriteFile(t *testing.T) {
	t.Run("upload", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			if *in.Key != "prefix/out.txt" {
				return false
			}
			data, err := io.ReadAll(in.Body)
			return err == nil && string(data) == "payload"
		})).Return(&s3.PutObjectOutput{}, nil).Once()

		assert.True(t, fsys.WriteFile("out.txt", []byte("payload"), fsresult.WriteFileOptions{}).IsOk())
	})

	t.Run("exclusive", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("GetObject", mock.Anything, getKey("prefix/out.txt")).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader("old")),
		}, nil).Once()

		r := fsys.WriteFile("out.txt", []byte("new"), fsresult.WriteFileOptions{Exclusive: true})
		ce := requireKind(t, r.Error(), fsresult.FileAlreadyExists)
		assert.Equal(t, "out.txt", ce.Path)
	})

	t.Run("read-only flag", func(t *testing.T) {
		_, fsys := newTestFS(t)
		r := fsys.WriteFile("out.txt", nil, fsresult.WriteFileOptions{Flag: os.O_RDONLY | os.O_CREATE})
		ce := requireKind(t, r.Error(), fsresult.IOError)
		assert.Equal(t, "EBADF", ce.Code)
	})
}

func TestStore_ReadDir(t *testing.T) {
	mockClient, fsys := newTestFS(t)
	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return *in.Prefix == "prefix/docs/" && aws.ToString(in.Delimiter) == "/"
	})).Return(&s3.ListObjectsV2Output{
		CommonPrefixes: []types.CommonPrefix{{Prefix: aws.String("prefix/docs/img/")}},
		Contents: []types.Object{
			{Key: aws.String("prefix/docs/")},
			{Key: aws.String("prefix/docs/b.md"), Size: aws.Int64(3)},
			{Key: aws.String("prefix/docs/a.md"), Size: aws.Int64(1)},
		},
	}, nil).Once()

	r := fsys.Readdir("docs")
	require.True(t, r.IsOk())
	assert.Equal(t, []string{"a.md", "b.md", "img"}, r.MustGet())
}

func TestStore_Remove(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("HeadObject", mock.Anything, headKey("prefix/del")).Return(&s3.HeadObjectOutput{
			ContentLength: aws.Int64(1),
		}, nil).Once()
		mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
			return *in.Key == "prefix/del"
		})).Return(&s3.DeleteObjectOutput{}, nil).Once()

		assert.True(t, fsys.Unlink("del").IsOk())
	})

	t.Run("missing with force", func(t *testing.T) {
		mockClient, fsys := newTestFS(t)
		mockClient.On("HeadObject", mock.Anything, headKey("prefix/del")).Return(nil, &types.NotFound{}).Once()
		mockClient.On("ListObjectsV2", mock.Anything, listPrefix("prefix/del/")).Return(&s3.ListObjectsV2Output{}, nil).Once()

		assert.True(t, fsys.Rm("del", fsresult.RmOptions{Force: true}).IsOk())
	})
}

func TestStore_Rename(t *testing.T) {
	mockClient, fsys := newTestFS(t)
	mockClient.On("CopyObject", mock.Anything, mock.MatchedBy(func(in *s3.CopyObjectInput) bool {
		return *in.CopySource == "test-bucket/prefix/old" && *in.Key == "prefix/new"
	})).Return(&s3.CopyObjectOutput{}, nil).Once()
	mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return *in.Key == "prefix/old"
	})).Return(&s3.DeleteObjectOutput{}, nil).Once()

	assert.True(t, fsys.Rename("old", "new").IsOk())

	mockClient.On("CopyObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchKey{}).Once()
	ce := requireKind(t, fsys.Rename("missing", "new").Error(), fsresult.FileNotFound)
	assert.Equal(t, "missing", ce.Path)
}

func TestStore_Mkdir(t *testing.T) {
	mockClient, fsys := newTestFS(t)
	mockClient.On("HeadObject", mock.Anything, headKey("prefix/d")).Return(nil, &types.NotFound{}).Twice()
	mockClient.On("ListObjectsV2", mock.Anything, listPrefix("prefix/d/")).Return(&s3.ListObjectsV2Output{}, nil).Twice()

	assert.True(t, fsys.Mkdir("d", fsresult.MkdirOptions{}).IsOk())
	assert.True(t, fsys.Mkdir("d", fsresult.MkdirOptions{Recursive: true}).IsOk())

	mockClient.On("HeadObject", mock.Anything, headKey("prefix/f")).Return(&s3.HeadObjectOutput{}, nil).Once()
	requireKind(t, fsys.Mkdir("f", fsresult.MkdirOptions{}).Error(), fsresult.FileAlreadyExists)
}

func TestStore_Unsupported(t *testing.T) {
	_, fsys := newTestFS(t)
	ce := requireKind(t, fsys.Symlink("a", "b").Error(), fsresult.IOError)
	assert.Equal(t, "ENOTSUP", ce.Code)
	assert.Equal(t, "b", ce.Path)
}
