package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/jvens/fsresult/host"
	"github.com/jvens/fsresult/remote"
)

// Store implements host.FS for MinIO and S3-compatible storage.
type Store struct {
	host.Unsupported

	client *minio.Client
	bucket string
	prefix string
}

var _ host.FS = (*Store)(nil)

// New creates a store for bucket.
// prefix is prepended to all keys (e.g. "data/").
func New(client *minio.Client, bucket, prefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *Store) key(name string) string { return remote.Key(s.prefix, name) }

func (s *Store) isRoot(key string) bool { return key == "" || key == s.prefix }

func fail(op, name string, err error) error {
	return remote.Error(op, name, minio.ToErrorResponse(err).Code, err)
}

func isNotFound(err error) bool {
	return remote.NativeCode(minio.ToErrorResponse(err).Code) == "ENOENT"
}

func isMissing(err error) bool {
	var coded *host.CodedError
	return errors.As(err, &coded) && coded.Code() == "ENOENT"
}

// Access only checks existence; objects carry no permission bits.
func (s *Store) Access(name string, _ uint32) error {
	_, err := s.stat(context.Background(), "access", name)
	return err
}

func (s *Store) Stat(name string) (fs.FileInfo, error) {
	return s.stat(context.Background(), "stat", name)
}

// Lstat is Stat; object stores have no symlinks.
func (s *Store) Lstat(name string) (fs.FileInfo, error) {
	return s.stat(context.Background(), "lstat", name)
}

func (s *Store) stat(ctx context.Context, op, name string) (fs.FileInfo, error) {
	key := s.key(name)
	if !s.isRoot(key) {
		info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return remote.NewFileInfo(key, info.Size, info.LastModified, false), nil
		}
		if !isNotFound(err) {
			return nil, fail(op, name, err)
		}
	}

	isDir, err := s.hasChildren(ctx, key)
	if err != nil {
		return nil, fail(op, name, err)
	}
	if !isDir && !s.isRoot(key) {
		return nil, remote.Errno(op, name, "ENOENT")
	}
	return remote.NewFileInfo(key, 0, time.Time{}, true), nil
}

func (s *Store) hasChildren(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:  remote.DirPrefix(key),
		MaxKeys: 1,
	}) {
		if obj.Err != nil {
			return false, obj.Err
		}
		return true, nil
	}
	return false, nil
}

func (s *Store) ReadFile(name string) ([]byte, error) {
	ctx := context.Background()
	key := s.key(name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fail("open", name, err)
	}
	defer obj.Close()

	// GetObject is lazy; failures such as NoSuchKey surface on first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			if isDir, lerr := s.hasChildren(ctx, key); lerr == nil && isDir {
				return nil, remote.Errno("read", name, "EISDIR")
			}
		}
		return nil, fail("open", name, err)
	}
	return data, nil
}

// WriteFile uploads data, replacing the whole object. O_CREATE, O_EXCL and
// O_APPEND are honoured.
func (s *Store) WriteFile(name string, data []byte, flag int, _ fs.FileMode) error {
	if flag&(os.O_WRONLY|os.O_RDWR) == 0 {
		return remote.Errno("open", name, "EBADF")
	}

	if flag&(os.O_EXCL|os.O_APPEND) != 0 || flag&os.O_CREATE == 0 {
		existing, err := s.ReadFile(name)
		switch {
		case err != nil && (!isMissing(err) || flag&os.O_CREATE == 0):
			return err
		case err == nil && flag&os.O_EXCL != 0:
			return remote.Errno("open", name, "EEXIST")
		case err == nil && flag&os.O_APPEND != 0:
			data = append(existing, data...)
		}
	}

	_, err := s.client.PutObject(context.Background(), s.bucket, s.key(name),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return fail("write", name, err)
	}
	return nil
}

// ReadDir lists the immediate children of name, sorted by name.
func (s *Store) ReadDir(name string) ([]fs.DirEntry, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	key := s.key(name)
	prefix := remote.DirPrefix(key)

	var entries []fs.DirEntry
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix: prefix,
	}) {
		if obj.Err != nil {
			return nil, fail("readdir", name, obj.Err)
		}
		if obj.Key == prefix {
			continue
		}
		isDir := strings.HasSuffix(obj.Key, "/")
		entries = append(entries, remote.Entry(remote.NewFileInfo(obj.Key, obj.Size, obj.LastModified, isDir)))
	}

	if len(entries) == 0 && !s.isRoot(key) {
		if _, err := s.stat(ctx, "readdir", name); err != nil {
			return nil, err
		}
		return nil, remote.Errno("readdir", name, "ENOTDIR")
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

// Mkdir fails if name exists and otherwise does nothing.
func (s *Store) Mkdir(name string, _ fs.FileMode) error {
	_, err := s.stat(context.Background(), "mkdir", name)
	if err == nil {
		return remote.Errno("mkdir", name, "EEXIST")
	}
	if isMissing(err) {
		return nil
	}
	return err
}

// MkdirAll fails if name is an object and otherwise does nothing.
func (s *Store) MkdirAll(name string, _ fs.FileMode) error {
	info, err := s.stat(context.Background(), "mkdir", name)
	switch {
	case err == nil && !info.IsDir():
		return remote.Errno("mkdir", name, "ENOTDIR")
	case err == nil || isMissing(err):
		return nil
	default:
		return err
	}
}

func (s *Store) Remove(name string) error { return s.remove("remove", name) }

func (s *Store) Unlink(name string) error { return s.remove("unlink", name) }

func (s *Store) remove(op, name string) error {
	ctx := context.Background()

	info, err := s.stat(ctx, op, name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if op == "unlink" {
			return remote.Errno(op, name, "EISDIR")
		}
		return remote.Errno(op, name, "ENOTEMPTY")
	}

	if err := s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{}); err != nil {
		return fail(op, name, err)
	}
	return nil
}

// Rename copies oldpath to newpath and deletes oldpath. It is not atomic
// and only moves single objects.
func (s *Store) Rename(oldpath, newpath string) error {
	ctx := context.Background()
	src := s.key(oldpath)

	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: s.key(newpath)},
		minio.CopySrcOptions{Bucket: s.bucket, Object: src},
	)
	if err != nil {
		return fail("rename", oldpath, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, src, minio.RemoveObjectOptions{}); err != nil {
		return fail("rename", oldpath, err)
	}
	return nil
}
