package s3

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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/jvens/fsresult/host"
	"github.com/jvens/fsresult/remote"
)

// Store implements host.FS over an S3 bucket.
type Store struct {
	host.Unsupported

	client   Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
	timeout  time.Duration
}

var _ host.FS = (*Store)(nil)

// Options configures a Store.
type Options struct {
	// Prefix is prepended to every key (e.g. "my-db/").
	Prefix string
	// Timeout bounds each primitive. Zero means no limit.
	Timeout time.Duration
}

// WithPrefix sets Options.Prefix.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) { o.Prefix = prefix }
}

// WithTimeout sets Options.Timeout.
func WithTimeout(d time.Duration) func(*Options) {
	return func(o *Options) { o.Timeout = d }
}

// New creates a store for bucket.
func New(client Client, bucket string, optFns ...func(*Options)) *Store {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   strings.Trim(opts.Prefix, "/"),
		timeout:  opts.Timeout,
	}
}

// NewFromConfig creates a store using the default AWS configuration chain
// (environment, shared config, instance role).
func NewFromConfig(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return New(s3.NewFromConfig(cfg), bucket, optFns...), nil
}

func (s *Store) requestContext() (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(context.Background(), s.timeout)
	}
	return context.WithCancel(context.Background())
}

func (s *Store) key(name string) string { return remote.Key(s.prefix, name) }

// fail maps a request failure to a coded error.
func fail(op, name string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return remote.Error(op, name, apiErr.ErrorCode(), err)
	}
	return remote.Error(op, name, "", err)
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return remote.NativeCode(apiErr.ErrorCode()) == "ENOENT"
}

// Access only checks existence; objects carry no permission bits.
func (s *Store) Access(name string, _ uint32) error {
	ctx, cancel := s.requestContext()
	defer cancel()
	_, err := s.stat(ctx, "access", name)
	return err
}

func (s *Store) Stat(name string) (fs.FileInfo, error) {
	ctx, cancel := s.requestContext()
	defer cancel()
	return s.stat(ctx, "stat", name)
}

// Lstat is Stat; object stores have no symlinks.
func (s *Store) Lstat(name string) (fs.FileInfo, error) {
	ctx, cancel := s.requestContext()
	defer cancel()
	return s.stat(ctx, "lstat", name)
}

func (s *Store) stat(ctx context.Context, op, name string) (fs.FileInfo, error) {
	key := s.key(name)
	if key != "" && key != s.prefix {
		head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err == nil {
			return remote.NewFileInfo(key, aws.ToInt64(head.ContentLength), aws.ToTime(head.LastModified), false), nil
		}
		if !isNotFound(err) {
			return nil, fail(op, name, err)
		}
	}

	isDir, err := s.hasChildren(ctx, key)
	if err != nil {
		return nil, fail(op, name, err)
	}
	if !isDir && key != s.prefix && key != "" {
		return nil, remote.Errno(op, name, "ENOENT")
	}
	return remote.NewFileInfo(key, 0, time.Time{}, true), nil
}

func (s *Store) hasChildren(ctx context.Context, key string) (bool, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(remote.DirPrefix(key)),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Contents) > 0 || len(out.CommonPrefixes) > 0, nil
}

func (s *Store) ReadFile(name string) ([]byte, error) {
	ctx, cancel := s.requestContext()
	defer cancel()

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			if isDir, lerr := s.hasChildren(ctx, s.key(name)); lerr == nil && isDir {
				return nil, remote.Errno("read", name, "EISDIR")
			}
		}
		return nil, fail("open", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail("read", name, err)
	}
	return data, nil
}

// WriteFile uploads data, replacing the whole object. O_CREATE, O_EXCL and
// O_APPEND are honoured.
func (s *Store) WriteFile(name string, data []byte, flag int, _ fs.FileMode) error {
	ctx, cancel := s.requestContext()
	defer cancel()

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

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fail("write", name, err)
	}
	return nil
}

func isMissing(err error) bool {
	var coded *host.CodedError
	return errors.As(err, &coded) && coded.Code() == "ENOENT"
}

// ReadDir lists the immediate children of name, sorted by name.
func (s *Store) ReadDir(name string) ([]fs.DirEntry, error) {
	ctx, cancel := s.requestContext()
	defer cancel()

	key := s.key(name)
	prefix := remote.DirPrefix(key)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	var entries []fs.DirEntry
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fail("readdir", name, err)
		}
		for _, p := range page.CommonPrefixes {
			entries = append(entries, remote.Entry(remote.NewFileInfo(aws.ToString(p.Prefix), 0, time.Time{}, true)))
		}
		for _, obj := range page.Contents {
			k := aws.ToString(obj.Key)
			if k == prefix {
				continue
			}
			entries = append(entries, remote.Entry(remote.NewFileInfo(k, aws.ToInt64(obj.Size), aws.ToTime(obj.LastModified), false)))
		}
	}

	if len(entries) == 0 && key != "" && key != s.prefix {
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
	ctx, cancel := s.requestContext()
	defer cancel()

	_, err := s.stat(ctx, "mkdir", name)
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
	ctx, cancel := s.requestContext()
	defer cancel()

	info, err := s.stat(ctx, "mkdir", name)
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
	ctx, cancel := s.requestContext()
	defer cancel()

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

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return fail(op, name, err)
	}
	return nil
}

// Rename copies oldpath to newpath and deletes oldpath. It is not atomic
// and only moves single objects.
func (s *Store) Rename(oldpath, newpath string) error {
	ctx, cancel := s.requestContext()
	defer cancel()

	src := s.key(oldpath)
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		Key:        aws.String(s.key(newpath)),
		CopySource: aws.String(s.bucket + "/" + src),
	})
	if err != nil {
		return fail("rename", oldpath, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(src),
	})
	if err != nil {
		return fail("rename", oldpath, err)
	}
	return nil
}
