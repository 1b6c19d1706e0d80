package minio

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvens/fsresult"
)

func requireKind(t *testing.T, err error, kind fsresult.Kind) *fsresult.Error {
	t.Helper()
	require.Error(t, err)
	var ce *fsresult.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, kind, ce.Kind, ce.Message)
	return ce
}

func newClient(t *testing.T, endpoint string) *minio.Client {
	t.Helper()
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return client
}

func TestStore_ServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>`+
			`<Error><Code>AccessDenied</Code><Message>Access Denied.</Message></Error>`)
	}))
	defer srv.Close()

	store := New(newClient(t, strings.TrimPrefix(srv.URL, "http://")), "bucket", "data/")
	fsys := fsresult.New(fsresult.WithHost(store))

	ce := requireKind(t, fsys.Stat("secret.txt").Error(), fsresult.PermissionDenied)
	assert.Equal(t, "secret.txt", ce.Path)

	requireKind(t, fsys.ReadFile("secret.txt").Error(), fsresult.PermissionDenied)
	requireKind(t, fsys.WriteFile("secret.txt", []byte("x"), fsresult.WriteFileOptions{}).Error(), fsresult.PermissionDenied)

	ce = requireKind(t, fsys.Chmod("secret.txt", 0o600).Error(), fsresult.IOError)
	assert.Equal(t, "ENOTSUP", ce.Code)
}

// TestStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestStore_Integration(t *testing.T) {
	bucket := "test-fsresult"
	client := newClient(t, "localhost:9000")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Check if MinIO is reachable
	if _, err := client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	fsys := fsresult.New(fsresult.WithHost(New(client, bucket, "it/")))
	t.Cleanup(func() {
		fsys.Rm("dir/a.txt", fsresult.RmOptions{Force: true})
		fsys.Rm("dir/b.txt", fsresult.RmOptions{Force: true})
	})

	require.True(t, fsys.WriteFile("dir/a.txt", []byte("hello"), fsresult.WriteFileOptions{}).IsOk())
	require.True(t, fsys.AppendFile("dir/a.txt", []byte(" minio"), 0).IsOk())
	assert.Equal(t, "hello minio", fsys.ReadTextFile("dir/a.txt").MustGet())

	requireKind(t, fsys.WriteFile("dir/a.txt", nil, fsresult.WriteFileOptions{Exclusive: true}).Error(), fsresult.FileAlreadyExists)

	info := fsys.Stat("dir")
	require.True(t, info.IsOk())
	assert.True(t, info.MustGet().IsDir())

	assert.Equal(t, []string{"a.txt"}, fsys.Readdir("dir").MustGet())
	requireKind(t, fsys.ReadFile("dir").Error(), fsresult.IsADirectory)

	require.True(t, fsys.Rename("dir/a.txt", "dir/b.txt").IsOk())
	requireKind(t, fsys.ReadFile("dir/a.txt").Error(), fsresult.FileNotFound)
	assert.False(t, fsys.Exists("dir/a.txt").MustGet())

	require.True(t, fsys.Unlink("dir/b.txt").IsOk())
	requireKind(t, fsys.Unlink("dir/b.txt").Error(), fsresult.FileNotFound)
}
