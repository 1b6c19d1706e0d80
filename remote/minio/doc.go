// Package minio serves host filesystem primitives from MinIO or any other
// S3-compatible object store reachable with minio-go.
//
// Only Access, Stat, Lstat, ReadFile, WriteFile, ReadDir, Mkdir, MkdirAll,
// Remove, Unlink and Rename are served; every other primitive fails with
// ENOTSUP.
package minio
