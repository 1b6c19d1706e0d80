// Package s3 serves host filesystem primitives from an Amazon S3 bucket.
//
// # Usage
//
//	store, err := s3.NewFromConfig(ctx, "my-bucket", s3.WithPrefix("data/"))
//	if err != nil {
//	    return err
//	}
//	fsys := fsresult.New(fsresult.WithHost(store))
//	r := fsys.ReadFile("reports/2024.csv")
//
// Only Access, Stat, Lstat, ReadFile, WriteFile, ReadDir, Mkdir, MkdirAll, Remove,
// Unlink and Rename are served; every other primitive fails with ENOTSUP.
// Service errors such as NoSuchKey or AccessDenied are reported with the
// matching native code, so they classify like local failures.
package s3
