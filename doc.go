// Package fsresult wraps host filesystem primitives so that every call
// returns a result value instead of a raw Go error, and every failure is
// classified into one of a small, closed set of kinds.
//
// # Quick Start
//
//	fsys := fsresult.New()
//
//	r := fsys.ReadTextFile("config.toml")
//	if r.IsError() {
//	    switch fsresult.KindOf(r.Error()) {
//	    case fsresult.FileNotFound:
//	        // use defaults
//	    case fsresult.PermissionDenied:
//	        // tell the user
//	    }
//	}
//	text := r.OrEmpty()
//
// Results are github.com/samber/mo values, so Map, FlatMap, OrElse and
// friends are available.
//
// # Classification
//
// Failures are mapped from their native code:
//
//	ENOENT           FileNotFound
//	EACCES, EPERM    PermissionDenied
//	ENOTEMPTY        DirectoryNotEmpty
//	EEXIST           FileAlreadyExists
//	ENOTDIR          NotADirectory
//	EISDIR           IsADirectory
//	EINVAL           InvalidArgument
//	anything else    IOError (keeps Code and Syscall)
//	not error-shaped Unknown
//
// Path-based calls attach the path they were given; handle-based calls
// (Close, Fstat, Read, Write, ...) do not. The classified *Error keeps the
// original failure as its cause, and matches the io/fs sentinels:
//
//	errors.Is(r.Error(), fs.ErrNotExist)
//
// # Non-blocking Calls
//
// AsyncFS mirrors FS. Its methods start the call at once and return a Future:
//
//	afs := fsys.Async()
//	a := afs.ReadFile("a.txt")
//	b := afs.ReadFile("b.txt")
//	both := fsresult.All(ctx, a, b)
//
// Every call runs to completion. The context given to Await or All bounds
// only how long the caller waits.
//
// # Hosts
//
// The primitives come from a host.FS. host.Local (the default) is backed by
// package os and golang.org/x/sys; host.Faulty injects failures for tests;
// the remote/s3 and remote/minio packages serve a subset of the primitives
// from object storage.
//
//	fsys := fsresult.New(
//	    fsresult.WithHost(store),
//	    fsresult.WithLogger(fsresult.NewTextLogger(slog.LevelDebug)),
//	)
//
// # Concurrency
//
// FS and AsyncFS hold no mutable state and are safe for concurrent use when
// their host is. Classification is pure.
package fsresult
