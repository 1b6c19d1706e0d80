// Package fserr classifies filesystem failures into a small, closed set of
// error kinds.
//
// Every failure a filesystem primitive can produce, whether a [*fs.PathError]
// wrapping an errno, a remote object-store error carrying a service code, or a
// loosely structured value that crossed a process boundary, is mapped by
// [Classify] to exactly one [*Error] with one of nine [Kind] values.
//
// # Classification Table
//
//	ENOENT          FileNotFound
//	EACCES, EPERM   PermissionDenied
//	ENOTEMPTY       DirectoryNotEmpty
//	EEXIST          FileAlreadyExists
//	ENOTDIR         NotADirectory
//	EISDIR          IsADirectory
//	EINVAL          InvalidArgument
//	anything else   IOError (keeps Syscall and Code)
//
// Values that are not error-shaped at all (nil, strings, numbers) become
// Unknown.
//
// # Usage
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    ce := fserr.Classify(err, path)
//	    if ce.Kind == fserr.FileNotFound {
//	        // ...
//	    }
//	}
//
// Classified errors interoperate with the standard library:
//
//	errors.Is(ce, fs.ErrNotExist) // true for FileNotFound
//
// [Classify] is pure and holds no state, so it is safe for concurrent use.
package fserr
