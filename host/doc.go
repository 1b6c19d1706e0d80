// Package host defines the filesystem primitives the result wrappers forward
// to, and their production and test implementations.
//
// The package defines two key interfaces:
//
//   - [File]: an open handle; *os.File satisfies it
//   - [FS]: path-level and handle-level primitives (stat, mkdir, open, ...)
//
// # Implementations
//
//   - [Local]: production implementation over package os and golang.org/x/sys
//   - [Faulty]: test utility that injects failures per primitive and path
//   - [Unsupported]: embeddable base for partial backends (object stores)
//
// # Usage
//
// Production code uses host.Default (which is [Local]):
//
//	info, err := host.Default.Stat(path)
//
// Tests inject [Faulty] to simulate failures the real OS rarely produces:
//
//	ffs := host.NewFaulty(nil)
//	ffs.AddRule("rmdir", "busy", host.NewCodedError("rmdir", "", "EBUSY", nil))
//
// # Design Notes
//
// Primitives are synchronous and take no context.Context. Local filesystem
// syscalls are not interruptible, so a context would promise cancellation
// that cannot happen. The non-blocking layer above decides when to start a
// call; once started a call always runs to completion.
//
// Failures are returned the way package os returns them: a *fs.PathError or
// *os.LinkError wrapping the platform errno. Backends without an errno
// return a [*CodedError] carrying an errno-style code instead.
package host
