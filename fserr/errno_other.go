//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos || windows)

package fserr

import "syscall"

// errnoName has no name table on this platform; io/fs sentinels still
// classify the common cases.
func errnoName(syscall.Errno) string { return "" }
