//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package fserr

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func errnoName(e syscall.Errno) string {
	return unix.ErrnoName(e)
}
