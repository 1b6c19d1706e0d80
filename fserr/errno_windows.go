//go:build windows

package fserr

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// windowsCodes maps Win32 error numbers onto the POSIX names the
// classification table is keyed by.
var windowsCodes = map[syscall.Errno]string{
	windows.ERROR_FILE_NOT_FOUND:       "ENOENT",
	windows.ERROR_PATH_NOT_FOUND:       "ENOENT",
	windows.ERROR_INVALID_DRIVE:        "ENOENT",
	windows.ERROR_ACCESS_DENIED:        "EACCES",
	windows.ERROR_SHARING_VIOLATION:    "EBUSY",
	windows.ERROR_PRIVILEGE_NOT_HELD:   "EPERM",
	windows.ERROR_ALREADY_EXISTS:       "EEXIST",
	windows.ERROR_FILE_EXISTS:          "EEXIST",
	windows.ERROR_DIR_NOT_EMPTY:        "ENOTEMPTY",
	windows.ERROR_DIRECTORY:            "ENOTDIR",
	windows.ERROR_INVALID_PARAMETER:    "EINVAL",
	windows.ERROR_INVALID_NAME:         "EINVAL",
	windows.ERROR_NOT_SUPPORTED:        "ENOTSUP",
	windows.ERROR_DISK_FULL:            "ENOSPC",
	windows.ERROR_INVALID_HANDLE:       "EBADF",
	windows.ERROR_FILENAME_EXCED_RANGE: "ENAMETOOLONG",
	// Errnos the syscall package invents for POSIX conditions.
	syscall.EISDIR:    "EISDIR",
	syscall.ENOTEMPTY: "ENOTEMPTY",
	syscall.EINVAL:    "EINVAL",
	syscall.EEXIST:    "EEXIST",
	syscall.EACCES:    "EACCES",
	syscall.EPERM:     "EPERM",
}

func errnoName(e syscall.Errno) string {
	return windowsCodes[e]
}
