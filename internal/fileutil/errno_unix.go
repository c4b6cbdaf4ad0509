//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package fileutil

import (
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

func errnoName(errno syscall.Errno) string {
	if name := unix.ErrnoName(errno); name != "" {
		return name
	}
	return strconv.Itoa(int(errno))
}
