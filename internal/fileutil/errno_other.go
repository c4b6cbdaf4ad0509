//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package fileutil

import (
	"strconv"
	"syscall"
)

// Platforms without a symbolic errno table report the numeric value.
func errnoName(errno syscall.Errno) string {
	return strconv.Itoa(int(errno))
}
