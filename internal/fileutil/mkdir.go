package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// unknownCode is used when a Mkdir failure carries no platform errno.
const unknownCode = "UNKNOWN"

// DirectoryCreationError reports that the platform refused to create a
// single directory.
type DirectoryCreationError struct {
	// Path is the directory that could not be created.
	Path string
	// Code is the platform error name, for example "EACCES" or "EEXIST".
	Code string
	// Err is the error returned by Mkdir.
	Err error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("error creating directory %q: %s", e.Path, e.Code)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// CreateDirectory creates exactly one directory level at path with mode.
// The parent must already exist. Failures are returned as
// *DirectoryCreationError and never retried.
func CreateDirectory(fsys FileSystem, path string, mode fs.FileMode) error {
	if err := fsys.Mkdir(path, mode); err != nil {
		return &DirectoryCreationError{Path: path, Code: ErrorCode(err), Err: err}
	}
	return nil
}

// ErrorCode returns the platform name of the errno wrapped by err.
func ErrorCode(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return unknownCode
	}
	return errnoName(errno)
}
