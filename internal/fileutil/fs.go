package fileutil

import (
	"io/fs"
	"os"
)

// FileSystem is the subset of the platform filesystem that Probe and
// CreateDirectory need.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Mkdir(name string, perm fs.FileMode) error
}

var _ FileSystem = OSFileSystem{}

// OSFileSystem implements FileSystem with the os package.
type OSFileSystem struct{}

// Stat follows symlinks, so a link to a directory probes as a directory.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OSFileSystem) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(name, perm)
}
