package mkdirt

import (
	"fmt"
	"io/fs"

	"github.com/giantswarm/mkdirt/internal/core"
)

// EnsureTree makes sure path and every ancestor of path exist as
// directories. Missing ones are created with mode, root-most first;
// existing directories keep their mode. It succeeds without changes if path
// is already a directory.
//
// Relative paths are resolved against the working directory. On failure,
// directories created by this call are left in place.
func EnsureTree(path string, mode fs.FileMode, opts ...Option) error {
	return core.EnsureTree(newConfig(opts).toCoreConfig(), path, mode)
}

// EnsureTreeForFile ensures the directory that will contain filePath. The
// parent is taken lexically, so "a/../f" ensures "a/..", and with it "a".
func EnsureTreeForFile(filePath string, mode fs.FileMode, opts ...Option) error {
	if filePath == "" {
		return ErrEmptyPath
	}
	if err := EnsureTree(core.ParentOf(filePath), mode, opts...); err != nil {
		return fmt.Errorf("ensure tree for %s: %w", filePath, err)
	}
	return nil
}
