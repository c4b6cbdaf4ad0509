package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/giantswarm/mkdirt/internal/fileutil"
)

// creatableModeBits are the mode bits os.Mkdir honours.
const creatableModeBits = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// Ancestors returns path preceded by each of its ancestors, root-most first.
//
// Parents are taken lexically without cleaning, so "a/../b" yields
// ".", "a", "a/.." and "a/../b": every directory the platform has to
// traverse is in the chain. Trailing separators are dropped, so "a/b/" and
// "a/b" give the same chain. The chain ends at a fixed point of ParentOf
// ("/", "." or a volume root), so it always terminates.
func Ancestors(path string) []string {
	p := trimTrailingSeparators(path)
	chain := []string{p}
	for {
		parent := ParentOf(p)
		if parent == p {
			break
		}
		chain = append(chain, parent)
		p = parent
	}
	slices.Reverse(chain)
	return chain
}

// ParentOf returns the directory containing path by cutting at the last
// separator, the way os.MkdirAll scans backwards. Unlike filepath.Dir it
// does not clean the result. The root, a bare volume name and "." are
// their own parents; any other single relative element has parent ".".
func ParentOf(path string) string {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]

	i := len(rest)
	for i > 0 && os.IsPathSeparator(rest[i-1]) {
		i--
	}
	if i == 0 {
		return path
	}

	j := i
	for j > 0 && !os.IsPathSeparator(rest[j-1]) {
		j--
	}
	if j == 0 {
		if vol != "" || rest[:i] == "." {
			return path
		}
		return "."
	}

	k := j
	for k > 0 && os.IsPathSeparator(rest[k-1]) {
		k--
	}
	if k == 0 {
		return vol + rest[:1]
	}
	return vol + rest[:k]
}

// trimTrailingSeparators drops trailing separators but keeps a root.
func trimTrailingSeparators(path string) string {
	minLen := len(filepath.VolumeName(path)) + 1
	i := len(path)
	for i > minLen && os.IsPathSeparator(path[i-1]) {
		i--
	}
	return path[:i]
}

// EnsureTree makes sure path and all of its ancestors exist as directories,
// creating the missing ones with mode. Pre-existing directories are left
// untouched.
//
// Errors:
//   - ErrEmptyPath or ErrInvalidMode for bad arguments.
//   - ErrInspect (joined with the cause) when a segment cannot be probed.
//   - ErrNotDirectory when a segment exists but is not a directory.
//   - *fileutil.DirectoryCreationError when Mkdir fails.
//
// No rollback is attempted on failure.
func EnsureTree(cfg Config, path string, mode fs.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}
	if mode&^creatableModeBits != 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := Logger()
	chain := Ancestors(path)
	log.Debug("ensuring directory tree", "path", path, "levels", len(chain), "mode", mode)

	for _, p := range chain {
		if err := ensureDir(cfg, log, p, mode); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir probes one element of the chain and creates it if missing.
func ensureDir(cfg Config, log *slog.Logger, path string, mode fs.FileMode) error {
	result, err := fileutil.Probe(cfg.FS, path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrInspect, path, err)
	}

	switch {
	case result.Blocked():
		return fmt.Errorf("%w: %s is not a directory", ErrNotDirectory, path)
	case result.Satisfied():
		return nil
	}

	if err := fileutil.CreateDirectory(cfg.FS, path, mode); err != nil {
		if cfg.ExistPolicy == ExistRecheck && errors.Is(err, fs.ErrExist) {
			if again, probeErr := fileutil.Probe(cfg.FS, path); probeErr == nil && again.Satisfied() {
				log.Debug("directory created concurrently", "path", path)
				return nil
			}
		}
		return err
	}

	log.Debug("created directory", "path", path)
	return nil
}
