package fileutil

import (
	"errors"
	"io/fs"
)

// ProbeResult describes the state of a single path at the moment it was
// inspected. A zero value means the path exists but is not a directory.
type ProbeResult uint8

const (
	// ProbeCreatable is set when the path is a directory or does not exist.
	ProbeCreatable ProbeResult = 1 << iota
	// ProbeSatisfied is set when the path is already a directory.
	ProbeSatisfied
)

// Creatable reports whether the path is absent or already a directory.
func (r ProbeResult) Creatable() bool { return r&ProbeCreatable != 0 }

// Satisfied reports whether the path is already a directory.
func (r ProbeResult) Satisfied() bool { return r&ProbeSatisfied != 0 }

// Blocked reports whether a non-directory entry occupies the path.
func (r ProbeResult) Blocked() bool { return r&ProbeCreatable == 0 }

func (r ProbeResult) String() string {
	switch {
	case r.Blocked():
		return "blocked"
	case r.Satisfied():
		return "satisfied"
	default:
		return "creatable"
	}
}

// Probe inspects path without modifying anything.
//
// A missing path is ProbeCreatable and a directory is
// ProbeCreatable|ProbeSatisfied. Any other entry yields a zero result. Stat
// errors other than fs.ErrNotExist are returned unchanged with a zero result.
func Probe(fsys FileSystem, path string) (ProbeResult, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ProbeCreatable, nil
		}
		return 0, err
	}
	if info.IsDir() {
		return ProbeCreatable | ProbeSatisfied, nil
	}
	return 0, nil
}
