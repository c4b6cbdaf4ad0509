package core

import "github.com/giantswarm/mkdirt/internal/sentinel"

const (
	// ErrEmptyPath is returned when EnsureTree is called with "".
	ErrEmptyPath = sentinel.Error("path must not be empty")

	// ErrInvalidMode is returned when the requested mode carries bits other
	// than permission, setuid, setgid and sticky bits.
	ErrInvalidMode = sentinel.Error("mode must contain only permission bits")

	// ErrNotDirectory is returned when a path segment exists but is not a
	// directory.
	ErrNotDirectory = sentinel.Error("cannot create directory tree")

	// ErrInspect is returned, together with the underlying cause, when a
	// path segment cannot be inspected for a reason other than not existing.
	ErrInspect = sentinel.Error("cannot inspect path")
)
