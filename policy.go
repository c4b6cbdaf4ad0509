package mkdirt

import "github.com/giantswarm/mkdirt/internal/core"

// ExistPolicy controls what happens when creating a directory fails because
// it already exists, which means another caller created it after it was
// probed. It is an alias so that IsValid and String are part of the public
// API.
type ExistPolicy = core.ExistPolicy

const (
	// ExistFail returns the *DirectoryCreationError with code EEXIST, the
	// same as any other create failure. This is the default.
	ExistFail = core.ExistFail

	// ExistRecheck probes the path again after an "already exists" failure
	// and treats it as success if the path is now a directory.
	ExistRecheck = core.ExistRecheck
)
