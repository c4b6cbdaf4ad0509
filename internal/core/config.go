package core

import (
	"errors"
	"fmt"

	"github.com/giantswarm/mkdirt/internal/fileutil"
)

// ExistPolicy controls how EnsureTree treats a Mkdir that fails because the
// directory appeared between the probe and the create, typically because
// another caller created it concurrently.
type ExistPolicy int

const (
	// ExistFail returns the *DirectoryCreationError (code EEXIST) like any
	// other create failure. This is the default.
	ExistFail ExistPolicy = iota

	// ExistRecheck probes the path once more after an "already exists"
	// failure and succeeds if it is now a directory. Any other outcome
	// returns the original create error.
	ExistRecheck
)

// IsValid reports whether p is a recognized ExistPolicy value.
func (p ExistPolicy) IsValid() bool {
	switch p {
	case ExistFail, ExistRecheck:
		return true
	default:
		return false
	}
}

// String returns the name of the policy.
func (p ExistPolicy) String() string {
	switch p {
	case ExistFail:
		return "ExistFail"
	case ExistRecheck:
		return "ExistRecheck"
	default:
		return fmt.Sprintf("ExistPolicy(%d)", int(p))
	}
}

// Config holds the settings for one EnsureTree call. It is built fresh per
// call and never shared between calls.
type Config struct {
	// ExistPolicy selects how an EEXIST from Mkdir is handled.
	// Default: ExistFail.
	ExistPolicy ExistPolicy

	// FS is the filesystem probed and modified. Default: fileutil.OSFileSystem.
	FS fileutil.FileSystem
}

// DefaultConfig returns a Config backed by the os package.
func DefaultConfig() Config {
	return Config{
		ExistPolicy: ExistFail,
		FS:          fileutil.OSFileSystem{},
	}
}

// Validate reports every invalid field at once using errors.Join.
func (c Config) Validate() error {
	var errs []error

	if c.FS == nil {
		errs = append(errs, errors.New("file system must not be nil"))
	}
	if !c.ExistPolicy.IsValid() {
		errs = append(errs, fmt.Errorf("invalid exist policy: %v", c.ExistPolicy))
	}

	return errors.Join(errs...)
}
