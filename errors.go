package mkdirt

import (
	"github.com/giantswarm/mkdirt/internal/core"
	"github.com/giantswarm/mkdirt/internal/fileutil"
)

// Sentinel errors for inspection with errors.Is. They are constants and
// cannot be reassigned.
const (
	// ErrEmptyPath is returned when the target path is "".
	ErrEmptyPath = core.ErrEmptyPath

	// ErrInvalidMode is returned when the mode carries bits other than
	// permission, setuid, setgid and sticky bits.
	ErrInvalidMode = core.ErrInvalidMode

	// ErrNotDirectory is returned when a path segment exists but is not a
	// directory. Its message is "cannot create directory tree".
	ErrNotDirectory = core.ErrNotDirectory

	// ErrInspect is returned when a path segment cannot be inspected for a
	// reason other than not existing, such as a permission error on an
	// ancestor. The underlying cause is also in the error chain.
	ErrInspect = core.ErrInspect
)

// DirectoryCreationError is returned when the platform refuses to create a
// directory. Code holds the platform error name, for example "EACCES", and
// errors.Is matches the wrapped cause (fs.ErrPermission, fs.ErrExist, ...).
type DirectoryCreationError = fileutil.DirectoryCreationError
