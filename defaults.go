package mkdirt

import "io/fs"

const (
	// DefaultMode is the mode the mkdirt command uses for new directories.
	// EnsureTree itself always takes an explicit mode.
	DefaultMode fs.FileMode = 0o775

	// DefaultExistPolicy is used when WithExistPolicy is not given.
	DefaultExistPolicy = ExistFail
)
