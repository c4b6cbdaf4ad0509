package mkdirt

import "io/fs"

// FileSystem is the part of the platform filesystem EnsureTree uses.
// The default implementation calls os.Stat and os.Mkdir.
type FileSystem interface {
	// Stat returns information about name, following symlinks. A missing
	// name must produce an error matching fs.ErrNotExist.
	Stat(name string) (fs.FileInfo, error)

	// Mkdir creates exactly one directory level.
	Mkdir(name string, perm fs.FileMode) error
}
