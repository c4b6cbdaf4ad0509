// Package mkdirt creates a directory together with any missing ancestors,
// in the manner of "mkdir -p".
//
// EnsureTree walks the path from the root-most ancestor down to the target.
// Each element is probed first: an existing directory is left untouched, a
// missing one is created with the requested mode, and anything else stops
// the walk with an error. Calling EnsureTree again on the same path creates
// nothing and succeeds.
//
// # Basic Usage
//
//	import "github.com/giantswarm/mkdirt"
//
//	if err := mkdirt.EnsureTree("var/cache/app", 0o775); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// A segment that exists but is not a directory yields ErrNotDirectory. A
// segment that cannot be inspected for a reason other than not existing
// yields ErrInspect joined with the cause. A refused Mkdir yields a
// *DirectoryCreationError carrying the path and the platform error code,
// for example EACCES. Directories created before a failure are not removed.
//
// # Concurrent Callers
//
// Calls are not coordinated with each other. If two callers race to create
// the same directory, the loser's Mkdir fails with EEXIST and, by default,
// that failure is returned. Pass WithExistPolicy(ExistRecheck) to accept a
// directory that appeared between the probe and the create.
package mkdirt
