package mkdirt

import "fmt"

// Option configures a single EnsureTree or EnsureTreeForFile call.
//
// The With* functions panic on invalid input. Option values are normally
// constants, so an invalid one is a programmer error.
type Option func(*config)

// WithExistPolicy selects how a lost create race is handled.
//
// Default: ExistFail.
//
// Panics if p is not a recognized policy.
func WithExistPolicy(p ExistPolicy) Option {
	if !p.IsValid() {
		panic(fmt.Sprintf("mkdirt: invalid exist policy: %v", p))
	}
	return func(c *config) {
		c.ExistPolicy = p
	}
}

// WithFileSystem replaces the os-backed filesystem, for example to inject
// faults in tests.
//
// Panics if fsys is nil.
func WithFileSystem(fsys FileSystem) Option {
	if fsys == nil {
		panic("mkdirt: file system must not be nil")
	}
	return func(c *config) {
		c.FS = fsys
	}
}
