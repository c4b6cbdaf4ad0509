package mkdirt

// ConfigSnapshot is a copy of the resolved per-call configuration, exported
// to mkdirt_test so option closures can be checked without reaching into
// internals.
type ConfigSnapshot struct {
	ExistPolicy ExistPolicy
	FS          FileSystem
}

// ApplyOptionsForTesting resolves opts exactly as EnsureTree does.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := newConfig(opts)
	return ConfigSnapshot{
		ExistPolicy: cfg.ExistPolicy,
		FS:          cfg.FS,
	}
}
