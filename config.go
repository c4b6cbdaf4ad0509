package mkdirt

import "github.com/giantswarm/mkdirt/internal/core"

// config wraps core.Config so that internal types stay out of the public
// API.
type config struct {
	core.Config
}

func (c config) toCoreConfig() core.Config {
	return c.Config
}

func defaultConfig() config {
	cfg := config{core.DefaultConfig()}
	cfg.ExistPolicy = DefaultExistPolicy
	return cfg
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
