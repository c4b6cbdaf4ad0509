package mkdirt

import (
	"log/slog"

	"github.com/giantswarm/mkdirt/internal/core"
)

// SetLogger replaces the logger mkdirt uses. Created directories are logged
// at debug level.
//
// If l is nil, the logger resets to slog.Default() with a "component"
// attribute, derived on the next call and then cached. Call SetLogger(nil)
// after slog.SetDefault() to pick up the change.
//
// SetLogger is safe to call concurrently with EnsureTree.
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
