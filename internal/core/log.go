package core

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the logger installed with SetLogger. Nil means Logger falls
// back to defaultLogger.
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches slog.Default() with the mkdirt component attribute.
// SetLogger(nil) clears it so that a later slog.SetDefault is picked up.
var defaultLogger atomic.Pointer[slog.Logger]

// Logger returns the package-level logger. It is safe to call from multiple
// goroutines.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := newDefaultLogger()
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	// A concurrent SetLogger(nil) may have cleared the cache after our CAS
	// lost; never return nil.
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

// newDefaultLogger creates the default logger with the mkdirt component attribute.
func newDefaultLogger() *slog.Logger {
	return slog.Default().With("component", "mkdirt")
}

// SetLogger replaces the package-level logger. A nil l restores the default
// derived from slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}
