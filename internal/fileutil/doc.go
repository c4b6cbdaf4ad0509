// Package fileutil provides the two leaf operations a directory tree is
// built from: Probe, which classifies a single path, and CreateDirectory,
// which creates exactly one directory level. Both go through a FileSystem
// so callers and tests can substitute the os package.
package fileutil
