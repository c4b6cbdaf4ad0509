// Package core implements directory tree creation for mkdirt.
//
// EnsureTree splits a path into the path itself and each of its ancestors,
// root-most first, then probes every element in that order and creates the
// ones that are missing. Processing stops at the first failure; directories
// created before the failure are left in place.
//
// The public mkdirt package wraps this package; it re-exports the error
// constants and ExistPolicy and translates functional options into a Config.
package core
