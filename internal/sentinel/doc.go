// Package sentinel holds the string-backed error type used for mkdirt's
// exported sentinel errors, so they can be declared as const and still be
// matched with errors.Is through wrapped chains.
package sentinel
