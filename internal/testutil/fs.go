// Package testutil provides filesystem helpers shared by mkdirt test packages.
package testutil

import (
	"io/fs"
	"os"
	"sync"
	"testing"
)

// Op names a filesystem call recorded by FaultFS.
type Op string

const (
	OpStat  Op = "stat"
	OpMkdir Op = "mkdir"
)

// Call is one recorded filesystem call.
type Call struct {
	Op   Op
	Path string
}

// FaultFS forwards Stat and Mkdir to the os package, records every call and
// fails the calls registered with FailStat and FailMkdir. Paths are matched
// exactly as passed by the caller.
type FaultFS struct {
	mu        sync.Mutex
	statErrs  map[string]error
	mkdirErrs map[string]error
	hooks     map[string]func()
	calls     []Call
}

// NewFaultFS returns a FaultFS with no injected faults.
func NewFaultFS() *FaultFS {
	return &FaultFS{
		statErrs:  make(map[string]error),
		mkdirErrs: make(map[string]error),
		hooks:     make(map[string]func()),
	}
}

// FailStat makes Stat(path) return a *fs.PathError wrapping err.
func (f *FaultFS) FailStat(path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statErrs[path] = err
	return f
}

// FailMkdir makes Mkdir(path) return a *fs.PathError wrapping err.
func (f *FaultFS) FailMkdir(path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mkdirErrs[path] = err
	return f
}

// BeforeMkdir runs hook immediately before the real Mkdir(path). Tests use
// it to let a simulated concurrent caller win the race for path.
func (f *FaultFS) BeforeMkdir(path string, hook func()) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[path] = hook
	return f
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: OpStat, Path: name})
	err := f.statErrs[name]
	f.mu.Unlock()

	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return os.Stat(name)
}

func (f *FaultFS) Mkdir(name string, perm fs.FileMode) error {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: OpMkdir, Path: name})
	err := f.mkdirErrs[name]
	hook := f.hooks[name]
	f.mu.Unlock()

	if err != nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: err}
	}
	if hook != nil {
		hook()
	}
	return os.Mkdir(name, perm)
}

// Calls returns a copy of every recorded call in order.
func (f *FaultFS) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Mkdirs returns the paths passed to Mkdir, in order.
func (f *FaultFS) Mkdirs() []string {
	var paths []string
	for _, c := range f.Calls() {
		if c.Op == OpMkdir {
			paths = append(paths, c.Path)
		}
	}
	return paths
}

// IsDir reports whether path currently exists as a directory.
func IsDir(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteFile creates an empty regular file at path and fails the test on error.
func WriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("create file %s: %v", path, err)
	}
}

// SkipIfPrivileged skips tests that rely on permission bits being
// enforced, which they are not for root.
func SkipIfPrivileged(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
}
