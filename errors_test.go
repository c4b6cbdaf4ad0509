package mkdirt_test

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/giantswarm/mkdirt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicErrors() map[string]error {
	return map[string]error{
		"ErrEmptyPath":    mkdirt.ErrEmptyPath,
		"ErrInvalidMode":  mkdirt.ErrInvalidMode,
		"ErrNotDirectory": mkdirt.ErrNotDirectory,
		"ErrInspect":      mkdirt.ErrInspect,
	}
}

func TestPublicErrorConstants(t *testing.T) {
	t.Parallel()

	for name, sentinel := range publicErrors() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.NotNil(t, sentinel)
			assert.NotEmpty(t, sentinel.Error())
			assert.ErrorIs(t, fmt.Errorf("wrapping: %w", sentinel), sentinel)
			assert.NotErrorIs(t, sentinel, errors.New(sentinel.Error()))
		})
	}
}

func TestPublicErrorConstantsAreDistinct(t *testing.T) {
	t.Parallel()

	all := publicErrors()
	for a, errA := range all {
		for b, errB := range all {
			if a != b {
				assert.NotErrorIs(t, errA, errB, "%s must not match %s", a, b)
			}
		}
	}
}

func TestErrNotDirectoryMessage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "cannot create directory tree", mkdirt.ErrNotDirectory.Error())
}

func TestDirectoryCreationError(t *testing.T) {
	t.Parallel()

	cause := &fs.PathError{Op: "mkdir", Path: "/srv/data", Err: syscall.EACCES}
	err := error(&mkdirt.DirectoryCreationError{Path: "/srv/data", Code: "EACCES", Err: cause})

	assert.EqualError(t, err, `error creating directory "/srv/data": EACCES`)
	assert.ErrorIs(t, err, fs.ErrPermission)

	var target *mkdirt.DirectoryCreationError
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &target)
	assert.Equal(t, "/srv/data", target.Path)
}
