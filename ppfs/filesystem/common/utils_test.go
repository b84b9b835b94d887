package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	vu := NewValidationUtils()

	assert.NoError(t, vu.ValidatePath("/usr/local"))
	assert.ErrorIs(t, vu.ValidatePath(""), ErrPathEmpty)
	assert.ErrorIs(t, vu.ValidatePath("/bad\x00path"), ErrPathInvalid)
	assert.ErrorIs(t, vu.ValidatePath("/"+strings.Repeat("a", 4096)), ErrPathTooLong)
}

func TestIsSubpath(t *testing.T) {
	pu := NewPathUtils()

	assert.True(t, pu.IsSubpath("/a/b", "/a/b/c"))
	assert.False(t, pu.IsSubpath("/a/b", "/a/b"))
	assert.False(t, pu.IsSubpath("/a/b", "/a/x"))
	assert.False(t, pu.IsSubpath("/a/b/c", "/a/b"))
}

func TestIsSafeOperation(t *testing.T) {
	su := NewSafetyUtils()

	assert.NoError(t, su.IsSafeOperation("/a/src", "/a/dst"))
	assert.ErrorIs(t, su.IsSafeOperation("/a/src", "/a/src"), ErrOperationUnsafe)
	assert.ErrorIs(t, su.IsSafeOperation("/a", "/a/child"), ErrOperationUnsafe)
}

func TestIsFilesystemRoot(t *testing.T) {
	su := NewSafetyUtils()

	assert.True(t, su.IsFilesystemRoot("/"))
	assert.False(t, su.IsFilesystemRoot("/tmp"))
	assert.False(t, su.IsFilesystemRoot("//"))
}
