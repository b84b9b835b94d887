package common

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathUtils provides path manipulation utilities used across filesystem packages
type PathUtils struct{}

// NewPathUtils creates a new PathUtils instance
func NewPathUtils() *PathUtils {
	return &PathUtils{}
}

// NormalizePath normalizes a file path for cross-platform comparison
func (pu *PathUtils) NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}

// IsSubpath checks if child is a subpath of parent
func (pu *PathUtils) IsSubpath(parent, child string) bool {
	parent = pu.NormalizePath(parent)
	child = pu.NormalizePath(child)

	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return !strings.HasPrefix(rel, "..") && rel != "."
}

// SafetyUtils provides safety checks for file operations used across packages
type SafetyUtils struct{}

// NewSafetyUtils creates a new SafetyUtils instance
func NewSafetyUtils() *SafetyUtils {
	return &SafetyUtils{}
}

// IsFilesystemRoot reports whether path names the filesystem root itself.
// Recursive removal refuses to operate on it.
func (su *SafetyUtils) IsFilesystemRoot(path string) bool {
	return path == "/"
}

// IsSafeOperation checks if a rename/move operation is safe to perform
func (su *SafetyUtils) IsSafeOperation(srcPath, dstPath string) error {
	// Check for self-reference
	if srcPath == dstPath {
		return fmt.Errorf("%w: source and destination are the same", ErrOperationUnsafe)
	}

	// Check for circular operations (moving parent into child)
	pathUtils := NewPathUtils()
	if pathUtils.IsSubpath(srcPath, dstPath) {
		return fmt.Errorf("%w: cannot move parent directory into child directory", ErrOperationUnsafe)
	}

	return nil
}
