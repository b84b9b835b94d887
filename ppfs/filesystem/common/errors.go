package common

import (
	"errors"
	"strings"
)

// Common error types used across filesystem packages
var (
	ErrPathEmpty       = errors.New("path cannot be empty")
	ErrPathTooLong     = errors.New("path too long (max 4096 characters)")
	ErrPathInvalid     = errors.New("path contains invalid characters")
	ErrOperationUnsafe = errors.New("operation is not safe to perform")
)

// ValidationUtils provides common validation utilities used across packages
type ValidationUtils struct{}

// NewValidationUtils creates a new ValidationUtils instance
func NewValidationUtils() *ValidationUtils {
	return &ValidationUtils{}
}

// ValidatePath validates that a path string is usable in an operation
func (vu *ValidationUtils) ValidatePath(path string) error {
	if path == "" {
		return ErrPathEmpty
	}
	if err := vu.ValidatePathCharacters(path); err != nil {
		return err
	}
	return vu.ValidatePathLength(path)
}

// ValidatePathLength validates that a path is not too long
func (vu *ValidationUtils) ValidatePathLength(path string) error {
	if len(path) > 4096 {
		return ErrPathTooLong
	}
	return nil
}

// ValidatePathCharacters validates that a path doesn't contain invalid characters
func (vu *ValidationUtils) ValidatePathCharacters(path string) error {
	if strings.Contains(path, "\x00") {
		return ErrPathInvalid
	}
	return nil
}
