//go:build !windows

package fspath

// Native returns the path grammar of the build target.
func Native() Flavor { return Posix() }
