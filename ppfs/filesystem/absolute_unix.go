//go:build unix

package filesystem

import (
	"path/filepath"
	"syscall"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// ToAbsolute resolves p to an absolute path with symlinks expanded, the way
// realpath does. Every component of p must exist.
func ToAbsolute(p fspath.Path) (fspath.Path, error) {
	if p.Empty() {
		return fspath.Path{}, opError("to_absolute", p, syscall.ENOENT)
	}
	abs, err := filepath.Abs(p.String())
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}
	if err != nil {
		return fspath.Path{}, opError("to_absolute", p, err)
	}
	return fspath.New(abs), nil
}
