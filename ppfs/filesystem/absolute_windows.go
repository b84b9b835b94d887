//go:build windows

package filesystem

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// ToAbsolute resolves p against the working directory. Unlike the Unix
// variant the components need not exist and symlinks are left alone.
func ToAbsolute(p fspath.Path) (fspath.Path, error) {
	if p.Empty() {
		wd, err := os.Getwd()
		if err != nil {
			return fspath.Path{}, opError("to_absolute", p, err)
		}
		return fspath.New(wd + `\`), nil
	}
	abs, err := filepath.Abs(p.String())
	if err != nil {
		return fspath.Path{}, opError("to_absolute", p, err)
	}
	return fspath.New(abs), nil
}
