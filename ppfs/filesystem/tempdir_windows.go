//go:build windows

package filesystem

import (
	"os"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

func platformTempDir() fspath.Path {
	return fspath.New(os.TempDir())
}
