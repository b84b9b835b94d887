//go:build unix

package filesystem

import (
	"os"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

var tempDirEnvVars = []string{"TMPDIR", "TMP", "TEMP", "TEMPDIR"}

func platformTempDir() fspath.Path {
	for _, name := range tempDirEnvVars {
		if dir := os.Getenv(name); dir != "" {
			return fspath.New(dir)
		}
	}
	return fspath.New("/tmp")
}
