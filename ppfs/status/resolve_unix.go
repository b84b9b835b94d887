//go:build unix

package status

import (
	"io/fs"
	"syscall"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

func statusFromFileInfo(_ fspath.Path, fi fs.FileInfo) Status {
	return Status{
		Type:  typeFromMode(fi.Mode()),
		Perms: Perms(fi.Mode().Perm()),
	}
}

func metaFromFileInfo(fi fs.FileInfo) Meta {
	meta := Meta{ModTime: fi.ModTime()}
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		meta.HardLinks = uint64(st.Nlink)
	}
	return meta
}
