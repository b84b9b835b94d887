//go:build windows

package status

import (
	"io/fs"
	"strings"
	"syscall"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// executableExtensions is the well-known set used to infer an executable bit
// on a platform whose native attributes carry none.
var executableExtensions = []string{".exe", ".cmd", ".bat", ".com"}

func statusFromFileInfo(p fspath.Path, fi fs.FileInfo) Status {
	prms := OwnerRead | GroupRead | OthersRead
	readonly := false
	if attrs, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok {
		readonly = attrs.FileAttributes&syscall.FILE_ATTRIBUTE_READONLY != 0
	}
	if !readonly {
		prms |= OwnerWrite | GroupWrite | OthersWrite
	}
	ext := p.Extension().GenericString()
	for _, e := range executableExtensions {
		if strings.EqualFold(ext, e) {
			prms |= OwnerExec | GroupExec | OthersExec
			break
		}
	}
	return Status{Type: typeFromMode(fi.Mode()), Perms: prms}
}

// metaFromFileInfo reports a zero hard-link count: on this platform the count
// requires a handle query, which the filesystem layer performs separately.
func metaFromFileInfo(fi fs.FileInfo) Meta {
	return Meta{ModTime: fi.ModTime()}
}
