//go:build windows

package filesystem

import (
	"golang.org/x/sys/windows"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// HardLinkCount returns the number of hard links to the object p resolves
// to. The count requires opening a handle to the file.
func HardLinkCount(p fspath.Path) (uint64, error) {
	p16, err := windows.UTF16PtrFromString(p.String())
	if err != nil {
		return 0, opError("hard_link_count", p, err)
	}
	h, err := windows.CreateFile(p16, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return 0, opError("hard_link_count", p, err)
	}
	defer windows.CloseHandle(h)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return 0, opError("hard_link_count", p, err)
	}
	return uint64(info.NumberOfLinks), nil
}
