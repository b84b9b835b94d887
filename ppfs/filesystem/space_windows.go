//go:build windows

package filesystem

import (
	"golang.org/x/sys/windows"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// Space reports the capacity of the volume holding p.
func Space(p fspath.Path) (SpaceInfo, error) {
	p16, err := windows.UTF16PtrFromString(p.String())
	if err != nil {
		return SpaceInfo{}, opError("space", p, err)
	}
	var available, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p16, &available, &total, &totalFree); err != nil {
		return SpaceInfo{}, opError("space", p, err)
	}
	return SpaceInfo{
		Capacity:  total,
		Free:      totalFree,
		Available: available,
	}, nil
}
