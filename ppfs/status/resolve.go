package status

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// Meta carries the extra metadata a status query can surface alongside the
// type and permissions.
type Meta struct {
	// HardLinks is the hard-link count, 0 when the platform cannot report it
	// from a plain status query.
	HardLinks uint64
	// ModTime is the last write time.
	ModTime time.Time
}

// Stat resolves the status of p, following symlinks. Absence yields
// {TypeNotFound, PermsUnknown} with a nil error; any other platform failure
// yields {TypeNone, PermsUnknown} and the platform error.
func Stat(p fspath.Path) (Status, error) {
	st, _, err := Resolve(p, true)
	return st, err
}

// Lstat resolves the status of p without following symlinks, with the same
// error contract as Stat.
func Lstat(p fspath.Path) (Status, error) {
	st, _, err := Resolve(p, false)
	return st, err
}

// Resolve queries the non-following primitive first and, when the result is a
// symlink and follow is set, re-queries through the link target. It also
// surfaces hard-link count and last write time where the platform reports
// them.
func Resolve(p fspath.Path, follow bool) (Status, Meta, error) {
	fi, err := os.Lstat(p.String())
	if err != nil {
		return statusFromError(err)
	}
	if fi.Mode()&fs.ModeSymlink != 0 && follow {
		fi, err = os.Stat(p.String())
		if err != nil {
			return statusFromError(err)
		}
	}
	return statusFromFileInfo(p, fi), metaFromFileInfo(fi), nil
}

func statusFromError(err error) (Status, Meta, error) {
	if errors.Is(err, fs.ErrNotExist) {
		// Absence is not an error; the query succeeded in determining it.
		return Status{Type: TypeNotFound, Perms: PermsUnknown}, Meta{}, nil
	}
	return Status{Type: TypeNone, Perms: PermsUnknown}, Meta{}, err
}

func typeFromMode(m fs.FileMode) Type {
	switch {
	case m.IsRegular():
		return TypeRegular
	case m.IsDir():
		return TypeDirectory
	case m&fs.ModeSymlink != 0:
		return TypeSymlink
	case m&fs.ModeCharDevice != 0:
		return TypeCharacter
	case m&fs.ModeDevice != 0:
		return TypeBlock
	case m&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case m&fs.ModeSocket != 0:
		return TypeSocket
	default:
		return TypeUnknown
	}
}
