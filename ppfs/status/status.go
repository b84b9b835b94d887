// Package status resolves filesystem paths to metadata: the file type and
// the POSIX permission-bit vocabulary. It is the first layer that performs
// I/O; everything below it (fspath) is pure parsing.
package status

// Type classifies what a path refers to.
type Type int

const (
	// TypeNone means the query failed for a reason other than nonexistence.
	TypeNone Type = iota
	// TypeNotFound means the query succeeded in determining absence.
	TypeNotFound
	TypeRegular
	TypeDirectory
	TypeSymlink
	TypeBlock
	TypeCharacter
	TypeFIFO
	TypeSocket
	TypeUnknown
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeNotFound:
		return "not_found"
	case TypeRegular:
		return "regular"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeBlock:
		return "block"
	case TypeCharacter:
		return "character"
	case TypeFIFO:
		return "fifo"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// Perms is a bit set over {owner,group,others} x {read,write,execute}.
type Perms uint32

const (
	OwnerRead   Perms = 0o400
	OwnerWrite  Perms = 0o200
	OwnerExec   Perms = 0o100
	OwnerAll          = OwnerRead | OwnerWrite | OwnerExec
	GroupRead   Perms = 0o040
	GroupWrite  Perms = 0o020
	GroupExec   Perms = 0o010
	GroupAll          = GroupRead | GroupWrite | GroupExec
	OthersRead  Perms = 0o004
	OthersWrite Perms = 0o002
	OthersExec  Perms = 0o001
	OthersAll         = OthersRead | OthersWrite | OthersExec
	PermsAll          = OwnerAll | GroupAll | OthersAll

	// PermsNone means no permission bits are set.
	PermsNone Perms = 0
	// PermsUnknown means the permissions could not be determined.
	PermsUnknown Perms = 0xFFFF
)

// Status pairs a file type with its permission bits.
type Status struct {
	Type  Type
	Perms Perms
}

// Exists reports whether the status describes a present filesystem object.
func (s Status) Exists() bool {
	return s.Type != TypeNone && s.Type != TypeNotFound
}

// IsDirectory reports whether the status describes a directory.
func (s Status) IsDirectory() bool { return s.Type == TypeDirectory }

// IsRegular reports whether the status describes a regular file.
func (s Status) IsRegular() bool { return s.Type == TypeRegular }

// IsSymlink reports whether the status describes a symbolic link.
func (s Status) IsSymlink() bool { return s.Type == TypeSymlink }
