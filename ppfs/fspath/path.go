// Package fspath provides a portable filesystem path value type with a
// uniform decomposition algebra over the POSIX and Windows path grammars.
//
// A Path owns its native string; parsing is pure and performs no I/O. The
// grammar-specific rules (preferred separator, root-name recognition) live
// behind the Flavor interface so the same decomposition and iteration code
// serves both platforms.
package fspath

import (
	"strings"
	"unicode/utf16"
)

// Path is an owned native path string plus the grammar it is parsed under.
// The zero value is an empty path in the native grammar.
//
// Decomposition accessors compute their results on demand; nothing is cached.
// Mutating methods (Assign, Clear, Append) replace the whole internal string,
// so no two Path values ever share mutable backing storage.
type Path struct {
	s  string
	fl Flavor
}

// New returns a Path in the native grammar of the build target.
func New(s string) Path {
	return Path{s: s, fl: Native()}
}

// NewIn returns a Path parsed under the given flavor.
func NewIn(fl Flavor, s string) Path {
	return Path{s: s, fl: fl}
}

// NewFromUTF16 decodes a wide string at the encoding boundary and returns a
// Path in the native grammar.
func NewFromUTF16(u []uint16) Path {
	return New(string(utf16.Decode(u)))
}

func (p Path) flavor() Flavor {
	if p.fl == nil {
		return Native()
	}
	return p.fl
}

// Flavor returns the grammar this path is parsed under.
func (p Path) Flavor() Flavor { return p.flavor() }

// String returns the native path string.
func (p Path) String() string { return p.s }

// ToUTF16 encodes the native string as a wide string.
func (p Path) ToUTF16() []uint16 {
	return utf16.Encode([]rune(p.s))
}

// GenericString returns the forward-slash normalized form. A leading slash is
// inserted for an absolute path whose native form does not start with a
// separator (for example "C:\x" becomes "/C:/x").
func (p Path) GenericString() string {
	s := p.s
	if p.IsAbsolute() && !strings.HasPrefix(s, "/") && !strings.HasPrefix(s, `\`) {
		s = "/" + s
	}
	return strings.ReplaceAll(s, `\`, "/")
}

// Empty reports whether the path has no content.
func (p Path) Empty() bool { return p.s == "" }

// Assign replaces the path content with s.
func (p *Path) Assign(s string) *Path {
	p.s = s
	return p
}

// AssignPath replaces the path content with that of other.
func (p *Path) AssignPath(other Path) *Path {
	p.s = other.s
	return p
}

// Clear empties the path.
func (p *Path) Clear() {
	p.s = ""
}

// RootName returns the volume or host prefix, empty if the path has none.
func (p Path) RootName() Path {
	return Path{s: p.flavor().RootName(p.s), fl: p.fl}
}

// RootDirectory returns the separator marking an absolute path immediately
// after the root-name, empty if not present.
func (p Path) RootDirectory() Path {
	root := p.flavor().RootName(p.s)
	if len(p.s) > len(root) && p.s[len(root)] == p.flavor().Separator() {
		return Path{s: string(p.flavor().Separator()), fl: p.fl}
	}
	return Path{fl: p.fl}
}

// RootPath returns root-name plus root-directory.
func (p Path) RootPath() Path {
	return Path{s: p.RootName().s + p.RootDirectory().s, fl: p.fl}
}

// RelativePath returns the remainder of the path after its root-path.
func (p Path) RelativePath() Path {
	root := p.RootPath().s
	return Path{s: p.s[min(len(root), len(p.s)):], fl: p.fl}
}

// Filename returns the last non-empty component, or an empty path if the path
// has no relative part or ends in a separator.
func (p Path) Filename() Path {
	if !p.HasRelativePath() {
		return Path{fl: p.fl}
	}
	it := p.End()
	it.Prev()
	return it.Value()
}

// Extension returns the substring of the filename from (and including) the
// last dot. A dotfile has no extension.
func (p Path) Extension() Path {
	name := p.Filename().s
	pos := strings.LastIndexByte(name, '.')
	if pos <= 0 {
		return Path{fl: p.fl}
	}
	return Path{s: name[pos:], fl: p.fl}
}

func (p Path) HasRootName() bool      { return !p.RootName().Empty() }
func (p Path) HasRootDirectory() bool { return !p.RootDirectory().Empty() }
func (p Path) HasRootPath() bool      { return !p.RootPath().Empty() }
func (p Path) HasRelativePath() bool  { return !p.RelativePath().Empty() }
func (p Path) HasFilename() bool      { return !p.Filename().Empty() }

// IsAbsolute reports whether the path names an absolute location. Under the
// Windows grammar both a root-name and a root-directory are required; under
// POSIX a root-directory suffices.
func (p Path) IsAbsolute() bool {
	if isWindows(p.flavor()) {
		return p.HasRootName() && p.HasRootDirectory()
	}
	return p.HasRootDirectory()
}

// IsRelative reports whether the path is not absolute.
func (p Path) IsRelative() bool { return !p.IsAbsolute() }

// Append joins other onto p following native path-join rules: an absolute
// right-hand operand replaces p entirely, a root-only right-hand operand
// resets p to its root-name, and otherwise components concatenate with
// separator de-duplication. An empty other appends a trailing separator
// unless p already ends in one (or in a root-name terminator).
func (p *Path) Append(other Path) *Path {
	sep := p.flavor().Separator()
	o := Path{s: other.s, fl: p.fl}

	if o.s == "" {
		if p.s != "" && p.s[len(p.s)-1] != sep && p.s[len(p.s)-1] != ':' {
			p.s += string(sep)
		}
		return p
	}
	rootName := p.RootName().s
	if o.IsAbsolute() &&
		((p.s != rootName || o.s != string(sep)) || (o.HasRootName() && o.RootName().s != rootName)) {
		p.s = o.s
		return p
	}
	if o.HasRootDirectory() {
		p.s = rootName
	} else if (!p.HasRootDirectory() && p.IsAbsolute()) || p.HasFilename() {
		p.s += string(sep)
	}

	it := o.Begin()
	first := true
	if o.HasRootName() {
		it.Next()
	}
	for !it.AtEnd() {
		if !first && !(p.s != "" && p.s[len(p.s)-1] == sep) {
			p.s += string(sep)
		}
		first = false
		p.s += it.Value().s
		it.Next()
	}
	return p
}

// AppendString appends a path given as a native string.
func (p *Path) AppendString(s string) *Path {
	return p.Append(Path{s: s, fl: p.fl})
}

// Join returns a copy of p with each part appended in turn; p is unchanged.
func (p Path) Join(parts ...string) Path {
	out := p
	for _, part := range parts {
		out.AppendString(part)
	}
	return out
}

// JoinPath returns a copy of p with other appended; p is unchanged.
func (p Path) JoinPath(other Path) Path {
	out := p
	out.Append(other)
	return out
}

// Equal reports whether both paths hold the same native string.
func (p Path) Equal(other Path) bool { return p.s == other.s }

// Less orders paths by native-string comparison.
func (p Path) Less(other Path) bool { return p.s < other.s }

// Compare returns -1, 0 or +1 comparing native strings.
func (p Path) Compare(other Path) int { return strings.Compare(p.s, other.s) }

func isWindows(fl Flavor) bool {
	_, ok := fl.(windowsFlavor)
	return ok
}
