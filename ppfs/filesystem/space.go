package filesystem

// SpaceInfo describes capacity of the filesystem holding a path, in bytes.
type SpaceInfo struct {
	// Capacity is the total size of the filesystem.
	Capacity uint64
	// Free is the space free on the filesystem, including space reserved
	// for privileged users.
	Free uint64
	// Available is the space available to an unprivileged caller.
	Available uint64
}
