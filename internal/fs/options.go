package fs

// ConflictPolicy says what to do when a copy/move destination already exists.
type ConflictPolicy int

const (
	ConflictFail ConflictPolicy = iota
	ConflictOverwrite
	ConflictSkip
	ConflictRenameSuffix
)

// CopyOptions governs a single copy or move operation.
type CopyOptions struct {
	Conflict           ConflictPolicy
	PreserveTimestamps bool
	FollowSymlinks bool // default false: symlinks are copied as links, not resolved
}

// DeleteOptions governs a delete operation.
type DeleteOptions struct {
	Recurse  bool
	IntoTrash bool // best-effort; DeleteTree falls back to unlink if staging fails
}

// DefaultCopyOptions returns the conservative defaults: fail on conflict,
// preserve timestamps, never follow symlinks.
func DefaultCopyOptions() CopyOptions {
	return CopyOptions{Conflict: ConflictFail, PreserveTimestamps: true, FollowSymlinks: false}
}

// DefaultDeleteOptions returns the conservative defaults: recurse, unlink
// rather than trash.
func DefaultDeleteOptions() DeleteOptions {
	return DeleteOptions{Recurse: true, IntoTrash: false}
}
