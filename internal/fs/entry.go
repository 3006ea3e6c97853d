package fs

import (
	"os"
	"time"
)

// DirectoryEntry is one file or directory produced by a listing. It is
// immutable once returned by List/Stat; callers never mutate it in place.
type DirectoryEntry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode

	// Owner/Group/Perm are populated only on platforms that expose them;
	// callers hide these Info-view fields rather than fabricating them.
	Owner string
	Group string
	Perm  string
}

// IsHidden reports whether the entry should be treated as hidden under the
// platform's convention (leading dot, augmented by attribute flags on
// platforms that expose them).
func (e DirectoryEntry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// HasOwnerInfo reports whether Owner/Group/Perm were resolved for this entry.
func (e DirectoryEntry) HasOwnerInfo() bool {
	return e.Owner != "" || e.Group != "" || e.Perm != ""
}
