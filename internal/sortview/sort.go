// Package sortview implements ordering policies and column projections over
// a directory listing, generalized from a fixed name-ascending listing into
// a swappable strategy in the shape of a classic strategy pattern: pick one
// of a small family of orderings at runtime.
package sortview

import (
	"path/filepath"
	"sort"
	"strings"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// Key selects the primary ordering dimension.
type Key string

const (
	KeyName     Key = "name"
	KeySize     Key = "size"
	KeyModified Key = "modified"
	KeyExt      Key = "extension"
	KeyType     Key = "type"
)

// Direction is ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Descriptor is a full sort configuration: key, direction, and whether
// directories are grouped before files (default true).
type Descriptor struct {
	Key            Key
	Direction      Direction
	DirectoriesFirst bool
}

// Default is the panel default: name ascending, directories first.
func Default() Descriptor {
	return Descriptor{Key: KeyName, Direction: Ascending, DirectoriesFirst: true}
}

// Sort orders entries in place per the descriptor. The `..` parent-link
// entry (Name == "..") always sorts first, ahead of everything else.
func Sort(entries []fsutil.DirectoryEntry, d Descriptor) {
	less := comparator(d)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Name == ".." {
			return b.Name != ".."
		}
		if b.Name == ".." {
			return false
		}
		if d.DirectoriesFirst {
			ta, tb := typeRank(a), typeRank(b)
			if ta != tb {
				return ta < tb
			}
		}
		return less(a, b)
	})
}

// typeRank groups directories, then files, then symlinks — used by Sort
// whenever DirectoriesFirst is set, and by the KeyType comparator as its
// primary ordering.
func typeRank(e fsutil.DirectoryEntry) int {
	switch {
	case e.IsDir:
		return 0
	case e.IsSymlink:
		return 2
	default:
		return 1
	}
}

func comparator(d Descriptor) func(a, b fsutil.DirectoryEntry) bool {
	var base func(a, b fsutil.DirectoryEntry) bool
	switch d.Key {
	case KeySize:
		base = func(a, b fsutil.DirectoryEntry) bool {
			if a.Size != b.Size {
				return a.Size < b.Size
			}
			return nameLess(a.Name, b.Name)
		}
	case KeyModified:
		base = func(a, b fsutil.DirectoryEntry) bool {
			if !a.Modified.Equal(b.Modified) {
				return a.Modified.Before(b.Modified)
			}
			return nameLess(a.Name, b.Name)
		}
	case KeyExt:
		base = func(a, b fsutil.DirectoryEntry) bool {
			ea, eb := strings.ToLower(filepath.Ext(a.Name)), strings.ToLower(filepath.Ext(b.Name))
			if ea != eb {
				return ea < eb
			}
			return nameLess(a.Name, b.Name)
		}
	case KeyType:
		base = func(a, b fsutil.DirectoryEntry) bool {
			ta, tb := typeRank(a), typeRank(b)
			if ta != tb {
				return ta < tb
			}
			return nameLess(a.Name, b.Name)
		}
	default: // KeyName
		base = func(a, b fsutil.DirectoryEntry) bool {
			return nameLess(a.Name, b.Name)
		}
	}

	if d.Direction == Descending {
		return func(a, b fsutil.DirectoryEntry) bool { return base(b, a) }
	}
	return base
}

// nameLess compares names case-insensitively, ASCII-folded; not
// locale-aware by design; ordering stays stable across locales.
func nameLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// ViewMode selects which columns a panel renders.
type ViewMode string

const (
	ViewFull  ViewMode = "full"  // name + size + date + time
	ViewBrief ViewMode = "brief" // name only, multi-column
	ViewInfo  ViewMode = "info"  // full + permissions + owner (platform-permitting)
)

// Column describes one rendered field and its minimum width.
type Column struct {
	Name     string
	MinWidth int
}

// Columns returns the ordered column set for a view mode. Owner/permission
// columns are omitted entirely (not blanked) when the platform doesn't
// expose them — callers pass hasOwnerInfo based on whether any entry in the
// listing populated Owner/Group/Perm.
func Columns(mode ViewMode, hasOwnerInfo bool) []Column {
	switch mode {
	case ViewBrief:
		return []Column{{Name: "name", MinWidth: 1}}
	case ViewInfo:
		cols := []Column{
			{Name: "name", MinWidth: 14},
			{Name: "size", MinWidth: 8},
			{Name: "date", MinWidth: 10},
			{Name: "time", MinWidth: 5},
		}
		if hasOwnerInfo {
			cols = append(cols, Column{Name: "perm", MinWidth: 10}, Column{Name: "owner", MinWidth: 8})
		}
		return cols
	default: // ViewFull
		return []Column{
			{Name: "name", MinWidth: 14},
			{Name: "size", MinWidth: 8},
			{Name: "date", MinWidth: 10},
			{Name: "time", MinWidth: 5},
		}
	}
}
