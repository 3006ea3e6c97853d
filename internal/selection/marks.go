// Package selection implements the marked-file algebra and quick-search
// (type-to-filter) buffer that sit on top of one panel's current listing.
package selection

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// Marks tracks which entries in a listing are selected, keyed by full path
// so marks survive a re-sort or view-mode change as long as the path
// still appears in the listing.
type Marks struct {
	set map[string]struct{}
}

// New returns an empty mark set.
func New() *Marks {
	return &Marks{set: make(map[string]struct{})}
}

// IsMarked reports whether path is currently selected.
func (m *Marks) IsMarked(path string) bool {
	_, ok := m.set[path]
	return ok
}

// Count reports how many paths are currently selected.
func (m *Marks) Count() int {
	return len(m.set)
}

// Paths returns the selected paths in no particular order.
func (m *Marks) Paths() []string {
	out := make([]string, 0, len(m.set))
	for p := range m.set {
		out = append(out, p)
	}
	return out
}

// Toggle flips the mark on a single entry. The parent-link entry (Name
// == "..") can never be marked.
func (m *Marks) Toggle(entry fsutil.DirectoryEntry) {
	if entry.Name == ".." {
		return
	}
	if _, ok := m.set[entry.FullPath]; ok {
		delete(m.set, entry.FullPath)
		return
	}
	m.set[entry.FullPath] = struct{}{}
}

// SelectAllFiles marks every non-directory entry in the listing except the
// parent link, per the files-only selection rule: directories are never
// implicitly swept into a bulk operation by "select all".
func (m *Marks) SelectAllFiles(entries []fsutil.DirectoryEntry) {
	for _, e := range entries {
		if e.Name == ".." || e.IsDir {
			continue
		}
		m.set[e.FullPath] = struct{}{}
	}
}

// UnselectAll clears every mark.
func (m *Marks) UnselectAll() {
	m.set = make(map[string]struct{})
}

// InvertSelection replaces the mark set with its complement within the
// listing's files: everything unmarked becomes marked and vice versa.
// Directories and the parent link are never included either way.
func (m *Marks) InvertSelection(entries []fsutil.DirectoryEntry) {
	next := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == ".." || e.IsDir {
			continue
		}
		if _, ok := m.set[e.FullPath]; !ok {
			next[e.FullPath] = struct{}{}
		}
	}
	m.set = next
}

// GroupSelect marks every non-directory entry whose name matches pattern, a
// glob rooted at the filename (no path-separator crossing — a pattern like
// "*.go" matches "main.go" but never descends into subdirectories). A
// pattern of "*" therefore selects every file but no directory, per the
// files-only selection rule.
func (m *Marks) GroupSelect(entries []fsutil.DirectoryEntry, pattern string, caseSensitive bool) error {
	return m.groupApply(entries, pattern, caseSensitive, true)
}

// GroupDeselect clears the mark on every non-directory entry whose name
// matches pattern.
func (m *Marks) GroupDeselect(entries []fsutil.DirectoryEntry, pattern string, caseSensitive bool) error {
	return m.groupApply(entries, pattern, caseSensitive, false)
}

func (m *Marks) groupApply(entries []fsutil.DirectoryEntry, pattern string, caseSensitive bool, mark bool) error {
	needle := pattern
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}
	// Validate the pattern once up front so a malformed glob reports an
	// error instead of silently matching nothing.
	if _, err := doublestar.Match(needle, ""); err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name == ".." || e.IsDir {
			continue
		}
		candidate := e.Name
		if !caseSensitive {
			candidate = strings.ToLower(candidate)
		}
		ok, err := doublestar.Match(needle, candidate)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if mark {
			m.set[e.FullPath] = struct{}{}
		} else {
			delete(m.set, e.FullPath)
		}
	}
	return nil
}

// Reconcile drops marks for paths no longer present in entries, called
// when the current directory's listing is re-read so marks on entries
// that have since disappeared never leak into later operations.
func (m *Marks) Reconcile(entries []fsutil.DirectoryEntry) {
	live := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		live[e.FullPath] = struct{}{}
	}
	for p := range m.set {
		if _, ok := live[p]; !ok {
			delete(m.set, p)
		}
	}
}
