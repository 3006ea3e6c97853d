// Package panel implements one pane's navigation state machine: current
// directory, history, cursor, marks, sort/view preferences, and the
// quick-search buffer. Two independent State values make up the dual-pane
// shell; Pair (in pair.go) coordinates which one is active.
//
// Generalizes AppState (internal/state/state.go) and its navigation
// helpers (internal/state/state_navigation.go) from one global state blob
// into a value each pane owns independently, with selection/sort/view
// pulled out into their own packages instead of living inline.
package panel

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/selection"
	"github.com/kk-code-lab/twinpane/internal/sortview"
)

// Mode is the pane's interaction mode. Exactly one applies at a time.
type Mode int

const (
	Browsing Mode = iota
	QuickSearching
	AwaitingDialog
)

// State is one pane's full navigational state.
type State struct {
	CurrentPath  string
	Entries      []fsutil.DirectoryEntry
	History      []string
	HistoryIndex int

	Cursor       int
	ScrollOffset int
	viewportRows int

	Marks       *selection.Marks
	Sort        sortview.Descriptor
	View        sortview.ViewMode
	QuickSearch selection.QuickSearch

	ShowHidden bool
	Active     bool
	Mode       Mode
}

// New returns a pane positioned at path with no entries loaded yet; the
// caller fills Entries via Reload once the initial listing is available.
func New(path string) *State {
	return &State{
		CurrentPath: path,
		History:     []string{path},
		Marks:       selection.New(),
		Sort:        sortview.Default(),
		View:        sortview.ViewFull,
		ShowHidden:  false,
	}
}

// SetViewportRows records how many rows are visible, used to clamp
// ScrollOffset so the cursor always stays on screen.
func (s *State) SetViewportRows(rows int) {
	s.viewportRows = rows
	s.clampScroll()
}

// EnterDirectory moves into path with a freshly loaded listing, pushing the
// previous path onto the back-history and truncating any forward history.
// Cursor, scroll, marks, and quick-search all reset — they belong to the
// old directory's listing, not the new one.
func (s *State) EnterDirectory(path string, entries []fsutil.DirectoryEntry) {
	if s.HistoryIndex < len(s.History)-1 {
		s.History = s.History[:s.HistoryIndex+1]
	}
	s.History = append(s.History, path)
	s.HistoryIndex = len(s.History) - 1

	s.CurrentPath = path
	s.setEntries(entries)
	s.Marks.UnselectAll()
	s.QuickSearch.Reset()
	s.Mode = Browsing
}

// NavigateBack moves to the previous history entry, if any, reloading with
// freshEntries (the caller must re-list; State never touches the filesystem
// itself). Marks and quick-search reset exactly as on EnterDirectory.
func (s *State) NavigateBack(freshEntries []fsutil.DirectoryEntry) (string, bool) {
	if s.HistoryIndex == 0 {
		return "", false
	}
	s.HistoryIndex--
	s.CurrentPath = s.History[s.HistoryIndex]
	s.setEntries(freshEntries)
	s.Marks.UnselectAll()
	s.QuickSearch.Reset()
	s.Mode = Browsing
	return s.CurrentPath, true
}

// NavigateForward is NavigateBack's mirror image.
func (s *State) NavigateForward(freshEntries []fsutil.DirectoryEntry) (string, bool) {
	if s.HistoryIndex >= len(s.History)-1 {
		return "", false
	}
	s.HistoryIndex++
	s.CurrentPath = s.History[s.HistoryIndex]
	s.setEntries(freshEntries)
	s.Marks.UnselectAll()
	s.QuickSearch.Reset()
	s.Mode = Browsing
	return s.CurrentPath, true
}

// ParentPath reports the directory EnterDirectory(parent, ...) would need
// to move up one level, or "" at the filesystem root.
func (s *State) ParentPath() string {
	parent := filepath.Dir(s.CurrentPath)
	if parent == s.CurrentPath {
		return ""
	}
	return parent
}

// Reload replaces Entries in place without touching history — used after a
// mutating operation or a toggled show-hidden flag invalidates the current
// listing. Marks are reconciled (stale paths dropped) rather than cleared,
// and the cursor stays on the previously focused path if it is still
// listed, otherwise it is clamped to its former index.
func (s *State) Reload(entries []fsutil.DirectoryEntry) {
	prevIndex, prevPath := s.Cursor, ""
	if prevIndex >= 0 && prevIndex < len(s.Entries) {
		prevPath = s.Entries[prevIndex].FullPath
	}
	s.setEntries(entries)
	s.Marks.Reconcile(entries)
	target := prevIndex
	for i, e := range s.Entries {
		if prevPath != "" && e.FullPath == prevPath {
			target = i
			break
		}
	}
	s.SetCursor(target)
}

func (s *State) setEntries(entries []fsutil.DirectoryEntry) {
	sortview.Sort(entries, s.Sort)
	s.Entries = entries
	s.Cursor = 0
	s.ScrollOffset = 0
}

// MoveCursor shifts the cursor by delta, clamped to a valid index, and
// keeps the viewport following it.
func (s *State) MoveCursor(delta int) {
	s.SetCursor(s.Cursor + delta)
}

// SetCursor sets the cursor to an absolute index, clamped to [0,len-1] (or
// 0 on an empty listing — invariant: Cursor is always a valid index or 0).
func (s *State) SetCursor(index int) {
	if len(s.Entries) == 0 {
		s.Cursor = 0
		s.ScrollOffset = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.Entries) {
		index = len(s.Entries) - 1
	}
	s.Cursor = index
	s.clampScroll()
}

func (s *State) clampScroll() {
	if s.viewportRows <= 0 {
		return
	}
	if s.Cursor < s.ScrollOffset {
		s.ScrollOffset = s.Cursor
	}
	if s.Cursor >= s.ScrollOffset+s.viewportRows {
		s.ScrollOffset = s.Cursor - s.viewportRows + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// CurrentEntry returns the entry under the cursor, or false on an empty
// listing.
func (s *State) CurrentEntry() (fsutil.DirectoryEntry, bool) {
	if len(s.Entries) == 0 || s.Cursor < 0 || s.Cursor >= len(s.Entries) {
		return fsutil.DirectoryEntry{}, false
	}
	return s.Entries[s.Cursor], true
}

// TargetPaths returns the marked paths if any exist, otherwise the single
// entry under the cursor — the usual "operate on the selection, or on the
// current file if nothing is selected" rule bulk operations follow.
func (s *State) TargetPaths() []string {
	if s.Marks.Count() > 0 {
		return s.Marks.Paths()
	}
	if entry, ok := s.CurrentEntry(); ok && entry.Name != ".." {
		return []string{entry.FullPath}
	}
	return nil
}

// BeginQuickSearch appends r to the quick-search buffer (starting it if
// empty) and repositions the cursor onto the best match. Mode switches to
// QuickSearching.
func (s *State) BeginQuickSearch(r rune) {
	s.Mode = QuickSearching
	s.QuickSearch.Append(r)
	s.applyQuickSearch()
}

// QuickSearchBackspace removes the last typed character; exits
// QuickSearching back to Browsing once the buffer empties.
func (s *State) QuickSearchBackspace() {
	s.QuickSearch.Backspace()
	if !s.QuickSearch.Active() {
		s.Mode = Browsing
		return
	}
	s.applyQuickSearch()
}

// EndQuickSearch clears the buffer and returns to Browsing, leaving the
// cursor wherever quick-search left it.
func (s *State) EndQuickSearch() {
	s.QuickSearch.Reset()
	s.Mode = Browsing
}

func (s *State) applyQuickSearch() {
	if idx, found := selection.Locate(s.Entries, s.QuickSearch.Buffer()); found {
		s.SetCursor(idx)
	}
	// No match: cursor stays at its prior valid position, per quick-search's
	// narrowing-only contract.
}
