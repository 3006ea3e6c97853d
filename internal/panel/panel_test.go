package panel

import (
	"testing"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/stretchr/testify/require"
)

func entries(names ...string) []fsutil.DirectoryEntry {
	out := make([]fsutil.DirectoryEntry, len(names))
	for i, n := range names {
		out[i] = fsutil.DirectoryEntry{Name: n, FullPath: "/d/" + n}
	}
	return out
}

func TestNewHasSingleHistoryEntry(t *testing.T) {
	s := New("/home")
	require.Equal(t, "/home", s.CurrentPath)
	require.Equal(t, []string{"/home"}, s.History)
}

func TestEnterDirectoryPushesHistoryAndResetsCursor(t *testing.T) {
	s := New("/home")
	s.SetCursor(3)
	s.EnterDirectory("/home/sub", entries("a", "b"))
	require.Equal(t, "/home/sub", s.CurrentPath)
	require.Equal(t, 0, s.Cursor)
	require.Equal(t, []string{"/home", "/home/sub"}, s.History)
}

func TestNavigateBackAndForward(t *testing.T) {
	s := New("/home")
	s.EnterDirectory("/home/sub", entries("a"))
	path, ok := s.NavigateBack(entries("x", "y"))
	require.True(t, ok)
	require.Equal(t, "/home", path)

	_, ok = s.NavigateBack(nil)
	require.False(t, ok)

	path, ok = s.NavigateForward(entries("a"))
	require.True(t, ok)
	require.Equal(t, "/home/sub", path)
}

func TestEnterDirectoryTruncatesForwardHistory(t *testing.T) {
	s := New("/a")
	s.EnterDirectory("/b", nil)
	s.EnterDirectory("/c", nil)
	s.NavigateBack(nil)
	s.NavigateBack(nil)
	s.EnterDirectory("/z", nil)
	require.Equal(t, []string{"/a", "/z"}, s.History)
}

func TestCursorClampsToValidRange(t *testing.T) {
	s := New("/home")
	s.Reload(entries("a", "b", "c"))
	s.SetCursor(-5)
	require.Equal(t, 0, s.Cursor)
	s.SetCursor(100)
	require.Equal(t, 2, s.Cursor)
}

func TestCursorOnEmptyListingStaysZero(t *testing.T) {
	s := New("/home")
	s.Reload(nil)
	s.SetCursor(5)
	require.Equal(t, 0, s.Cursor)
}

func TestReloadReconcilesMarksNotClearsThem(t *testing.T) {
	s := New("/home")
	s.Reload(entries("a", "b"))
	a, _ := s.CurrentEntry()
	s.Marks.Toggle(a)
	s.Reload(entries("a", "c"))
	require.True(t, s.Marks.IsMarked("/d/a"))
	require.Equal(t, 1, s.Marks.Count())
}

func TestTargetPathsPrefersMarksOverCursor(t *testing.T) {
	s := New("/home")
	s.Reload(entries("a", "b"))
	bEntry := s.Entries[1]
	s.Marks.Toggle(bEntry)
	require.Equal(t, []string{"/d/b"}, s.TargetPaths())
}

func TestTargetPathsFallsBackToCursor(t *testing.T) {
	s := New("/home")
	s.Reload(entries("a", "b"))
	require.Equal(t, []string{s.Entries[0].FullPath}, s.TargetPaths())
}

func TestQuickSearchModeTransitions(t *testing.T) {
	s := New("/home")
	s.Reload(entries("alpha.go", "beta.go"))
	require.Equal(t, Browsing, s.Mode)
	s.BeginQuickSearch('b')
	require.Equal(t, QuickSearching, s.Mode)
	require.Equal(t, 1, s.Cursor) // beta.go
	s.QuickSearchBackspace()
	require.Equal(t, Browsing, s.Mode)
}

func TestQuickSearchNoMatchLeavesCursorInPlace(t *testing.T) {
	s := New("/home")
	s.Reload(entries("alpha.go", "beta.go"))
	s.SetCursor(1)
	s.BeginQuickSearch('z')
	require.Equal(t, 1, s.Cursor)
}
