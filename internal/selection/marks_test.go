package selection

import (
	"testing"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []fsutil.DirectoryEntry {
	return []fsutil.DirectoryEntry{
		{Name: "..", FullPath: ".."},
		{Name: "a.go", FullPath: "/d/a.go"},
		{Name: "b.go", FullPath: "/d/b.go"},
		{Name: "c.txt", FullPath: "/d/c.txt"},
	}
}

func TestToggleNeverMarksParentLink(t *testing.T) {
	m := New()
	m.Toggle(sampleEntries()[0])
	require.Equal(t, 0, m.Count())
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	m := New()
	entries := sampleEntries()
	m.Toggle(entries[1])
	require.True(t, m.IsMarked(entries[1].FullPath))
	m.Toggle(entries[1])
	require.False(t, m.IsMarked(entries[1].FullPath))
}

func TestSelectAllFilesExcludesParentLink(t *testing.T) {
	m := New()
	entries := sampleEntries()
	m.SelectAllFiles(entries)
	require.Equal(t, 3, m.Count())
	require.False(t, m.IsMarked(".."))
}

func TestUnselectAllClears(t *testing.T) {
	m := New()
	entries := sampleEntries()
	m.SelectAllFiles(entries)
	m.UnselectAll()
	require.Equal(t, 0, m.Count())
}

func TestGroupSelectThenDeselectYieldsEmpty(t *testing.T) {
	m := New()
	entries := sampleEntries()
	require.NoError(t, m.GroupSelect(entries, "*.go", false))
	require.Equal(t, 2, m.Count())
	require.NoError(t, m.GroupDeselect(entries, "*.go", false))
	require.Equal(t, 0, m.Count())
}

func TestInvertSelectionComplement(t *testing.T) {
	m := New()
	entries := sampleEntries()
	m.Toggle(entries[1])
	m.InvertSelection(entries)
	require.False(t, m.IsMarked(entries[1].FullPath))
	require.True(t, m.IsMarked(entries[2].FullPath))
	require.True(t, m.IsMarked(entries[3].FullPath))
}

func TestInvertTwiceRestoresOriginal(t *testing.T) {
	m := New()
	entries := sampleEntries()
	m.Toggle(entries[1])
	m.InvertSelection(entries)
	m.InvertSelection(entries)
	require.True(t, m.IsMarked(entries[1].FullPath))
	require.Equal(t, 1, m.Count())
}

func entriesWithDirectory() []fsutil.DirectoryEntry {
	return []fsutil.DirectoryEntry{
		{Name: "..", FullPath: ".."},
		{Name: "sub", FullPath: "/d/sub", IsDir: true},
		{Name: "a.go", FullPath: "/d/a.go"},
		{Name: "b.txt", FullPath: "/d/b.txt"},
	}
}

func TestSelectAllFilesExcludesDirectories(t *testing.T) {
	m := New()
	entries := entriesWithDirectory()
	m.SelectAllFiles(entries)
	require.Equal(t, 2, m.Count())
	require.False(t, m.IsMarked("/d/sub"))
	require.True(t, m.IsMarked("/d/a.go"))
	require.True(t, m.IsMarked("/d/b.txt"))
}

func TestInvertSelectionExcludesDirectories(t *testing.T) {
	m := New()
	entries := entriesWithDirectory()
	m.InvertSelection(entries)
	require.False(t, m.IsMarked("/d/sub"), "invert must never pull in a directory")
	require.True(t, m.IsMarked("/d/a.go"))
	require.True(t, m.IsMarked("/d/b.txt"))
	require.Equal(t, 2, m.Count())
}

func TestGroupSelectStarExcludesDirectories(t *testing.T) {
	m := New()
	entries := entriesWithDirectory()
	require.NoError(t, m.GroupSelect(entries, "*", false))
	require.Equal(t, 2, m.Count())
	require.False(t, m.IsMarked("/d/sub"))
}

func TestReconcileDropsStaleMarks(t *testing.T) {
	m := New()
	entries := sampleEntries()
	m.SelectAllFiles(entries)
	m.Reconcile(entries[:2]) // only ".." and "a.go" remain
	require.Equal(t, 1, m.Count())
	require.True(t, m.IsMarked(entries[1].FullPath))
}
