package command

import (
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/stretchr/testify/require"
)

func TestMkdirDoAndUndo(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "sub")
	rec := NewMkdir(target, false)

	require.NoError(t, rec.Do())
	require.DirExists(t, target)

	require.True(t, rec.CanUndo())
	require.NoError(t, rec.Undo())
	require.NoDirExists(t, target)
}

func TestRenameDoAndUndo(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "old.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	rec := NewRename(src, "new.txt")
	require.NoError(t, rec.Do())
	require.FileExists(t, filepath.Join(root, "new.txt"))

	require.NoError(t, rec.Undo())
	require.FileExists(t, src)
}

func TestCopyDoAndUndo(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	dst := filepath.Join(root, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	rec := NewCopy(src, dst, fsutil.DefaultCopyOptions())
	require.NoError(t, rec.Do())
	require.FileExists(t, dst)

	require.NoError(t, rec.Undo())
	require.NoFileExists(t, dst)
	require.FileExists(t, src)
}

func TestDeleteDoAndUndoRestoresFromTrash(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	root := t.TempDir()
	target := filepath.Join(root, "gone.txt")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0o644))

	rec := NewDelete(target)
	require.NoError(t, rec.Do())
	require.NoFileExists(t, target)
	require.True(t, rec.CanUndo())

	require.NoError(t, rec.Undo())
	require.FileExists(t, target)
}

func TestHistoryExecuteUndoRedo(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	root := t.TempDir()
	dirPath := filepath.Join(root, "sub")

	h := NewHistory(10)
	require.False(t, h.CanUndo())

	require.NoError(t, h.Execute(NewMkdir(dirPath, false)))
	require.DirExists(t, dirPath)
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())

	require.NoError(t, h.Undo())
	require.NoDirExists(t, dirPath)
	require.True(t, h.CanRedo())

	require.NoError(t, h.Redo())
	require.DirExists(t, dirPath)
}

func TestHistoryExecuteDropsRedoTail(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")

	h := NewHistory(10)
	require.NoError(t, h.Execute(NewMkdir(a, false)))
	require.NoError(t, h.Undo())
	require.NoError(t, h.Execute(NewMkdir(b, false)))

	require.False(t, h.CanRedo())
	require.Equal(t, []string{"mkdir " + b}, h.Descriptions())
}

func TestHistoryBoundedSize(t *testing.T) {
	root := t.TempDir()
	h := NewHistory(2)
	for i := 0; i < 3; i++ {
		p := filepath.Join(root, string(rune('a'+i)))
		require.NoError(t, h.Execute(NewMkdir(p, false)))
	}
	require.Len(t, h.Descriptions(), 2)
}

func TestUndoWithEmptyHistoryErrors(t *testing.T) {
	h := NewHistory(10)
	require.ErrorIs(t, h.Undo(), errNothingToUndo)
}

func TestRecordCompletedSkipsDoButAllowsUndo(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(target, 0o755))

	rec := NewMkdir(target, false)
	h := NewHistory(10)
	h.RecordCompleted(rec)

	require.True(t, h.CanUndo())
	require.NoError(t, h.Undo())
	require.NoDirExists(t, target)
}

func TestCopyUndoLeavesPreexistingSkippedDestinationIntact(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	dst := filepath.Join(root, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("original"), 0o644))

	plan, err := PlanCopy(src, dst)
	require.NoError(t, err)
	require.True(t, plan[0].Preexisted)

	opts := fsutil.DefaultCopyOptions()
	opts.Conflict = fsutil.ConflictSkip
	require.Empty(t, fsutil.CopyTree(src, dst, opts, nil, nil))

	rec := NewCopyFromPlan(src, dst, opts, plan)
	require.NoError(t, rec.Undo())

	require.FileExists(t, dst)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "original", string(data))
}

func TestCopyUndoDeletesOnlyNewlyCreatedEntries(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "srcdir")
	dstDir := filepath.Join(root, "dstdir")
	require.NoError(t, os.Mkdir(srcDir, 0o755))
	require.NoError(t, os.Mkdir(dstDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "existing.txt"), []byte("src"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "fresh.txt"), []byte("src"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "existing.txt"), []byte("dst-original"), 0o644))

	plan, err := PlanCopy(srcDir, dstDir)
	require.NoError(t, err)

	opts := fsutil.DefaultCopyOptions()
	opts.Conflict = fsutil.ConflictOverwrite
	require.Empty(t, fsutil.CopyTree(srcDir, dstDir, opts, nil, nil))

	rec := NewCopyFromPlan(srcDir, dstDir, opts, plan)
	require.NoError(t, rec.Undo())

	require.DirExists(t, dstDir, "dstDir preexisted, undo must not remove it")
	require.FileExists(t, filepath.Join(dstDir, "existing.txt"), "preexisting destination file must survive undo")
	require.NoFileExists(t, filepath.Join(dstDir, "fresh.txt"), "newly created destination file must be removed by undo")
}
