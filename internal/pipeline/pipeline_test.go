package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kk-code-lab/twinpane/internal/cache"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRunCopiesAllTasks(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	dstDir := filepath.Join(root, "dst")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.MkdirAll(dstDir, 0o755))

	var tasks []Task
	for i := 0; i < 5; i++ {
		name := string(rune('a' + i))
		src := filepath.Join(srcDir, name)
		writeFile(t, src)
		tasks = append(tasks, Task{Kind: KindCopy, Src: src, Dst: filepath.Join(dstDir, name)})
	}

	p := New(2, fsutil.DefaultCopyOptions(), fsutil.DefaultDeleteOptions(), nil)
	summary := p.Run(context.Background(), tasks, nil, nil)

	require.Equal(t, 5, summary.Total)
	require.Equal(t, 5, summary.Succeeded)
	require.Equal(t, 0, summary.Failed)
	for _, task := range tasks {
		require.FileExists(t, task.Dst)
	}
}

func TestRunInvalidatesCacheBeforeReturning(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	dstDir := filepath.Join(root, "dst")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.MkdirAll(dstDir, 0o755))
	src := filepath.Join(srcDir, "f.txt")
	writeFile(t, src)
	dst := filepath.Join(dstDir, "f.txt")

	c := cache.New(10, time.Minute)
	now := time.Unix(0, 0)
	c.Put(cache.Key{Path: dstDir}, cache.Listing{Path: dstDir}, now)

	p := New(1, fsutil.DefaultCopyOptions(), fsutil.DefaultDeleteOptions(), c)
	summary := p.Run(context.Background(), []Task{{Kind: KindCopy, Src: src, Dst: dst}}, nil, nil)
	require.Equal(t, 1, summary.Succeeded)

	_, ok := c.Get(cache.Key{Path: dstDir}, now)
	require.False(t, ok)
}

func TestRunReportsFailureWithoutAbortingOthers(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	ok1 := filepath.Join(srcDir, "ok.txt")
	writeFile(t, ok1)
	missing := filepath.Join(srcDir, "missing.txt")

	tasks := []Task{
		{Kind: KindCopy, Src: ok1, Dst: filepath.Join(root, "ok-copy.txt")},
		{Kind: KindCopy, Src: missing, Dst: filepath.Join(root, "missing-copy.txt")},
	}

	p := New(4, fsutil.DefaultCopyOptions(), fsutil.DefaultDeleteOptions(), nil)
	summary := p.Run(context.Background(), tasks, nil, nil)

	require.Equal(t, 2, summary.Total)
	require.Equal(t, 1, summary.Succeeded)
	require.Equal(t, 1, summary.Failed)
}

func TestRunCancelStopsDispatchingNewTasks(t *testing.T) {
	root := t.TempDir()
	tok := fsutil.NewCancelToken()
	tok.Cancel()

	tasks := []Task{
		{Kind: KindCopy, Src: filepath.Join(root, "a"), Dst: filepath.Join(root, "b")},
	}
	p := New(1, fsutil.DefaultCopyOptions(), fsutil.DefaultDeleteOptions(), nil)
	summary := p.Run(context.Background(), tasks, nil, tok)

	require.Equal(t, 1, summary.Total)
	require.Equal(t, 0, summary.Succeeded)
	require.True(t, summary.Canceled)
}
