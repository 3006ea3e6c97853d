package app

import (
	"path/filepath"
	"time"

	"github.com/kk-code-lab/twinpane/internal/cache"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/panel"
)

// parentRow is the synthetic ".." row every listing but the filesystem
// root is prepended with, so panel.State never special-cases "am I at the
// root" itself. Adapted from LoadDirectory
// (internal/state/load.go), which builds the same row inline as part of
// its single listing function.
func parentRow(path string) (fsutil.DirectoryEntry, bool) {
	parent := filepath.Dir(path)
	if parent == path {
		return fsutil.DirectoryEntry{}, false
	}
	return fsutil.DirectoryEntry{Name: "..", FullPath: parent, IsDir: true}, true
}

// listPath lists path, consulting c first and filling it on a miss, then
// prepends the ".." row. A nil cache always lists directly; entries from
// the cache are copied before the ".." row is prepended so the cached
// slice itself is never mutated.
func listPath(c *cache.Cache, path string, showHidden bool) ([]fsutil.DirectoryEntry, error) {
	key := cache.Key{Path: path, ShowHidden: showHidden}
	now := time.Now()

	var entries []fsutil.DirectoryEntry
	if c != nil {
		if listing, ok := c.Get(key, now); ok {
			entries = append(entries, listing.Entries...)
		}
	}

	if entries == nil {
		fresh, err := fsutil.List(path, showHidden)
		if err != nil {
			return nil, err
		}
		if c != nil {
			c.Put(key, cache.Listing{Path: path, Entries: fresh, Produced: now}, now)
		}
		entries = fresh
	}

	if parent, ok := parentRow(path); ok {
		entries = append([]fsutil.DirectoryEntry{parent}, entries...)
	}
	return entries, nil
}

// reloadPane re-lists p's current directory and feeds the result back into
// it via Reload, preserving history, cursor-clamped position, and marks.
func reloadPane(p *panel.State, c *cache.Cache) error {
	entries, err := listPath(c, p.CurrentPath, p.ShowHidden)
	if err != nil {
		return err
	}
	p.Reload(entries)
	return nil
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
