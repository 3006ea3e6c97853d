package fs

import (
	"os"
	"path/filepath"
	"sort"
)

// List reads one directory, non-recursively, returning entries ordered by
// byte-wise name (callers apply sort/view strategies on top). ShowHidden
// controls whether dotfiles are included; entries Windows marks as
// protected system/reparse junk are always excluded.
func List(path string, showHidden bool) ([]DirectoryEntry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, NewError(classifyOSError(err), path, err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, NewError(classifyOSError(err), path, err)
	}
	sort.Strings(names)

	entries := make([]DirectoryEntry, 0, len(names))
	for _, name := range names {
		full := filepath.Join(path, name)
		if ShouldHideFromListing(full, name) {
			continue
		}
		entry, err := statEntry(full, name)
		if err != nil {
			// A single unreadable entry (permission race, broken symlink
			// target) does not fail the whole listing; skip it.
			continue
		}
		if !showHidden && entry.IsHidden() {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Stat resolves a single entry without listing its parent directory.
func Stat(path string) (DirectoryEntry, error) {
	name := filepath.Base(path)
	return statEntry(path, name)
}

func statEntry(fullPath, name string) (DirectoryEntry, error) {
	info, err := os.Lstat(fullPath)
	if err != nil {
		return DirectoryEntry{}, NewError(classifyOSError(err), fullPath, err)
	}

	entry := DirectoryEntry{
		Name:      name,
		FullPath:  fullPath,
		IsSymlink: info.Mode()&os.ModeSymlink != 0,
		Modified:  info.ModTime(),
		Mode:      info.Mode(),
	}

	target := info
	if entry.IsSymlink {
		// Do not follow symlinks for display purposes; still report whether
		// the target is a directory when resolvable.
		if resolved, err := os.Stat(fullPath); err == nil {
			target = resolved
		}
	}
	entry.IsDir = target.IsDir()
	if !entry.IsDir {
		entry.Size = target.Size()
	}

	populateOwnerInfo(&entry, info)
	return entry, nil
}
