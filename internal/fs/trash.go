package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TrashRoot returns the directory staged deletes are moved into. Resolved
// via Decision: delete-with-undo stages to one shared trash directory
// under the user cache dir (see DESIGN.md) rather than recording undo
// without backing data.
func TrashRoot() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	root := filepath.Join(cacheDir, "twinpane", "trash")
	if err := os.MkdirAll(root, 0o700); err != nil {
		return "", err
	}
	return root, nil
}

// StageDelete relocates path into the trash root and returns the staged
// location, so a caller that needs to offer undo can hang onto it. Best
// effort: callers fall back to a direct unlink on error.
func StageDelete(path string) (string, error) {
	root, err := TrashRoot()
	if err != nil {
		return "", err
	}
	staged := filepath.Join(root, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(path)))
	if err := os.Rename(path, staged); err != nil {
		return "", err
	}
	return staged, nil
}

func moveToTrash(path string) error {
	_, err := StageDelete(path)
	return err
}

// RestoreFromTrash moves a staged path back to its original location,
// implementing delete-undo.
func RestoreFromTrash(stagedPath, originalPath string) error {
	if err := os.MkdirAll(filepath.Dir(originalPath), 0o755); err != nil {
		return NewError(classifyOSError(err), originalPath, err)
	}
	if err := os.Rename(stagedPath, originalPath); err != nil {
		return NewError(classifyOSError(err), originalPath, err)
	}
	return nil
}
