//go:build windows

package fs

import "os"

// populateOwnerInfo is a no-op on Windows: ACL-based ownership doesn't map
// cleanly onto owner/group/perm-bits, so callers leave the fields empty
// rather than fabricating POSIX-shaped values.
func populateOwnerInfo(_ *DirectoryEntry, _ os.FileInfo) {}
