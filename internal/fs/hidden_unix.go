//go:build !windows

package fs

// IsHidden reports the POSIX leading-dot convention. The `.` and `..`
// pseudo-entries are never produced by List, so this only ever fires on
// real dotfiles/dotdirs.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}
