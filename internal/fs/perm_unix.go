//go:build !windows

package fs

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"sync"
	"syscall"
)

var (
	uidCacheMu sync.Mutex
	uidCache   = map[uint32]string{}
	gidCache   = map[uint32]string{}
)

// populateOwnerInfo fills Owner/Group/Perm from the platform stat_t. POSIX
// always exposes these, so this never leaves the fields empty.
func populateOwnerInfo(e *DirectoryEntry, info os.FileInfo) {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	e.Owner = lookupUser(sys.Uid)
	e.Group = lookupGroup(sys.Gid)
	e.Perm = info.Mode().Perm().String()
}

func lookupUser(uid uint32) string {
	uidCacheMu.Lock()
	if name, ok := uidCache[uid]; ok {
		uidCacheMu.Unlock()
		return name
	}
	uidCacheMu.Unlock()

	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil && u.Username != "" {
		name = u.Username
	}

	uidCacheMu.Lock()
	uidCache[uid] = name
	uidCacheMu.Unlock()
	return name
}

func lookupGroup(gid uint32) string {
	uidCacheMu.Lock()
	if name, ok := gidCache[gid]; ok {
		uidCacheMu.Unlock()
		return name
	}
	uidCacheMu.Unlock()

	name := fmt.Sprintf("%d", gid)
	if g, err := user.LookupGroupId(name); err == nil && g.Name != "" {
		name = g.Name
	}

	uidCacheMu.Lock()
	gidCache[gid] = name
	uidCacheMu.Unlock()
	return name
}
