//go:build !windows

package shellsetup

import (
	"os"
	"path"
	"strconv"
	"strings"
)

// DetectParentShellName reads the parent process's command name off
// /proc/<ppid>/comm, falling back to $SHELL when /proc isn't mounted
// (macOS, BSD). Matches the windows build's name normalization so the
// snippet picked in setup.go is the same regardless of platform.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return fallbackShellName()
	}

	data, err := os.ReadFile("/proc/" + strconv.Itoa(ppid) + "/comm")
	if err != nil {
		return fallbackShellName()
	}

	name := strings.TrimSpace(string(data))
	if name == "" {
		return fallbackShellName()
	}
	return normalizeShellNameUnix(name)
}

func fallbackShellName() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return ""
	}
	return normalizeShellNameUnix(path.Base(shell))
}

func normalizeShellNameUnix(name string) string {
	name = strings.ToLower(strings.TrimSuffix(name, ".exe"))
	switch name {
	case "pwsh", "powershell":
		return "pwsh"
	case "bash":
		return "bash"
	case "zsh":
		return "zsh"
	case "fish":
		return "fish"
	case "tcsh", "csh":
		return name
	case "ksh":
		return "ksh"
	default:
		return name
	}
}
