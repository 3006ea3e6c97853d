// Command twinpane is a dual-pane, keyboard-driven terminal file manager.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/twinpane/internal/app"
	"github.com/kk-code-lab/twinpane/internal/shellsetup"
)

func printHelp() {
	fmt.Print(`twinpane - dual-pane terminal file manager

USAGE:
    twinpane [OPTIONS]

OPTIONS:
    -h, --help            Show this help message and exit
    -s, --setup [SHELL]   Output shell integration snippet (optionally force SHELL)
`)
}

var parentShellDetector = shellsetup.DetectParentShellName

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-s" || arg == "--setup":
			shellOverride := ""
			if len(os.Args) > 2 {
				shellOverride = os.Args[2]
			}
			shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			os.Exit(0)
		case strings.HasPrefix(arg, "--setup="):
			shellOverride := strings.TrimPrefix(arg, "--setup=")
			shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			os.Exit(0)
		}
	}

	app, err := apppkg.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	// Write the active pane's directory to a PID-scoped temp file so the
	// shell-integration wrapper (twinpane --setup) can cd into it on exit.
	if path := app.GetCurrentPath(); path != "" {
		tempDir := os.TempDir()
		resultFile := filepath.Join(tempDir, fmt.Sprintf("twinpane_result_%d.txt", os.Getpid()))
		if err := os.WriteFile(resultFile, []byte(path), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write result file: %v\n", err)
		}
	}
}
