// Package find implements recursive find: given (root, pattern, flags),
// produce a lazy, cancelable, capped sequence of matching paths that the UI
// can display incrementally. Grounded on the breadth-first streaming walk
// pattern used by larger scored/indexed search engines, simplified down to
// a single glob-or-regex match with no scoring or index.
package find

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// Flags configures one find traversal.
type Flags struct {
	Subdirs bool // recurse into subdirectories; false = current directory only
	Regex   bool // pattern is a regular expression instead of a glob
	Case    bool // case-sensitive matching
}

// Result is one match, streamed incrementally to Results.
type Result struct {
	Path  string
	Entry fsutil.DirectoryEntry
}

// DefaultResultCap bounds memory for very large trees.
const DefaultResultCap = 1000

// Request describes one find invocation.
type Request struct {
	Root       string
	Pattern    string
	Flags      Flags
	ResultCap  int // <= 0 uses DefaultResultCap
	HideHidden bool
}

type matcher func(name string) bool

func buildMatcher(req Request) (matcher, error) {
	pattern := req.Pattern
	if req.Flags.Regex {
		reFlags := ""
		if !req.Flags.Case {
			reFlags = "(?i)"
		}
		re, err := regexp.Compile(reFlags + pattern)
		if err != nil {
			return nil, err
		}
		return func(name string) bool { return re.MatchString(name) }, nil
	}

	needle := pattern
	if !req.Flags.Case {
		needle = strings.ToLower(needle)
	}
	return func(name string) bool {
		candidate := name
		if !req.Flags.Case {
			candidate = strings.ToLower(candidate)
		}
		ok, err := doublestar.Match(needle, candidate)
		return err == nil && ok
	}, nil
}

// Run streams matches from req.Root onto the returned channel, closing it
// when the walk finishes, the cap is hit, or cancel is tripped. It runs the
// walk on its own goroutine so callers never block past the first receive.
func Run(req Request, cancel *fsutil.CancelToken) (<-chan Result, <-chan error) {
	results := make(chan Result)
	errs := make(chan error, 1)

	resultCap := req.ResultCap
	if resultCap <= 0 {
		resultCap = DefaultResultCap
	}

	match, err := buildMatcher(req)
	if err != nil {
		close(results)
		errs <- err
		close(errs)
		return results, errs
	}

	go func() {
		defer close(results)
		defer close(errs)

		count := 0
		queue := []string{req.Root}

		for len(queue) > 0 {
			if cancel.Canceled() {
				return
			}
			dir := queue[0]
			queue = queue[1:]

			children, readErr := os.ReadDir(dir)
			if readErr != nil {
				continue // a single unreadable directory does not abort the walk
			}

			for _, child := range children {
				if cancel.Canceled() {
					return
				}
				full := filepath.Join(dir, child.Name())
				if fsutil.ShouldHideFromListing(full, child.Name()) {
					continue
				}
				if req.HideHidden && fsutil.IsHidden(full, child.Name()) {
					continue
				}

				if child.IsDir() && req.Flags.Subdirs {
					queue = append(queue, full)
				}

				if match(child.Name()) {
					entry, statErr := fsutil.Stat(full)
					if statErr != nil {
						continue
					}
					results <- Result{Path: full, Entry: entry}
					count++
					if count >= resultCap {
						return
					}
				}
			}
		}
	}()

	return results, errs
}
