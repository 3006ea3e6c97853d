package selection

import (
	"strings"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// QuickSearch is the type-to-filter buffer a panel enters on the first
// printable keystroke while browsing. It holds only the typed text; cursor
// movement itself stays the panel's responsibility (see Locate).
type QuickSearch struct {
	buffer strings.Builder
}

// Active reports whether any text has been typed.
func (q *QuickSearch) Active() bool {
	return q.buffer.Len() > 0
}

// Buffer returns the currently typed text.
func (q *QuickSearch) Buffer() string {
	return q.buffer.String()
}

// Append adds one printable rune to the buffer.
func (q *QuickSearch) Append(r rune) {
	q.buffer.WriteRune(r)
}

// Backspace removes the last rune, if any.
func (q *QuickSearch) Backspace() {
	s := q.buffer.String()
	if s == "" {
		return
	}
	runes := []rune(s)
	q.buffer.Reset()
	q.buffer.WriteString(string(runes[:len(runes)-1]))
}

// Reset clears the buffer, exiting quick-search.
func (q *QuickSearch) Reset() {
	q.buffer.Reset()
}

// Locate finds the best entry for the current buffer among entries,
// preferring any entry whose name contains buffer as a literal substring
// (case-insensitive) and, among those, the one where the match starts
// earliest so that e.g. typing "main" prefers "main.go" (match at 0) over
// "domain.txt" (match at 2); ties break toward the shorter name. Entries
// with no containing match are never returned: quick-search narrows, it
// does not approximate. found is false when the buffer matches nothing,
// in which case the caller leaves the cursor at its prior position.
func Locate(entries []fsutil.DirectoryEntry, buffer string) (index int, found bool) {
	if buffer == "" {
		return 0, false
	}
	needle := strings.ToLower(buffer)

	bestIndex := -1
	bestPos := -1
	bestLen := -1
	for i, e := range entries {
		if e.Name == ".." {
			continue
		}
		name := strings.ToLower(e.Name)
		pos := strings.Index(name, needle)
		if pos == -1 {
			continue
		}
		if bestIndex == -1 || pos < bestPos || (pos == bestPos && len(name) < bestLen) {
			bestIndex = i
			bestPos = pos
			bestLen = len(name)
		}
	}
	if bestIndex == -1 {
		return 0, false
	}
	return bestIndex, true
}
