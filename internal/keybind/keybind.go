// Package keybind resolves a tcell key event into a named action through a
// priority chain of contexts (dialog > menu > quick-search > active panel
// > global). Generalizes the single event-to-Action switch
// (internal/ui/input/handler.go) from one big mode-aware switch statement
// into a table the caller builds and a resolver that walks it — the shape
// needed once "mode" means "one of five independent contexts" instead of
// "one of two search flags".
package keybind

import "github.com/gdamore/tcell/v2"

// Context names one layer of the priority chain.
type Context int

const (
	ContextDialog Context = iota
	ContextMenu
	ContextQuickSearch
	ContextPanel
	ContextGlobal
)

// Chord is one key combination: either a named tcell key or a rune, plus
// modifiers. Exactly one of Key/Rune is meaningful, following tcell's own
// EventKey convention (Key() == KeyRune means Rune() holds the value).
type Chord struct {
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// ChordFromEvent extracts the Chord a binding table matches against.
func ChordFromEvent(ev *tcell.EventKey) Chord {
	if ev.Key() == tcell.KeyRune {
		return Chord{Key: tcell.KeyRune, Rune: ev.Rune(), Mods: ev.Modifiers()}
	}
	return Chord{Key: ev.Key(), Mods: ev.Modifiers()}
}

// Binding maps one chord to a named action within a context.
type Binding struct {
	Chord  Chord
	Action string
}

// Table holds the bindings for every context, keyed by context.
type Table map[Context][]Binding

// Dispatcher resolves key events to actions using a Table.
type Dispatcher struct {
	table Table
}

// NewDispatcher builds a Dispatcher over table.
func NewDispatcher(table Table) *Dispatcher {
	return &Dispatcher{table: table}
}

// Resolve walks contexts in the given priority order (highest priority
// first) looking for a binding matching ev, then falls back to
// ContextGlobal regardless of whether the caller included it. The first
// match wins: a dialog binding for a chord always shadows a global one for
// the same chord while a dialog is open.
func (d *Dispatcher) Resolve(contexts []Context, ev *tcell.EventKey) (action string, ok bool) {
	chord := ChordFromEvent(ev)
	for _, ctx := range contexts {
		if action, ok := d.lookup(ctx, chord); ok {
			return action, true
		}
	}
	return d.lookup(ContextGlobal, chord)
}

func (d *Dispatcher) lookup(ctx Context, chord Chord) (string, bool) {
	for _, b := range d.table[ctx] {
		if b.Chord == chord {
			return b.Action, true
		}
	}
	return "", false
}

// ActiveContexts returns the priority chain for a given combination of UI
// state flags: dialog open, menu open, and whether the active panel is
// quick-searching. At most one of dialogOpen/menuOpen/quickSearching ever
// applies in practice, but the chain degrades gracefully if more than one
// is somehow true.
func ActiveContexts(dialogOpen, menuOpen, quickSearching bool) []Context {
	var chain []Context
	if dialogOpen {
		chain = append(chain, ContextDialog)
	}
	if menuOpen {
		chain = append(chain, ContextMenu)
	}
	if quickSearching {
		chain = append(chain, ContextQuickSearch)
	}
	chain = append(chain, ContextPanel, ContextGlobal)
	return chain
}
