package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestDialogContextShadowsGlobalForSameChord(t *testing.T) {
	table := Table{
		ContextGlobal: {{Chord{Key: tcell.KeyEnter}, ActionEnter}},
		ContextDialog: {{Chord{Key: tcell.KeyEnter}, ActionDialogConfirm}},
	}
	d := NewDispatcher(table)
	ev := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	action, ok := d.Resolve(ActiveContexts(true, false, false), ev)
	require.True(t, ok)
	require.Equal(t, ActionDialogConfirm, action)
}

func TestFallsBackToGlobalWhenNoHigherContextMatches(t *testing.T) {
	d := NewDispatcher(DefaultTable())
	ev := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	action, ok := d.Resolve(ActiveContexts(false, false, true), ev)
	require.True(t, ok)
	require.Equal(t, ActionQuit, action)
}

func TestQuickSearchContextTakesPriorityOverGlobalEscape(t *testing.T) {
	d := NewDispatcher(DefaultTable())
	ev := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	action, ok := d.Resolve(ActiveContexts(false, false, true), ev)
	require.True(t, ok)
	require.Equal(t, ActionQuickSearchExit, action)
}

func TestUnboundChordReportsNotFound(t *testing.T) {
	d := NewDispatcher(Table{})
	ev := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)

	_, ok := d.Resolve(ActiveContexts(false, false, false), ev)
	require.False(t, ok)
}

func TestActiveContextsOrdersDialogFirst(t *testing.T) {
	require.Equal(t, []Context{ContextDialog, ContextPanel, ContextGlobal}, ActiveContexts(true, false, false))
	require.Equal(t, []Context{ContextPanel, ContextGlobal}, ActiveContexts(false, false, false))
}
