package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/kk-code-lab/twinpane/internal/dialog"
	"github.com/kk-code-lab/twinpane/internal/panel"
	"github.com/kk-code-lab/twinpane/internal/pipeline"
)

func TestHandleKeyDialogResolvesBoundChordOverRawInput(t *testing.T) {
	app := newTestApplication(t, nil)
	app.dialogs.Push(dialog.Dialog{Kind: dialog.KindInput, Buffer: "x"})

	app.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	require.Equal(t, 0, app.dialogs.Len(), "Escape should cancel the dialog rather than being typed")
}

func TestHandleKeyDialogAppendsUnboundRuneToBuffer(t *testing.T) {
	app := newTestApplication(t, nil)
	app.dialogs.Push(dialog.Dialog{Kind: dialog.KindInput})

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))

	top, ok := app.dialogs.Top()
	require.True(t, ok)
	require.Equal(t, "a", top.Buffer)
}

func TestHandleKeyDialogIgnoresRuneOnNonInputKind(t *testing.T) {
	app := newTestApplication(t, nil)
	app.dialogs.Push(dialog.Dialog{Kind: dialog.KindProgress})

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))

	top, ok := app.dialogs.Top()
	require.True(t, ok)
	require.Empty(t, top.Buffer)
}

func TestHandleKeyQuickSearchAppendsUnresolvedRune(t *testing.T) {
	app := newTestApplication(t, nil)
	app.panels.Active().Mode = panel.QuickSearching

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))

	require.Equal(t, "z", app.panels.Active().QuickSearch.Buffer())
}

func TestHandleKeyQuickSearchEscapeExitsViaBoundAction(t *testing.T) {
	app := newTestApplication(t, nil)
	app.panels.Active().Mode = panel.QuickSearching
	app.panels.Active().QuickSearch.Append('x')

	app.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	require.Equal(t, panel.Browsing, app.panels.Active().Mode)
}

func TestHandleKeyBrowsingUnresolvedRuneStartsQuickSearch(t *testing.T) {
	app := newTestApplication(t, nil)

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))

	require.Equal(t, panel.QuickSearching, app.panels.Active().Mode)
	require.Equal(t, "z", app.panels.Active().QuickSearch.Buffer())
}

func TestHandleKeyBrowsingBoundRuneDoesNotStartQuickSearch(t *testing.T) {
	app := newTestApplication(t, nil)

	app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	require.True(t, app.shouldQuit)
	require.NotEqual(t, panel.QuickSearching, app.panels.Active().Mode)
}

func TestHandleInterruptDispatchesTransferDoneEvent(t *testing.T) {
	app := newTestApplication(t, nil)
	app.dialogs.Push(dialog.Dialog{Kind: dialog.KindProgress})

	ev := newTransferDoneEvent(pipeline.KindCopy, nil, nil, pipeline.Summary{Total: 1})
	app.handleInterrupt(tcell.NewEventInterrupt(ev))

	require.Equal(t, 0, app.dialogs.Len(), "transfer completion should pop the progress dialog")
}
