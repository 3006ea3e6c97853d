package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/twinpane/internal/dialog"
	"github.com/kk-code-lab/twinpane/internal/keybind"
	"github.com/kk-code-lab/twinpane/internal/panel"
)

// Run drives the event loop until the user quits: poll tcell for the next
// event, route it, redraw. Built on the same shape as a single-pane Run
// (a PollEvent goroutine draining into a select loop), minus the animation
// timer and SIGCONT handling a preview pager and job-control suspend would
// need, neither of which this shell has.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.render()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	for !app.shouldQuit {
		ev := <-eventChan
		app.handleEvent(ev)
		if !app.shouldQuit {
			app.render()
		}
	}
}

func (app *Application) render() {
	app.renderer.Render(app.panels, &app.dialogs, app.colors)
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		app.handleKey(e)
	case *tcell.EventResize:
		app.screen.Sync()
	case *tcell.EventInterrupt:
		app.handleInterrupt(e)
	}
}

func (app *Application) handleInterrupt(ev *tcell.EventInterrupt) {
	switch data := ev.Data().(type) {
	case *transferDoneEvent:
		app.handleTransferDone(data)
	case *findDoneEvent:
		app.handleFindDone(data)
	}
}

// handleKey routes one key event through the priority chain the active UI
// state calls for: an open dialog captures everything (raw runes feed its
// input buffer directly, since keybind only knows the small set of chords
// bound in ContextDialog); a quick-searching pane captures every
// unresolved rune into its search buffer; otherwise a bare rune with no
// binding starts a fresh quick-search instead of being dropped.
func (app *Application) handleKey(ev *tcell.EventKey) {
	active := app.panels.Active()
	top, dialogOpen := app.dialogs.Top()

	if dialogOpen {
		if action, ok := app.dispatcher.Resolve(keybind.ActiveContexts(true, false, false), ev); ok {
			app.dispatchAction(action)
			return
		}
		if ev.Key() == tcell.KeyRune && (top.Kind == dialog.KindInput || top.Kind == dialog.KindFind) {
			top.AppendRune(ev.Rune())
		}
		return
	}

	quickSearching := active.Mode == panel.QuickSearching
	if quickSearching {
		if action, ok := app.dispatcher.Resolve(keybind.ActiveContexts(false, false, true), ev); ok {
			app.dispatchAction(action)
			return
		}
		if ev.Key() == tcell.KeyRune {
			active.BeginQuickSearch(ev.Rune())
		}
		return
	}

	if action, ok := app.dispatcher.Resolve(keybind.ActiveContexts(false, false, false), ev); ok {
		app.dispatchAction(action)
		return
	}
	if ev.Key() == tcell.KeyRune {
		active.BeginQuickSearch(ev.Rune())
	}
}
