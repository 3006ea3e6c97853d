package keybind

import "github.com/gdamore/tcell/v2"

// Named actions the default table resolves to. Dispatch wiring (in
// internal/app) matches on these strings; keybind itself stays agnostic
// about what an action does.
const (
	ActionNavigateUp     = "navigate.up"
	ActionNavigateDown   = "navigate.down"
	ActionNavigatePageUp = "navigate.page_up"
	ActionNavigatePageDn = "navigate.page_down"
	ActionNavigateHome   = "navigate.home"
	ActionNavigateEnd    = "navigate.end"
	ActionEnter          = "navigate.enter"
	ActionGoUp           = "navigate.go_up"
	ActionSwapPanel      = "panel.swap"

	ActionToggleMark      = "selection.toggle"
	ActionSelectAll       = "selection.select_all"
	ActionUnselectAll     = "selection.unselect_all"
	ActionInvertSelection = "selection.invert"
	ActionGroupSelect     = "selection.group_select"
	ActionGroupDeselect   = "selection.group_deselect"

	ActionCopy   = "operation.copy"
	ActionMove   = "operation.move"
	ActionMkdir  = "operation.mkdir"
	ActionDelete = "operation.delete"
	ActionRename = "operation.rename"
	ActionUndo   = "operation.undo"
	ActionRedo   = "operation.redo"

	ActionFind         = "search.find"
	ActionToggleHidden = "view.toggle_hidden"
	ActionCycleSort    = "view.cycle_sort"
	ActionCycleView    = "view.cycle_view"
	ActionOpenMenu     = "menu.open"
	ActionHelp         = "help.toggle"
	ActionQuit         = "app.quit"

	ActionQuickSearchBackspace = "quicksearch.backspace"
	ActionQuickSearchExit      = "quicksearch.exit"

	ActionDialogConfirm   = "dialog.confirm"
	ActionDialogCancel    = "dialog.cancel"
	ActionDialogBackspace = "dialog.backspace"
)

// DefaultTable returns the out-of-the-box bindings, styled after Norton
// Commander's function-key row (F5 copy, F6 move, F7 mkdir, F8 delete,
// F10 quit) with the vi-ish navigation the single-pane browser
// already used (h/j/k/l alongside the arrow keys).
func DefaultTable() Table {
	return Table{
		ContextGlobal: {
			{Chord{Key: tcell.KeyUp}, ActionNavigateUp},
			{Chord{Key: tcell.KeyDown}, ActionNavigateDown},
			{Chord{Key: tcell.KeyRune, Rune: 'k'}, ActionNavigateUp},
			{Chord{Key: tcell.KeyRune, Rune: 'j'}, ActionNavigateDown},
			{Chord{Key: tcell.KeyPgUp}, ActionNavigatePageUp},
			{Chord{Key: tcell.KeyPgDn}, ActionNavigatePageDn},
			{Chord{Key: tcell.KeyHome}, ActionNavigateHome},
			{Chord{Key: tcell.KeyEnd}, ActionNavigateEnd},
			{Chord{Key: tcell.KeyEnter}, ActionEnter},
			{Chord{Key: tcell.KeyLeft}, ActionGoUp},
			{Chord{Key: tcell.KeyRune, Rune: 'h'}, ActionGoUp},
			{Chord{Key: tcell.KeyRune, Rune: 'l'}, ActionEnter},
			{Chord{Key: tcell.KeyTab}, ActionSwapPanel},

			{Chord{Key: tcell.KeyInsert}, ActionToggleMark},
			{Chord{Key: tcell.KeyRune, Rune: ' '}, ActionToggleMark},
			{Chord{Key: tcell.KeyRune, Rune: '+'}, ActionGroupSelect},
			{Chord{Key: tcell.KeyRune, Rune: '-'}, ActionGroupDeselect},
			{Chord{Key: tcell.KeyRune, Rune: '*'}, ActionInvertSelection},

			{Chord{Key: tcell.KeyF5}, ActionCopy},
			{Chord{Key: tcell.KeyF6}, ActionMove},
			{Chord{Key: tcell.KeyF7}, ActionMkdir},
			{Chord{Key: tcell.KeyF8}, ActionDelete},
			{Chord{Key: tcell.KeyF2}, ActionRename},
			{Chord{Key: tcell.KeyF10}, ActionQuit},
			{Chord{Key: tcell.KeyF9}, ActionOpenMenu},
			{Chord{Key: tcell.KeyCtrlZ}, ActionUndo},
			{Chord{Key: tcell.KeyCtrlY}, ActionRedo},
			{Chord{Key: tcell.KeyCtrlF}, ActionFind},
			{Chord{Key: tcell.KeyRune, Rune: '.'}, ActionToggleHidden},
			{Chord{Key: tcell.KeyRune, Rune: 's'}, ActionCycleSort},
			{Chord{Key: tcell.KeyRune, Rune: 'v'}, ActionCycleView},
			{Chord{Key: tcell.KeyRune, Rune: '?'}, ActionHelp},
			{Chord{Key: tcell.KeyRune, Rune: 'q'}, ActionQuit},
		},
		ContextQuickSearch: {
			{Chord{Key: tcell.KeyBackspace}, ActionQuickSearchBackspace},
			{Chord{Key: tcell.KeyBackspace2}, ActionQuickSearchBackspace},
			{Chord{Key: tcell.KeyEscape}, ActionQuickSearchExit},
			{Chord{Key: tcell.KeyEnter}, ActionQuickSearchExit},
		},
		ContextDialog: {
			{Chord{Key: tcell.KeyEnter}, ActionDialogConfirm},
			{Chord{Key: tcell.KeyEscape}, ActionDialogCancel},
			{Chord{Key: tcell.KeyBackspace}, ActionDialogBackspace},
			{Chord{Key: tcell.KeyBackspace2}, ActionDialogBackspace},
		},
	}
}
