// Package dialog implements the modal stack: confirmation prompts, text
// input, progress display, the find prompt, the config/theme editor, and
// the function-key menu. A dialog never performs I/O itself — it carries
// an effect (OnConfirm/OnCancel) the application shell invokes, keeping
// this package free of any dependency on internal/fs or internal/pipeline.
//
// Generalizes the boolean modal flags (AppState.HelpVisible,
// FilterActive, GlobalSearchActive in internal/state/state.go) from "one
// flag per modal" into a single stacked Kind, so more than one modal
// surface (e.g. a confirm prompt over a progress dialog) can be live at
// once.
package dialog

// Kind identifies what a Dialog presents.
type Kind int

const (
	KindConfirm Kind = iota
	KindInput
	KindProgress
	KindFind
	KindConfigEditor
	KindMenu
	KindExternalViewer // opens a path in a suspended external program
)

// Dialog is one modal surface.
type Dialog struct {
	Kind    Kind
	Title   string
	Message string

	// Input buffer, for KindInput and KindFind.
	Buffer string

	// Path carries the target for KindExternalViewer (view/edit, which is
	// explicitly out of this repo's scope beyond shelling out to $EDITOR/
	// $PAGER). KindInput dialogs carry any prefill in Buffer, not here.
	Path string

	// ProgressFraction is in [0,1] for KindProgress; -1 means indeterminate.
	ProgressFraction float64

	// OnConfirm/OnCancel are effects the shell runs when the user accepts
	// or dismisses this dialog; either may be nil.
	OnConfirm func(input string)
	OnCancel  func()
}

// AppendRune appends to the input buffer (KindInput/KindFind only; a no-op
// otherwise, since other kinds have nothing to type into).
func (d *Dialog) AppendRune(r rune) {
	if d.Kind != KindInput && d.Kind != KindFind {
		return
	}
	d.Buffer += string(r)
}

// Backspace removes the last rune from the input buffer.
func (d *Dialog) Backspace() {
	if d.Buffer == "" {
		return
	}
	runes := []rune(d.Buffer)
	d.Buffer = string(runes[:len(runes)-1])
}
