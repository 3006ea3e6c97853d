package command

// History is a bounded undo/redo stack, grounded on
// original_source/patterns/command_pattern.py's CommandHistory: execute
// pushes and drops any redo tail, undo/redo replay do/undo through the
// stack pointer.
type History struct {
	maxSize int
	records []Record
	cursor  int // index of the most recently executed record; -1 if none
}

// NewHistory returns an empty history bounded to maxSize records.
func NewHistory(maxSize int) *History {
	return &History{maxSize: maxSize, cursor: -1}
}

// Execute runs record and, on success, pushes it onto the stack, discarding
// any redo tail from a previous undo.
func (h *History) Execute(record Record) error {
	if err := record.Do(); err != nil {
		return err
	}
	h.RecordCompleted(record)
	return nil
}

// RecordCompleted pushes record onto the stack as already executed, for a
// caller that performed the operation itself (an async pipeline fanning a
// batch of copies/moves out over several workers) and only needs this
// history for later undo/redo bookkeeping.
func (h *History) RecordCompleted(record Record) {
	h.records = h.records[:h.cursor+1]
	h.records = append(h.records, record)
	h.cursor++

	if h.maxSize > 0 && len(h.records) > h.maxSize {
		overflow := len(h.records) - h.maxSize
		h.records = h.records[overflow:]
		h.cursor -= overflow
	}
}

// Undo reverses the most recently executed record, if any and if it
// supports undo. On success the cursor moves back one position.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return errNothingToUndo
	}
	record := h.records[h.cursor]
	if err := record.Undo(); err != nil {
		return err
	}
	h.cursor--
	return nil
}

// Redo re-executes the record just undone, if any.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return errNothingToRedo
	}
	h.cursor++
	record := h.records[h.cursor]
	if err := record.Do(); err != nil {
		h.cursor--
		return err
	}
	return nil
}

// CanUndo reports whether Undo would have anything to act on.
func (h *History) CanUndo() bool {
	return h.cursor >= 0 && h.records[h.cursor].CanUndo()
}

// CanRedo reports whether Redo would have anything to act on.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.records)-1
}

// Descriptions returns the description of every record currently on the
// stack, oldest first, for a history/log dialog to display.
func (h *History) Descriptions() []string {
	out := make([]string, len(h.records))
	for i, r := range h.records {
		out[i] = r.Description
	}
	return out
}

// Clear empties the history.
func (h *History) Clear() {
	h.records = nil
	h.cursor = -1
}
