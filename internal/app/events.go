package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/twinpane/internal/command"
	"github.com/kk-code-lab/twinpane/internal/find"
	"github.com/kk-code-lab/twinpane/internal/pipeline"
)

// transferDoneEvent carries a finished bulk copy/move back onto the event
// loop goroutine, where history recording and pane reloads are safe to run.
// copyPlans holds one PlanCopy result per task, captured before the
// pipeline ran that task, aligned by index with tasks; entries for
// non-copy tasks are nil.
type transferDoneEvent struct {
	kind      pipeline.Kind
	tasks     []pipeline.Task
	copyPlans [][]command.CopyEntry
	summary   pipeline.Summary
}

func newTransferDoneEvent(kind pipeline.Kind, tasks []pipeline.Task, copyPlans [][]command.CopyEntry, summary pipeline.Summary) *transferDoneEvent {
	return &transferDoneEvent{kind: kind, tasks: tasks, copyPlans: copyPlans, summary: summary}
}

// findDoneEvent carries the collected results of a background recursive
// find back onto the event loop goroutine.
type findDoneEvent struct {
	results []find.Result
}

func newFindDoneEvent(results []find.Result) *findDoneEvent {
	return &findDoneEvent{results: results}
}

// postEvent wakes the event loop with a background result, reusing the same
// suspend/resume wakeup mechanism (tcell.NewEventInterrupt) a job-control
// resume path once used — generalized from a string payload to whatever
// typed event the caller needs handled.
func (app *Application) postEvent(payload interface{}) {
	_ = app.screen.PostEvent(tcell.NewEventInterrupt(payload))
}
