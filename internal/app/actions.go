package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kk-code-lab/twinpane/internal/command"
	"github.com/kk-code-lab/twinpane/internal/dialog"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/find"
	"github.com/kk-code-lab/twinpane/internal/keybind"
	"github.com/kk-code-lab/twinpane/internal/panel"
	"github.com/kk-code-lab/twinpane/internal/pipeline"
	"github.com/kk-code-lab/twinpane/internal/sortview"
)

const pageSize = 10

// dispatchAction runs the named action against the current state and
// reports whether the screen needs a redraw.
func (app *Application) dispatchAction(action string) bool {
	active := app.panels.Active()

	switch action {
	case keybind.ActionNavigateUp:
		active.MoveCursor(-1)
	case keybind.ActionNavigateDown:
		active.MoveCursor(1)
	case keybind.ActionNavigatePageUp:
		active.MoveCursor(-pageSize)
	case keybind.ActionNavigatePageDn:
		active.MoveCursor(pageSize)
	case keybind.ActionNavigateHome:
		active.SetCursor(0)
	case keybind.ActionNavigateEnd:
		active.SetCursor(len(active.Entries) - 1)
	case keybind.ActionEnter:
		app.enterCurrent(active)
	case keybind.ActionGoUp:
		app.goUp(active)
	case keybind.ActionSwapPanel:
		app.panels.Swap()

	case keybind.ActionToggleMark:
		if entry, ok := active.CurrentEntry(); ok {
			active.Marks.Toggle(entry)
			active.MoveCursor(1)
		}
	case keybind.ActionSelectAll:
		active.Marks.SelectAllFiles(active.Entries)
	case keybind.ActionUnselectAll:
		active.Marks.UnselectAll()
	case keybind.ActionInvertSelection:
		active.Marks.InvertSelection(active.Entries)
	case keybind.ActionGroupSelect:
		app.openGroupPatternDialog(true)
	case keybind.ActionGroupDeselect:
		app.openGroupPatternDialog(false)

	case keybind.ActionCopy:
		app.beginBulkTransfer(pipeline.KindCopy)
	case keybind.ActionMove:
		app.beginBulkTransfer(pipeline.KindMove)
	case keybind.ActionMkdir:
		app.openMkdirDialog()
	case keybind.ActionDelete:
		app.beginDelete()
	case keybind.ActionRename:
		app.openRenameDialog()
	case keybind.ActionUndo:
		app.runUndo()
	case keybind.ActionRedo:
		app.runRedo()

	case keybind.ActionFind:
		app.openFindDialog()
	case keybind.ActionToggleHidden:
		active.ShowHidden = !active.ShowHidden
		app.reload(active)
	case keybind.ActionCycleSort:
		active.Sort = nextSortDescriptor(active.Sort)
		app.reload(active)
	case keybind.ActionCycleView:
		active.View = nextViewMode(active.View)
	case keybind.ActionOpenMenu, keybind.ActionHelp:
		app.openHelpDialog()
	case keybind.ActionQuit:
		app.currentPath = active.CurrentPath
		app.shouldQuit = true

	case keybind.ActionQuickSearchBackspace:
		active.QuickSearchBackspace()
	case keybind.ActionQuickSearchExit:
		active.EndQuickSearch()

	case keybind.ActionDialogConfirm:
		app.confirmTopDialog()
	case keybind.ActionDialogCancel:
		app.cancelTopDialog()
	case keybind.ActionDialogBackspace:
		if top, ok := app.dialogs.Top(); ok {
			top.Backspace()
		}

	default:
		return false
	}
	return true
}

func (app *Application) confirmTopDialog() {
	top, ok := app.dialogs.Pop()
	if !ok {
		return
	}
	if top.OnConfirm != nil {
		top.OnConfirm(top.Buffer)
	}
}

func (app *Application) cancelTopDialog() {
	top, ok := app.dialogs.Pop()
	if !ok {
		return
	}
	if top.OnCancel != nil {
		top.OnCancel()
	}
}

// reload re-lists pane's current directory, leaving cursor and marks
// reconciled against the fresh listing.
func (app *Application) reload(pane *panel.State) {
	if err := reloadPane(pane, app.cache); err != nil {
		app.reportError(err)
	}
}

func (app *Application) reportError(err error) {
	app.logger.Error("operation failed", zap.Error(err))
	app.dialogs.Push(dialog.Dialog{
		Kind:    dialog.KindConfirm,
		Title:   "Error",
		Message: err.Error(),
	})
}

func (app *Application) enterCurrent(pane *panel.State) {
	entry, ok := pane.CurrentEntry()
	if !ok {
		return
	}
	if entry.IsDir {
		app.navigateTo(pane, entry.FullPath)
		return
	}
	if err := app.openFileInEditor(filepath.Join(entry.FullPath)); err != nil {
		app.reportError(err)
	}
}

func (app *Application) goUp(pane *panel.State) {
	parent := pane.ParentPath()
	if parent == "" {
		return
	}
	app.navigateTo(pane, parent)
}

func (app *Application) navigateTo(pane *panel.State, path string) {
	entries, err := listPath(app.cache, path, pane.ShowHidden)
	if err != nil {
		app.reportError(err)
		return
	}
	pane.EnterDirectory(path, entries)
}

func nextSortDescriptor(d sortview.Descriptor) sortview.Descriptor {
	order := []sortview.Key{sortview.KeyName, sortview.KeyExt, sortview.KeySize, sortview.KeyModified, sortview.KeyType}
	for i, k := range order {
		if k == d.Key {
			d.Key = order[(i+1)%len(order)]
			return d
		}
	}
	d.Key = sortview.KeyName
	return d
}

func nextViewMode(v sortview.ViewMode) sortview.ViewMode {
	switch v {
	case sortview.ViewFull:
		return sortview.ViewBrief
	case sortview.ViewBrief:
		return sortview.ViewInfo
	default:
		return sortview.ViewFull
	}
}

// beginBulkTransfer copies or moves the active pane's selection into the
// inactive pane's directory, asynchronously through the pipeline so a large
// tree doesn't block the event loop; per-task history entries are recorded
// once the pipeline reports success for that task.
func (app *Application) beginBulkTransfer(kind pipeline.Kind) {
	active := app.panels.Active()
	targets := active.TargetPaths()
	if len(targets) == 0 {
		return
	}
	destDir := app.panels.Inactive().CurrentPath

	tasks := make([]pipeline.Task, 0, len(targets))
	copyPlans := make([][]command.CopyEntry, len(targets))
	for i, src := range targets {
		dst := filepath.Join(destDir, filepath.Base(src))
		tasks = append(tasks, pipeline.Task{Kind: kind, Src: src, Dst: dst})
		if kind == pipeline.KindCopy {
			plan, err := command.PlanCopy(src, dst)
			if err != nil {
				app.logger.Warn("copy plan failed, undo will be unavailable for this task", zap.String("src", src), zap.Error(err))
				continue
			}
			copyPlans[i] = plan
		}
	}

	app.dialogs.Push(dialog.Dialog{
		Kind:             dialog.KindProgress,
		Title:            transferTitle(kind),
		ProgressFraction: -1,
	})

	cancel := fsutil.NewCancelToken()
	app.logger.Info("transfer started", zap.Int("tasks", len(tasks)), zap.String("dest", destDir))
	go func() {
		summary := app.pipeline.Run(nil, tasks, nil, cancel)
		app.postEvent(newTransferDoneEvent(kind, tasks, copyPlans, summary))
	}()
}

func transferTitle(kind pipeline.Kind) string {
	if kind == pipeline.KindMove {
		return "Moving"
	}
	return "Copying"
}

// handleTransferDone runs on the event loop goroutine once a background
// transfer finishes: records one undo entry per successful task and
// refreshes both panes.
func (app *Application) handleTransferDone(ev *transferDoneEvent) {
	app.dialogs.Pop()
	app.logger.Info("transfer finished", zap.Int("total", ev.summary.Total), zap.Int("failed", ev.summary.Failed))

	opts := fsutil.DefaultCopyOptions()
	// Outcomes arrive in completion order, so map each back to its task's
	// position to find the matching copy plan.
	taskIndex := make(map[pipeline.Task]int, len(ev.tasks))
	for i, t := range ev.tasks {
		taskIndex[t] = i
	}
	for _, outcome := range ev.summary.Outcomes {
		if outcome.Err != nil {
			continue
		}
		i, ok := taskIndex[outcome.Task]
		if !ok {
			continue
		}
		task := ev.tasks[i]
		var rec command.Record
		if ev.kind == pipeline.KindMove {
			rec = command.NewMove(task.Src, task.Dst, opts)
		} else {
			if ev.copyPlans[i] == nil {
				continue
			}
			rec = command.NewCopyFromPlan(task.Src, task.Dst, opts, ev.copyPlans[i])
		}
		app.history.RecordCompleted(rec)
	}
	if ev.summary.Failed > 0 {
		app.reportError(fmt.Errorf("%d of %d transfers failed", ev.summary.Failed, ev.summary.Total))
	}
	app.panels.Active().Marks.UnselectAll()
	app.reload(app.panels.Left)
	app.reload(app.panels.Right)
}

// beginDelete stages every selected path to trash (or confirms first, per
// config), synchronously — trash-staging is a rename, not a chunked copy,
// so it never needs the async pipeline's bounded concurrency.
func (app *Application) beginDelete() {
	active := app.panels.Active()
	targets := active.TargetPaths()
	if len(targets) == 0 {
		return
	}

	run := func() {
		for _, target := range targets {
			if err := app.history.Execute(command.NewDelete(target)); err != nil {
				app.reportError(err)
			}
		}
		active.Marks.UnselectAll()
		app.reload(active)
	}

	if !app.cfg.Settings.ConfirmDelete {
		run()
		return
	}
	app.dialogs.Push(dialog.Dialog{
		Kind:    dialog.KindConfirm,
		Title:   "Delete",
		Message: fmt.Sprintf("Delete %d item(s)?", len(targets)),
		OnConfirm: func(string) {
			run()
		},
	})
}

func (app *Application) openMkdirDialog() {
	active := app.panels.Active()
	app.dialogs.Push(dialog.Dialog{
		Kind:  dialog.KindInput,
		Title: "New directory",
		OnConfirm: func(name string) {
			if name == "" {
				return
			}
			target := filepath.Join(active.CurrentPath, name)
			if err := app.history.Execute(command.NewMkdir(target, true)); err != nil {
				app.reportError(err)
				return
			}
			app.reload(active)
		},
	})
}

func (app *Application) openRenameDialog() {
	active := app.panels.Active()
	entry, ok := active.CurrentEntry()
	if !ok || entry.Name == ".." {
		return
	}
	app.dialogs.Push(dialog.Dialog{
		Kind:   dialog.KindInput,
		Title:  "Rename",
		Buffer: entry.Name,
		OnConfirm: func(newName string) {
			if newName == "" || newName == entry.Name {
				return
			}
			if err := app.history.Execute(command.NewRename(entry.FullPath, newName)); err != nil {
				app.reportError(err)
				return
			}
			app.reload(active)
		},
	})
}

func (app *Application) openGroupPatternDialog(selecting bool) {
	active := app.panels.Active()
	title := "Select files matching"
	if !selecting {
		title = "Deselect files matching"
	}
	app.dialogs.Push(dialog.Dialog{
		Kind:  dialog.KindInput,
		Title: title,
		OnConfirm: func(pattern string) {
			if pattern == "" {
				return
			}
			var err error
			if selecting {
				err = active.Marks.GroupSelect(active.Entries, pattern, false)
			} else {
				err = active.Marks.GroupDeselect(active.Entries, pattern, false)
			}
			if err != nil {
				app.reportError(err)
			}
		},
	})
}

func (app *Application) runUndo() {
	if err := app.history.Undo(); err != nil {
		app.reportError(err)
		return
	}
	app.reload(app.panels.Left)
	app.reload(app.panels.Right)
}

func (app *Application) runRedo() {
	if err := app.history.Redo(); err != nil {
		app.reportError(err)
		return
	}
	app.reload(app.panels.Left)
	app.reload(app.panels.Right)
}

func (app *Application) openFindDialog() {
	app.dialogs.Push(dialog.Dialog{
		Kind:  dialog.KindFind,
		Title: "Find",
		OnConfirm: func(pattern string) {
			app.beginFind(pattern)
		},
	})
}

func (app *Application) beginFind(pattern string) {
	if pattern == "" {
		return
	}
	active := app.panels.Active()
	req := find.Request{
		Root:       active.CurrentPath,
		Pattern:    pattern,
		Flags:      find.Flags{Subdirs: true},
		HideHidden: !active.ShowHidden,
	}
	cancel := fsutil.NewCancelToken()
	results, errs := find.Run(req, cancel)

	go func() {
		var collected []find.Result
		for results != nil || errs != nil {
			select {
			case r, ok := <-results:
				if !ok {
					results = nil
					continue
				}
				collected = append(collected, r)
			case _, ok := <-errs:
				if !ok {
					errs = nil
				}
			}
		}
		app.postEvent(newFindDoneEvent(collected))
	}()
}

func (app *Application) handleFindDone(ev *findDoneEvent) {
	if len(ev.results) == 0 {
		return
	}
	first := ev.results[0]
	active := app.panels.Active()
	dir := filepath.Dir(first.Entry.FullPath)
	if dir != active.CurrentPath {
		app.navigateTo(active, dir)
	}
	for i, e := range active.Entries {
		if e.FullPath == first.Entry.FullPath {
			active.SetCursor(i)
			break
		}
	}
}

func (app *Application) openHelpDialog() {
	app.dialogs.Push(dialog.Dialog{
		Kind:    dialog.KindMenu,
		Title:   "Keys",
		Message: helpText,
	})
}

const helpText = `F2 rename  F5 copy  F6 move  F7 mkdir  F8 delete  F9 help  F10 quit
Tab swap panel  Space/Ins mark  + select  - deselect  * invert
Ctrl+Z undo  Ctrl+Y redo  Ctrl+F find  . hidden  s sort  v view`

func (app *Application) openFileInEditor(filePath string) error {
	if !app.editorAvail || len(app.editorCmd) == 0 {
		return fmt.Errorf("no editor configured")
	}

	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	return runErr
}
