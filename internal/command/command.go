// Package command reifies filesystem operations as undoable records,
// grounded on original_source/patterns/command_pattern.py's Command/
// CommandHistory pair: each mutating action carries its own do/undo
// closures and a bounded stack replays them.
package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// Record is one reified, undoable operation. do/undo/canUndo are set by
// the New* constructors below; a Record is only ever built through one of
// them, never assembled by hand. canUndo is a closure rather than a fixed
// bool because some records (delete) only know whether they can be undone
// after Do has run.
type Record struct {
	ID          uuid.UUID
	Description string
	do          func() error
	undo        func() error
	canUndo     func() bool
}

// Do executes the operation.
func (r Record) Do() error { return r.do() }

// Undo reverses a previously executed operation. Calling Undo on a Record
// whose CanUndo is false is a programmer error; callers must check first.
func (r Record) Undo() error { return r.undo() }

// CanUndo reports whether this record currently supports being undone.
func (r Record) CanUndo() bool { return r.canUndo() }

func alwaysUndoable() bool { return true }

func firstErr(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// NewMkdir builds a record for creating a directory.
func NewMkdir(path string, createParents bool) Record {
	return Record{
		ID:          uuid.New(),
		Description: fmt.Sprintf("mkdir %s", path),
		canUndo:     alwaysUndoable,
		do: func() error {
			return fsutil.Mkdir(path, createParents)
		},
		undo: func() error {
			return firstErr(fsutil.DeleteTree(path, fsutil.DeleteOptions{Recurse: false}, nil, nil))
		},
	}
}

// NewRename builds a record for renaming src to newName within its parent.
func NewRename(src, newName string) Record {
	dst := filepath.Join(filepath.Dir(src), newName)
	oldName := filepath.Base(src)
	return Record{
		ID:          uuid.New(),
		Description: fmt.Sprintf("rename %s to %s", oldName, newName),
		canUndo:     alwaysUndoable,
		do: func() error {
			return fsutil.Rename(src, newName)
		},
		undo: func() error {
			return fsutil.Rename(dst, oldName)
		},
	}
}

// CopyEntry tracks one destination path a copy touches, and whether
// something already lived there before the copy ran.
type CopyEntry struct {
	DstPath    string
	Preexisted bool
}

// PlanCopy walks src and reports, for every path CopyTree would create
// under dst, whether dst already had something at that path. Callers must
// run this before the copy itself so pre-existence reflects state before
// the copy, not after — an async transfer pipeline that performs the copy
// itself (outside NewCopy's own Do) must call PlanCopy first and hand the
// result to NewCopyFromPlan. Entries come back in top-down (parent before
// child) order; undoCopyEntries walks them in reverse so a directory is
// only removed once its children already are.
func PlanCopy(src, dst string) ([]CopyEntry, error) {
	var entries []CopyEntry
	err := filepath.Walk(src, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dstPath := dst
		if rel != "." {
			dstPath = filepath.Join(dst, rel)
		}
		_, statErr := os.Lstat(dstPath)
		entries = append(entries, CopyEntry{DstPath: dstPath, Preexisted: statErr == nil})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// undoCopyEntries deletes only the entries that did not preexist, deepest
// first, so a newly created directory empties out before it is itself
// removed. Anything a conflict policy skipped or overwrote is left alone.
func undoCopyEntries(entries []CopyEntry) error {
	var errs []error
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Preexisted {
			continue
		}
		for _, derr := range fsutil.DeleteTree(e.DstPath, fsutil.DeleteOptions{Recurse: false}, nil, nil) {
			if fsutil.KindOf(derr) == fsutil.KindNotFound {
				continue
			}
			errs = append(errs, derr)
		}
	}
	return firstErr(errs)
}

// NewCopy builds a record for copying src to dst, with Do performing the
// copy itself — for a caller that executes the record directly (e.g.
// History.Execute), rather than one that already ran the copy through some
// other path. Undo deletes only the destination paths this copy actually
// created; anything that already existed at dst before Do ran — skipped
// under ConflictSkip or clobbered under ConflictOverwrite — is left
// untouched, per a copy's undo contract of removing only the paths it
// introduced.
func NewCopy(src, dst string, opts fsutil.CopyOptions) Record {
	var entries []CopyEntry
	return Record{
		ID:          uuid.New(),
		Description: fmt.Sprintf("copy %s to %s", filepath.Base(src), dst),
		canUndo:     alwaysUndoable,
		do: func() error {
			planned, err := PlanCopy(src, dst)
			if err != nil {
				return err
			}
			entries = planned
			return firstErr(fsutil.CopyTree(src, dst, opts, nil, nil))
		},
		undo: func() error {
			return undoCopyEntries(entries)
		},
	}
}

// NewCopyFromPlan builds an undo record for a copy that has already run
// through some other path (an async transfer pipeline fanning a batch of
// copies out over several workers): Do is never invoked for such a record,
// so plan must be captured by the caller via PlanCopy before that copy
// executed. Redo re-runs the copy through Do like any other record.
func NewCopyFromPlan(src, dst string, opts fsutil.CopyOptions, plan []CopyEntry) Record {
	return Record{
		ID:          uuid.New(),
		Description: fmt.Sprintf("copy %s to %s", filepath.Base(src), dst),
		canUndo:     alwaysUndoable,
		do: func() error {
			return firstErr(fsutil.CopyTree(src, dst, opts, nil, nil))
		},
		undo: func() error {
			return undoCopyEntries(plan)
		},
	}
}

// NewMove builds a record for moving src to dst. Undo moves it back.
func NewMove(src, dst string, opts fsutil.CopyOptions) Record {
	return Record{
		ID:          uuid.New(),
		Description: fmt.Sprintf("move %s to %s", filepath.Base(src), dst),
		canUndo:     alwaysUndoable,
		do: func() error {
			return firstErr(fsutil.MoveTree(src, dst, opts, nil, nil))
		},
		undo: func() error {
			return firstErr(fsutil.MoveTree(dst, src, opts, nil, nil))
		},
	}
}

// NewDelete builds a record for deleting path. It always stages into trash
// first, regardless of the caller's own trash preference, because a delete
// record with no way to undo would violate the undo stack's contract. A
// plain unlink is only used as a last resort when staging itself fails —
// in that case the record executes successfully but CanUndo reports false.
func NewDelete(path string) Record {
	var staged string
	var stageErr error
	return Record{
		ID:          uuid.New(),
		Description: fmt.Sprintf("delete %s", filepath.Base(path)),
		canUndo:     func() bool { return staged != "" },
		do: func() error {
			s, err := fsutil.StageDelete(path)
			if err != nil {
				stageErr = err
				return firstErr(fsutil.DeleteTree(path, fsutil.DeleteOptions{Recurse: true}, nil, nil))
			}
			staged = s
			return nil
		},
		undo: func() error {
			if staged == "" {
				return fmt.Errorf("delete of %s cannot be undone: %w", path, stageErr)
			}
			return fsutil.RestoreFromTrash(staged, path)
		},
	}
}
