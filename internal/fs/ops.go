package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Mkdir creates a directory, optionally creating missing parents.
func Mkdir(path string, createParents bool) error {
	if err := validateName(filepath.Base(path)); err != nil {
		return err
	}
	var err error
	if createParents {
		err = os.MkdirAll(path, 0o755)
	} else {
		err = os.Mkdir(path, 0o755)
	}
	if err != nil {
		return NewError(classifyOSError(err), path, err)
	}
	return nil
}

// Rename renames src to newName within the same parent directory.
func Rename(src, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	dst := filepath.Join(filepath.Dir(src), newName)
	if _, err := os.Lstat(dst); err == nil {
		return NewError(KindAlreadyExists, dst, os.ErrExist)
	}
	if err := os.Rename(src, dst); err != nil {
		return NewError(classifyOSError(err), src, err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return NewError(KindInvalidName, name, fmt.Errorf("reserved name"))
	}
	if strings.ContainsAny(name, "/\x00") {
		return NewError(KindInvalidName, name, fmt.Errorf("disallowed character"))
	}
	if strings.Contains(name, "..") {
		return NewError(KindInvalidName, name, fmt.Errorf("path traversal not allowed"))
	}
	return nil
}

// resolveDestination applies the conflict policy to a would-be destination
// path, checked just-in-time to keep the TOCTOU window small. It returns
// ok=false when the policy is to skip this entry.
func resolveDestination(dst string, policy ConflictPolicy) (resolved string, ok bool, err error) {
	_, statErr := os.Lstat(dst)
	exists := statErr == nil
	if !exists {
		return dst, true, nil
	}

	switch policy {
	case ConflictFail:
		return "", false, NewError(KindAlreadyExists, dst, os.ErrExist)
	case ConflictSkip:
		return "", false, nil
	case ConflictOverwrite:
		return dst, true, nil
	case ConflictRenameSuffix:
		dir := filepath.Dir(dst)
		base := filepath.Base(dst)
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		for n := 1; ; n++ {
			candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
			if _, err := os.Lstat(candidate); err != nil {
				return candidate, true, nil
			}
		}
	default:
		return "", false, NewError(KindUnsupported, dst, fmt.Errorf("unknown conflict policy"))
	}
}

// CopyFile copies a single regular file, reading/writing in DefaultChunkSize
// chunks and checking cancel at every chunk boundary. Partial destination
// files are removed on cancel or error.
func CopyFile(src, dst string, opts CopyOptions, sink ProgressSink, cancel *CancelToken) error {
	in, err := os.Open(src)
	if err != nil {
		return NewError(classifyOSError(err), src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return NewError(classifyOSError(err), src, err)
	}

	resolvedDst, ok, err := resolveDestination(dst, opts.Conflict)
	if err != nil {
		return err
	}
	if !ok {
		if sink != nil {
			sink(ProgressTick{Path: src, FileDone: true})
		}
		return nil
	}

	out, err := os.OpenFile(resolvedDst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return NewError(classifyOSError(err), resolvedDst, err)
	}

	total := info.Size()
	buf := make([]byte, DefaultChunkSize)
	limiter := newRateLimiter(DefaultProgressInterval)
	var moved int64

	cleanupPartial := func() {
		out.Close()
		os.Remove(resolvedDst)
	}

	for {
		if cancel.Canceled() {
			cleanupPartial()
			return NewError(KindCanceled, src, fmt.Errorf("operation canceled"))
		}
		n, readErr := in.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				cleanupPartial()
				return NewError(classifyOSError(werr), resolvedDst, werr)
			}
			moved += int64(n)
			if sink != nil && limiter.allow(time.Now(), false) {
				sink(ProgressTick{Path: src, BytesMoved: moved, BytesTotal: total})
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			cleanupPartial()
			return NewError(classifyOSError(readErr), src, readErr)
		}
	}

	if err := out.Close(); err != nil {
		os.Remove(resolvedDst)
		return NewError(classifyOSError(err), resolvedDst, err)
	}

	if opts.PreserveTimestamps {
		_ = os.Chtimes(resolvedDst, time.Now(), info.ModTime())
	}

	if sink != nil {
		sink(ProgressTick{Path: src, BytesMoved: moved, BytesTotal: total, FileDone: true})
	}
	return nil
}

// CopyTree copies src (file or directory) to dst, recursing through
// directories. It never raises on a per-entry error; callers collect errors
// through the returned slice — one entry's failure surfaces without
// aborting the rest of the tree.
func CopyTree(src, dst string, opts CopyOptions, sink ProgressSink, cancel *CancelToken) []error {
	info, err := os.Lstat(src)
	if err != nil {
		return []error{NewError(classifyOSError(err), src, err)}
	}

	if info.Mode()&os.ModeSymlink != 0 && !opts.FollowSymlinks {
		return copySymlink(src, dst, opts, sink)
	}

	if !info.IsDir() {
		if err := CopyFile(src, dst, opts, sink, cancel); err != nil {
			return []error{err}
		}
		return nil
	}

	var errs []error
	resolvedDst := dst
	if _, err := os.Lstat(dst); err == nil {
		switch opts.Conflict {
		case ConflictSkip:
			return nil
		case ConflictRenameSuffix:
			resolvedDst, _, err = resolveDestination(dst, opts.Conflict)
			if err != nil {
				return []error{err}
			}
		}
	}
	if err := os.MkdirAll(resolvedDst, info.Mode().Perm()|0o700); err != nil {
		return []error{NewError(classifyOSError(err), resolvedDst, err)}
	}

	children, err := os.ReadDir(src)
	if err != nil {
		return []error{NewError(classifyOSError(err), src, err)}
	}

	for _, child := range children {
		if cancel.Canceled() {
			errs = append(errs, NewError(KindCanceled, src, fmt.Errorf("operation canceled")))
			break
		}
		childSrc := filepath.Join(src, child.Name())
		childDst := filepath.Join(resolvedDst, child.Name())
		errs = append(errs, CopyTree(childSrc, childDst, opts, sink, cancel)...)
	}
	return errs
}

func copySymlink(src, dst string, opts CopyOptions, sink ProgressSink) []error {
	target, err := os.Readlink(src)
	if err != nil {
		return []error{NewError(classifyOSError(err), src, err)}
	}
	resolvedDst, ok, err := resolveDestination(dst, opts.Conflict)
	if err != nil {
		return []error{err}
	}
	if !ok {
		if sink != nil {
			sink(ProgressTick{Path: src, FileDone: true})
		}
		return nil
	}
	if err := os.Symlink(target, resolvedDst); err != nil {
		return []error{NewError(classifyOSError(err), resolvedDst, err)}
	}
	if sink != nil {
		sink(ProgressTick{Path: src, FileDone: true})
	}
	return nil
}

// MoveTree moves src to dst. It renames in-place when both paths share a
// device, falling back to copy+delete across devices when rename reports
// KindCrossDevice. A move is not rolled back on cancel once individual
// entries have completed; the caller's undo layer handles reversal instead.
func MoveTree(src, dst string, opts CopyOptions, sink ProgressSink, cancel *CancelToken) []error {
	resolvedDst, ok, err := resolveDestination(dst, opts.Conflict)
	if err != nil {
		return []error{err}
	}
	if !ok {
		if sink != nil {
			sink(ProgressTick{Path: src, FileDone: true})
		}
		return nil
	}

	if err := os.Rename(src, resolvedDst); err == nil {
		if sink != nil {
			sink(ProgressTick{Path: src, FileDone: true})
		}
		return nil
	} else if classifyOSError(err) != KindCrossDevice {
		return []error{NewError(classifyOSError(err), src, err)}
	}

	errs := CopyTree(src, resolvedDst, opts, sink, cancel)
	if len(errs) > 0 {
		return errs
	}
	if err := DeleteTree(src, DeleteOptions{Recurse: true}, nil, cancel); err != nil {
		errs = append(errs, err...)
	}
	return errs
}

// DeleteTree removes path, recursing through directories when Recurse is
// set. When IntoTrash is requested but unsupported, it falls back to unlink.
func DeleteTree(path string, opts DeleteOptions, sink ProgressSink, cancel *CancelToken) []error {
	info, err := os.Lstat(path)
	if err != nil {
		return []error{NewError(classifyOSError(err), path, err)}
	}

	if opts.IntoTrash {
		if err := moveToTrash(path); err == nil {
			if sink != nil {
				sink(ProgressTick{Path: path, FileDone: true})
			}
			return nil
		}
		// Fall through to unlink on trash failure/unsupported platform.
	}

	if !info.IsDir() {
		if err := os.Remove(path); err != nil {
			return []error{NewError(classifyOSError(err), path, err)}
		}
		if sink != nil {
			sink(ProgressTick{Path: path, FileDone: true})
		}
		return nil
	}

	if !opts.Recurse {
		if err := os.Remove(path); err != nil {
			return []error{NewError(classifyOSError(err), path, err)}
		}
		if sink != nil {
			sink(ProgressTick{Path: path, FileDone: true})
		}
		return nil
	}

	var errs []error
	children, err := os.ReadDir(path)
	if err != nil {
		return []error{NewError(classifyOSError(err), path, err)}
	}
	for _, child := range children {
		if cancel.Canceled() {
			errs = append(errs, NewError(KindCanceled, path, fmt.Errorf("operation canceled")))
			break
		}
		errs = append(errs, DeleteTree(filepath.Join(path, child.Name()), opts, sink, cancel)...)
	}
	if len(errs) == 0 {
		if err := os.Remove(path); err != nil {
			errs = append(errs, NewError(classifyOSError(err), path, err))
		} else if sink != nil {
			sink(ProgressTick{Path: path, FileDone: true})
		}
	}
	return errs
}
