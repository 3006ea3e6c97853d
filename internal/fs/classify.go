package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// classifyOSError maps a bare stdlib error onto a tagged ErrorKind so the
// adapter can return a uniform vocabulary regardless of which syscall
// produced the failure.
func classifyOSError(err error) ErrorKind {
	switch {
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return classifyErrno(linkErr.Err)
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return classifyErrno(pathErr.Err)
	}
	var syscallErr *os.SyscallError
	if errors.As(err, &syscallErr) {
		return classifyErrno(syscallErr.Err)
	}

	return KindIOFailed
}
