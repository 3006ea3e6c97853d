package fs

import (
	"errors"
	"fmt"
)

// ErrorKind tags a filesystem failure so callers can branch on it without
// string-matching, per the adapter's typed-error propagation policy.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindAlreadyExists   ErrorKind = "already_exists"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindNotADirectory   ErrorKind = "not_a_directory"
	KindIsADirectory    ErrorKind = "is_a_directory"
	KindCrossDevice     ErrorKind = "cross_device"
	KindInvalidName     ErrorKind = "invalid_name"
	KindQuotaExceeded   ErrorKind = "quota_exceeded"
	KindIOFailed        ErrorKind = "io_failed"
	KindCanceled        ErrorKind = "canceled"
	KindUnsupported     ErrorKind = "unsupported"
)

// Error is the tagged value every mutating C1 operation returns instead of
// raising. It wraps the underlying OS error so errors.Is/As still work.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a tagged Error, classifying err when the caller doesn't
// already know the kind (see classify.go).
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf extracts the ErrorKind from err, classifying raw OS errors that
// were never wrapped as *Error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr.Kind
	}
	return classifyOSError(err)
}

// IsCanceled reports whether err represents a canceled operation.
func IsCanceled(err error) bool {
	return KindOf(err) == KindCanceled
}
