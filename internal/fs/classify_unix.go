//go:build !windows

package fs

import "syscall"

func classifyErrno(err error) ErrorKind {
	errno, ok := err.(syscall.Errno)
	if !ok {
		return KindIOFailed
	}
	switch errno {
	case syscall.ENOENT:
		return KindNotFound
	case syscall.EEXIST:
		return KindAlreadyExists
	case syscall.EACCES, syscall.EPERM:
		return KindPermissionDenied
	case syscall.ENOTDIR:
		return KindNotADirectory
	case syscall.EISDIR:
		return KindIsADirectory
	case syscall.EXDEV:
		return KindCrossDevice
	case syscall.ENOSPC, syscall.EDQUOT:
		return KindQuotaExceeded
	case syscall.ENAMETOOLONG, syscall.EINVAL:
		return KindInvalidName
	default:
		return KindIOFailed
	}
}
