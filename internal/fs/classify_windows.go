//go:build windows

package fs

import "syscall"

func classifyErrno(err error) ErrorKind {
	errno, ok := err.(syscall.Errno)
	if !ok {
		return KindIOFailed
	}
	switch errno {
	case syscall.ERROR_FILE_NOT_FOUND, syscall.ERROR_PATH_NOT_FOUND:
		return KindNotFound
	case syscall.ERROR_FILE_EXISTS, syscall.ERROR_ALREADY_EXISTS:
		return KindAlreadyExists
	case syscall.ERROR_ACCESS_DENIED:
		return KindPermissionDenied
	case syscall.ERROR_DIRECTORY:
		return KindNotADirectory
	case syscall.ERROR_NOT_SAME_DEVICE:
		return KindCrossDevice
	case syscall.ERROR_DISK_FULL:
		return KindQuotaExceeded
	case syscall.ERROR_INVALID_NAME, syscall.ERROR_FILENAME_EXCED_RANGE:
		return KindInvalidName
	default:
		return KindIOFailed
	}
}
