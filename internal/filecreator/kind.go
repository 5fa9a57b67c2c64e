package filecreator

import (
	"errors"
	"io/fs"
	"syscall"
)

// Kind is a failure category derived from the underlying filesystem error.
type Kind string

const (
	// KindPermissionDenied means the caller may not write the target.
	KindPermissionDenied Kind = "permission-denied"
	// KindNotFound means a parent directory of the target is missing.
	KindNotFound Kind = "not-found"
	// KindIsDirectory means the target is an existing directory.
	KindIsDirectory Kind = "is-a-directory"
	// KindInvalidPath means the path cannot name a file on this filesystem.
	KindInvalidPath Kind = "invalid-path"
	// KindOther covers every remaining failure (disk full, I/O errors).
	KindOther Kind = "other"
)

// Classify maps err onto a Kind. A nil error has the empty kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyPath):
		return KindInvalidPath
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.EISDIR):
		return KindIsDirectory
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.ENAMETOOLONG),
		errors.Is(err, syscall.EINVAL):
		return KindInvalidPath
	default:
		return KindOther
	}
}
