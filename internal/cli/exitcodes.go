package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/tagtree/pkg/fsutil"
)

// Exit codes for tagtree.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidMarkup indicates an input failed to tokenize or parse.
	ExitInvalidMarkup = 1

	// ExitCheckFailed indicates fmt --check found files that need formatting.
	ExitCheckFailed = 3

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Error classes returned by commands.
var (
	// ErrInvalidMarkup is returned after a parse diagnostic has been printed.
	ErrInvalidMarkup = errors.New("invalid markup")

	// ErrCheckFailed is returned when fmt --check finds unformatted files.
	ErrCheckFailed = errors.New("files need formatting")

	// ErrUsage marks bad flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration loading failures.
	ErrConfig = errors.New("configuration error")
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidMarkup):
		return ExitInvalidMarkup
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	case errors.Is(err, ErrUsage), errors.Is(err, ErrStdinTerminal):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case isIOError(err):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// Reported reports whether the command already printed the details of err,
// so the caller should not log it again.
func Reported(err error) bool {
	return errors.Is(err, ErrInvalidMarkup) || errors.Is(err, ErrCheckFailed)
}

func isIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) ||
		errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) ||
		errors.Is(err, fsutil.ErrModified)
}
