package bootstrap

import (
	"errors"
	"strconv"
	"strings"
)

// Every bootstrap failure is terminal. Callers tell them apart with errors.Is.
var (
	ErrUnsupportedRuntime   = errors.New("unsupported python runtime")
	ErrMissingConfiguration = errors.New("missing required environment variables")
	ErrManifestNotFound     = errors.New("dependency manifest not found")
	ErrDependencyInstall    = errors.New("failed to install dependencies")
	ErrServiceLaunch        = errors.New("failed to start service")
)

// MissingConfigError lists every required variable that was unset or empty,
// in declaration order.
type MissingConfigError struct {
	Vars []string
}

func (e *MissingConfigError) Error() string {
	return ErrMissingConfiguration.Error() + ": " + strings.Join(e.Vars, ", ")
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfiguration
}

// ExitError is a child process that ran and exited non-zero.
// Code is -1 when the process was killed by a signal.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + strconv.Itoa(e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode extracts the exit code from an error chain containing *ExitError.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
