package shell

import (
	"errors"
	"fmt"
)

// ExitError carries the exit code the process should terminate with
// once the application has shut down.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("application exited with code %d", e.Code)
}

func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// ExitCode returns the exit code carried by err. A nil error maps to 0,
// any error that is not an ExitError maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
