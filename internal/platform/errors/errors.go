package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrExternalTool = errors.New("external tool failed")
	ErrSpawnFatal   = errors.New("cannot run command")
)

// Tools named by ExternalToolError.
const (
	ToolInventory = "inventory"
	ToolFinder    = "finder"
	ToolPicker    = "picker"
)

// ExternalToolError reports a spawn failure or non-success exit of a helper program.
type ExternalToolError struct {
	Tool    string
	Message string
	Err     error
}

func (e *ExternalToolError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

func (e *ExternalToolError) Is(target error) bool { return target == ErrExternalTool }

// ExitError carries the exit status flatpick should finish with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit status.
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
