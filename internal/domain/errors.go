package domain

import (
	"errors"
	"fmt"
)

// ErrToolNotInstalled signals that the vale binary could not be found or
// executed. Gated operations translate it into a uniform guidance payload.
var ErrToolNotInstalled = errors.New("vale is not installed")

// FileNotFoundError reports a check target that is missing or unreadable.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found or not readable: %s", e.Path)
}

// ExecutionError reports a vale invocation that produced no usable output.
// Output carries the captured stderr (or the exec error text) verbatim.
//
// Note that a non-zero exit from vale is not by itself an execution failure:
// vale exits non-zero whenever it finds issues. The discriminant is the
// absence of stdout, not the exit code.
type ExecutionError struct {
	Output string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("vale execution failed: %s", e.Output)
}

// MalformedOutputError reports vale output that could not be parsed as JSON.
type MalformedOutputError struct {
	Msg string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed vale output: %s", e.Msg)
}
