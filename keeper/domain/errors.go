package domain

import (
	"errors"
	"fmt"
)

var (
	ErrExecution            = errors.New("execution failed")
	ErrTimeout              = errors.New("command timed out")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrCommandFailed        = errors.New("command exited with non-zero status")
	ErrEscalationInProgress = errors.New("another privilege escalation is awaiting approval")
	ErrPartialActionFailure = errors.New("action partially failed")
	ErrActionInProgress     = errors.New("an action on this target is already running")
	ErrNotFound             = errors.New("not found")
	ErrUnknownCategory      = errors.New("unknown cleanup category")
	ErrUnknownPoller        = errors.New("unknown poller")
)

// CommandError carries one error kind from the list above together with the command context.
// errors.Is matches both the kind and the wrapped cause.
type CommandError struct {
	Kind     error
	Command  string
	PID      int
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Kind)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ParseError describes one input line a parser could not use.
type ParseError struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
