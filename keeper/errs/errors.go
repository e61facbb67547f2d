package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ActionError is the failure of a user-initiated action. Message keeps the OS error output verbatim.
type ActionError struct {
	Action      string
	Target      string
	Message     string
	OriginalErr error
}

func (e *ActionError) Error() string {
	if e.OriginalErr == nil {
		return fmt.Sprintf("%s %s: %s", e.Action, e.Target, e.Message)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Action, e.Target, e.Message, e.OriginalErr)
}

func (e *ActionError) Unwrap() error {
	return e.OriginalErr
}

func NewActionError(action, target, message string, originalErr error) *ActionError {
	return &ActionError{
		Action:      action,
		Target:      target,
		Message:     message,
		OriginalErr: originalErr,
	}
}

func IsActionError(err error) (*ActionError, bool) {
	if err == nil {
		return nil, false
	}
	err = errors.Cause(err)
	actionErr, ok := err.(*ActionError)
	return actionErr, ok
}
