package runner

import (
	"context"
	"errors"

	"github.com/hostkeeper/keeper/keeper/domain"
	"go.uber.org/fx"
)

var errNoElevator = errors.New("privilege escalation is not available")

type Params struct {
	fx.In
	Local    *Local
	Elevator domain.Elevator `optional:"true"`
}

// NewRunner combines the local executor with the escalation gate.
func NewRunner(params Params) domain.CommandRunner {
	return &Runner{local: params.Local, elevator: params.Elevator}
}

type Runner struct {
	local    domain.Executor
	elevator domain.Elevator
}

func (r *Runner) Execute(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error) {
	if cmd.Privileged {
		return r.ExecutePrivileged(ctx, cmd)
	}
	return r.local.Execute(ctx, cmd)
}

// ExecutePrivileged prompts for authorization every time; approvals are never reused.
func (r *Runner) ExecutePrivileged(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error) {
	if r.elevator == nil {
		return nil, &domain.CommandError{Kind: domain.ErrPermissionDenied, Command: cmd.String(), Err: errNoElevator}
	}
	return r.elevator.Elevate(ctx, cmd.Elevated())
}
