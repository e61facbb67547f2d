package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"github.com/hostkeeper/keeper/pkg/logger"
	"go.uber.org/fx"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultWaitDelay = 2 * time.Second
)

type LocalParams struct {
	fx.In
	Config  config.RunnerConfig
	Metrics *metrics.Collector `optional:"true"`
}

// Local spawns commands as the current user. Every child runs in its own process group so a
// timeout takes down everything it forked.
type Local struct {
	defaultTimeout time.Duration
	waitDelay      time.Duration
	maxOutput      int
	metrics        *metrics.Collector
}

func NewLocal(params LocalParams) *Local {
	l := &Local{
		defaultTimeout: params.Config.DefaultTimeout,
		waitDelay:      params.Config.WaitDelay,
		maxOutput:      params.Config.MaxOutputBytes,
		metrics:        params.Metrics,
	}
	if l.defaultTimeout <= 0 {
		l.defaultTimeout = defaultTimeout
	}
	if l.waitDelay <= 0 {
		l.waitDelay = defaultWaitDelay
	}
	return l
}

// Execute returns either a result with a definite exit status or one *domain.CommandError.
// A non-zero exit is a result, not an error.
func (l *Local) Execute(ctx context.Context, command domain.Command) (*domain.CommandResult, error) {
	timeout := command.Timeout
	if timeout <= 0 {
		timeout = l.defaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	program := filepath.Base(command.Program)
	log := logger.Logger(ctx).With().Str("command", command.String()).Logger()

	cmd := exec.CommandContext(runCtx, command.Program, command.Args...)
	cmd.Dir = command.Dir
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}
	if command.Script != "" {
		cmd.Stdin = strings.NewReader(command.Script)
	}
	stdout := newCappedBuffer(l.maxOutput)
	stderr := newCappedBuffer(l.maxOutput)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		return killProcessGroup(cmd.Process)
	}
	cmd.WaitDelay = l.waitDelay

	startedAt := time.Now()
	if err := cmd.Start(); err != nil {
		l.metrics.ObserveCommand(program, metrics.OutcomeFailure, 0)
		log.Debug().Err(err).Msg("command failed to start")
		return nil, &domain.CommandError{Kind: domain.ErrExecution, Command: command.String(), Err: err}
	}
	pid := cmd.Process.Pid
	waitErr := cmd.Wait()
	duration := time.Since(startedAt)

	if ctxErr := runCtx.Err(); ctxErr != nil && waitErr != nil {
		kind, outcome := domain.ErrTimeout, metrics.OutcomeTimeout
		if errors.Is(ctxErr, context.Canceled) {
			kind, outcome = domain.ErrExecution, metrics.OutcomeCanceled
		}
		l.metrics.ObserveCommand(program, outcome, duration)
		log.Warn().Int("pid", pid).Dur("timeout", timeout).Msg("command killed before completion")
		return nil, &domain.CommandError{
			Kind:    kind,
			Command: command.String(),
			PID:     pid,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     ctxErr,
		}
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(waitErr, &exitErr):
		case errors.Is(waitErr, exec.ErrWaitDelay):
			log.Warn().Int("pid", pid).Msg("output still held open by a child after exit")
		default:
			l.metrics.ObserveCommand(program, metrics.OutcomeFailure, duration)
			return nil, &domain.CommandError{Kind: domain.ErrExecution, Command: command.String(), PID: pid, Err: waitErr}
		}
	}

	res := &domain.CommandResult{
		Command:   command,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  cmd.ProcessState.ExitCode(),
		StartedAt: startedAt,
		Duration:  duration,
		Truncated: stdout.truncated || stderr.truncated,
	}
	outcome := metrics.OutcomeSuccess
	if !res.Success() {
		outcome = metrics.OutcomeNonZero
	}
	l.metrics.ObserveCommand(program, outcome, duration)
	log.Debug().Int("pid", pid).Int("exit_code", res.ExitCode).Dur("duration", duration).Msg("command finished")
	return res, nil
}
