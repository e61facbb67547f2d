package escalation

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"github.com/hostkeeper/keeper/pkg/logger"
	"go.uber.org/fx"
)

type Mode string

const (
	ModeFailFast Mode = "fail_fast"
	ModeQueue    Mode = "queue"
)

const defaultPromptTimeout = 2 * time.Minute

type State int32

const (
	StateIdle State = iota
	StateAwaitingApproval
)

func (s State) String() string {
	if s == StateAwaitingApproval {
		return "awaiting_approval"
	}
	return "idle"
}

type Params struct {
	fx.In
	Config     config.EscalationConfig
	Executor   domain.Executor
	Authorizer Authorizer         `optional:"true"`
	Metrics    *metrics.Collector `optional:"true"`
}

// Gate allows one authorization prompt at a time. Nothing is cached between prompts.
type Gate struct {
	exec          domain.Executor
	auth          Authorizer
	mode          Mode
	promptTimeout time.Duration
	slot          chan struct{}
	state         atomic.Int32
	metrics       *metrics.Collector
}

func NewGate(params Params) *Gate {
	g := &Gate{
		exec:          params.Executor,
		auth:          params.Authorizer,
		mode:          Mode(strings.ToLower(params.Config.Mode)),
		promptTimeout: params.Config.PromptTimeout,
		slot:          make(chan struct{}, 1),
		metrics:       params.Metrics,
	}
	if g.auth == nil {
		g.auth = DefaultAuthorizer()
	}
	if g.mode != ModeQueue {
		g.mode = ModeFailFast
	}
	if g.promptTimeout <= 0 {
		g.promptTimeout = defaultPromptTimeout
	}
	return g
}

func (g *Gate) State() State {
	return State(g.state.Load())
}

func (g *Gate) Elevate(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error) {
	if err := g.acquire(ctx); err != nil {
		g.metrics.ObserveEscalation(metrics.OutcomeBusy)
		return nil, err
	}
	g.state.Store(int32(StateAwaitingApproval))
	defer func() {
		g.state.Store(int32(StateIdle))
		<-g.slot
	}()

	timeout := g.promptTimeout
	if cmd.Timeout > 0 {
		timeout += cmd.Timeout
	}
	wrapped := g.auth.Wrap(cmd).WithTimeout(timeout)
	logger.Logger(ctx).Info().Str("command", cmd.String()).Msg("requesting administrator authorization")

	res, err := g.exec.Execute(ctx, wrapped)
	if err != nil {
		outcome := metrics.OutcomeFailure
		if errors.Is(err, domain.ErrTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		g.metrics.ObserveEscalation(outcome)
		return nil, err
	}
	if g.auth.Denied(res) {
		g.metrics.ObserveEscalation(metrics.OutcomeDenied)
		return nil, &domain.CommandError{
			Kind:     domain.ErrPermissionDenied,
			Command:  cmd.String(),
			ExitCode: res.ExitCode,
			Stderr:   strings.TrimSpace(res.Stderr),
		}
	}
	g.metrics.ObserveEscalation(metrics.OutcomeSuccess)
	res.Command = cmd
	return res, nil
}

func (g *Gate) acquire(ctx context.Context) error {
	if g.mode == ModeQueue {
		select {
		case g.slot <- struct{}{}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	select {
	case g.slot <- struct{}{}:
		return nil
	default:
		return domain.ErrEscalationInProgress
	}
}
