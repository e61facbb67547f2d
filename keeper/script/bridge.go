package script

import (
	"context"
	"strings"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"go.uber.org/fx"
)

const (
	defaultInterpreter   = "osascript"
	defaultScriptTimeout = 15 * time.Second
)

type BridgeParams struct {
	fx.In
	Executor domain.Executor
	Config   config.RunnerConfig
}

// Bridge submits AppleScript source to osascript through the command runner. Output is returned
// as raw text; callers own the parsing.
type Bridge struct {
	exec        domain.Executor
	interpreter string
	timeout     time.Duration
}

func NewBridge(params BridgeParams) *Bridge {
	timeout := params.Config.ScriptTimeout
	if timeout <= 0 {
		timeout = defaultScriptTimeout
	}
	return &Bridge{exec: params.Executor, interpreter: defaultInterpreter, timeout: timeout}
}

// RunScript runs req.Source. A script that guards on "application is running" succeeds with empty
// output when the application is closed; a refused Apple Events permission is ErrPermissionDenied.
func (b *Bridge) RunScript(ctx context.Context, req domain.ScriptRequest) (*domain.CommandResult, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = b.timeout
	}
	args := append([]string{"-"}, req.Args...)
	cmd := domain.NewCommand(b.interpreter, args...).WithScript(req.Source).WithTimeout(timeout)
	res, err := b.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !res.Success() && automationDenied(res.Stderr) {
		return nil, &domain.CommandError{
			Kind:     domain.ErrPermissionDenied,
			Command:  b.interpreter + " (" + req.Application + ")",
			ExitCode: res.ExitCode,
			Stderr:   strings.TrimSpace(res.Stderr),
		}
	}
	return res, nil
}

func automationDenied(stderr string) bool {
	return strings.Contains(stderr, "(-1743)") || strings.Contains(stderr, "Not authorized to send Apple events")
}
