package escalation_test

import (
	"context"
	"testing"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/escalation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T, mode escalation.Mode) (*escalation.Gate, *domain.MockExecutor) {
	exec := domain.NewMockExecutor(t)
	gate := escalation.NewGate(escalation.Params{
		Config:     config.EscalationConfig{Mode: string(mode), PromptTimeout: time.Minute},
		Executor:   exec,
		Authorizer: escalation.PolkitAuthorizer{},
	})
	return gate, exec
}

// blockingPrompt makes the executor wait until release is closed, standing in for a user who has
// not answered the dialog yet.
func blockingPrompt(release <-chan struct{}) func(context.Context, domain.Command) (*domain.CommandResult, error) {
	return func(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error) {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return &domain.CommandResult{Command: cmd, Stdout: "ok"}, nil
	}
}

func TestGateFailFastRejectsConcurrentPrompt(t *testing.T) {
	gate, exec := newGate(t, escalation.ModeFailFast)
	release := make(chan struct{})
	exec.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(blockingPrompt(release)).Once()

	done := make(chan error, 1)
	go func() {
		_, err := gate.Elevate(context.Background(), domain.NewCommand("purge"))
		done <- err
	}()
	require.Eventually(t, func() bool { return gate.State() == escalation.StateAwaitingApproval }, time.Second, 5*time.Millisecond)

	res, err := gate.Elevate(context.Background(), domain.NewCommand("purge"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrEscalationInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, escalation.StateIdle, gate.State())
}

func TestGateQueueWaitsForIdle(t *testing.T) {
	gate, exec := newGate(t, escalation.ModeQueue)
	release := make(chan struct{})
	exec.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(blockingPrompt(release)).Twice()

	first := make(chan error, 1)
	go func() {
		_, err := gate.Elevate(context.Background(), domain.NewCommand("purge"))
		first <- err
	}()
	require.Eventually(t, func() bool { return gate.State() == escalation.StateAwaitingApproval }, time.Second, 5*time.Millisecond)

	second := make(chan error, 1)
	go func() {
		_, err := gate.Elevate(context.Background(), domain.NewCommand("dscacheutil", "-flushcache"))
		second <- err
	}()

	select {
	case <-second:
		t.Fatal("queued escalation finished while the first prompt was open")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
	require.NoError(t, <-first)
	require.NoError(t, <-second)
}

func TestGateQueueHonoursCallerContext(t *testing.T) {
	gate, exec := newGate(t, escalation.ModeQueue)
	release := make(chan struct{})
	defer close(release)
	exec.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(blockingPrompt(release)).Once()

	go gate.Elevate(context.Background(), domain.NewCommand("purge"))
	require.Eventually(t, func() bool { return gate.State() == escalation.StateAwaitingApproval }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := gate.Elevate(ctx, domain.NewCommand("purge"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGateDenialReturnsToIdleAndPromptsAgain(t *testing.T) {
	gate, exec := newGate(t, escalation.ModeFailFast)
	exec.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(&domain.CommandResult{ExitCode: 126, Stderr: "Error executing command as another user: Not authorized"}, nil).Once()
	exec.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(&domain.CommandResult{ExitCode: 0, Stdout: "done"}, nil).Once()

	res, err := gate.Elevate(context.Background(), domain.NewCommand("kill", "-TERM", "1"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Equal(t, escalation.StateIdle, gate.State())

	res, err = gate.Elevate(context.Background(), domain.NewCommand("kill", "-TERM", "1"))
	require.NoError(t, err)
	assert.Equal(t, "done", res.Stdout)
	assert.Equal(t, "kill", res.Command.Program, "result reports the original command")
}

func TestGateWrapsWithPromptTimeout(t *testing.T) {
	gate, exec := newGate(t, escalation.ModeFailFast)
	exec.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(cmd domain.Command) bool {
		return cmd.Program == "pkexec" && cmd.Timeout == time.Minute+5*time.Second
	})).Return(&domain.CommandResult{}, nil).Once()

	_, err := gate.Elevate(context.Background(), domain.NewCommand("purge").WithTimeout(5*time.Second))
	require.NoError(t, err)
}

func TestGateTimeoutReturnsToIdle(t *testing.T) {
	gate, exec := newGate(t, escalation.ModeFailFast)
	exec.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(nil, &domain.CommandError{Kind: domain.ErrTimeout, Command: "pkexec purge"}).Once()

	_, err := gate.Elevate(context.Background(), domain.NewCommand("purge"))
	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.Equal(t, escalation.StateIdle, gate.State())
}
