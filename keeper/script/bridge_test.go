package script_test

import (
	"context"
	"testing"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunScriptFeedsSourceToOsascript(t *testing.T) {
	exec := domain.NewMockExecutor(t)
	bridge := script.NewBridge(script.BridgeParams{Executor: exec, Config: config.RunnerConfig{ScriptTimeout: 3 * time.Second}})

	exec.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(cmd domain.Command) bool {
		return cmd.Program == "osascript" &&
			assert.ObjectsAreEqual([]string{"-"}, cmd.Args) &&
			cmd.Script == `return "hi"` &&
			cmd.Timeout == 3*time.Second
	})).Return(&domain.CommandResult{Stdout: "hi\n"}, nil).Once()

	res, err := bridge.RunScript(context.Background(), domain.ScriptRequest{Application: "Finder", Source: `return "hi"`})
	require.NoError(t, err)
	assert.Equal(t, "hi\n", res.Stdout)
}

func TestRunScriptPassesArgsAfterStdinMarker(t *testing.T) {
	exec := domain.NewMockExecutor(t)
	bridge := script.NewBridge(script.BridgeParams{Executor: exec})

	exec.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(cmd domain.Command) bool {
		return assert.ObjectsAreEqual([]string{"-", "1", "2", "https://a.example/?x=1 y"}, cmd.Args)
	})).Return(&domain.CommandResult{Stdout: "closed\n"}, nil).Once()

	_, err := bridge.RunScript(context.Background(), domain.ScriptRequest{
		Application: "Safari",
		Source:      "on run argv\nend run",
		Args:        []string{"1", "2", "https://a.example/?x=1 y"},
	})
	require.NoError(t, err)
}

func TestRunScriptNotRunningIsEmptySuccess(t *testing.T) {
	exec := domain.NewMockExecutor(t)
	bridge := script.NewBridge(script.BridgeParams{Executor: exec})
	exec.EXPECT().Execute(mock.Anything, mock.Anything).Return(&domain.CommandResult{ExitCode: 0}, nil).Once()

	res, err := bridge.RunScript(context.Background(), domain.ScriptRequest{Application: "Safari", Source: "..."})
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Empty(t, res.Stdout)
}

func TestRunScriptAutomationDenied(t *testing.T) {
	exec := domain.NewMockExecutor(t)
	bridge := script.NewBridge(script.BridgeParams{Executor: exec})
	exec.EXPECT().Execute(mock.Anything, mock.Anything).Return(&domain.CommandResult{
		ExitCode: 1,
		Stderr:   "execution error: Not authorized to send Apple events to Safari. (-1743)\n",
	}, nil).Once()

	res, err := bridge.RunScript(context.Background(), domain.ScriptRequest{Application: "Safari", Source: "..."})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestRunScriptOtherFailureIsAResult(t *testing.T) {
	exec := domain.NewMockExecutor(t)
	bridge := script.NewBridge(script.BridgeParams{Executor: exec})
	exec.EXPECT().Execute(mock.Anything, mock.Anything).Return(&domain.CommandResult{
		ExitCode: 1,
		Stderr:   "syntax error: Expected end of line (-2741)",
	}, nil).Once()

	res, err := bridge.RunScript(context.Background(), domain.ScriptRequest{Source: "tell"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
}

func TestRunScriptPropagatesTimeout(t *testing.T) {
	exec := domain.NewMockExecutor(t)
	bridge := script.NewBridge(script.BridgeParams{Executor: exec})
	exec.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(nil, &domain.CommandError{Kind: domain.ErrTimeout, Command: "osascript -"}).Once()

	_, err := bridge.RunScript(context.Background(), domain.ScriptRequest{Source: "delay 100"})
	assert.ErrorIs(t, err, domain.ErrTimeout)
}
