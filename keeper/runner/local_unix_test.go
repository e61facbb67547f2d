//go:build unix

package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func newTestLocal(maxOutput int) *Local {
	return NewLocal(LocalParams{Config: config.RunnerConfig{
		DefaultTimeout: 5 * time.Second,
		WaitDelay:      500 * time.Millisecond,
		MaxOutputBytes: maxOutput,
	}})
}

// processGone treats zombies as gone: they no longer run and only wait to be reaped.
func processGone(pid int) bool {
	if err := unix.Kill(pid, 0); errors.Is(err, unix.ESRCH) {
		return true
	}
	if runtime.GOOS != "linux" {
		return false
	}
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return true
	}
	fields := strings.Fields(string(data[strings.LastIndexByte(string(data), ')')+1:]))
	return len(fields) > 0 && fields[0] == "Z"
}

func TestExecutePassesExtraEnv(t *testing.T) {
	t.Setenv("KEEPER_INHERITED", "kept")
	l := newTestLocal(0)
	cmd := domain.NewCommand("sh", "-c", `printf '%s %s' "$LC_ALL" "$KEEPER_INHERITED"`).WithEnv("LC_ALL=C")
	res, err := l.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "C kept", res.Stdout)
}

func TestExecuteCapturesOutput(t *testing.T) {
	l := newTestLocal(0)
	res, err := l.Execute(context.Background(), domain.NewCommand("sh", "-c", "echo hello; echo warn >&2"))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success())
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, "warn\n", res.Stderr)
	assert.False(t, res.StartedAt.IsZero())
	assert.Positive(t, res.Duration)
}

func TestExecuteNonZeroExitIsAResult(t *testing.T) {
	l := newTestLocal(0)
	res, err := l.Execute(context.Background(), domain.NewCommand("sh", "-c", "echo oops >&2; exit 3"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())
	assert.Equal(t, "oops\n", res.Stderr)
}

func TestExecuteLaunchFailure(t *testing.T) {
	l := newTestLocal(0)
	res, err := l.Execute(context.Background(), domain.NewCommand("/nonexistent/keeper-test-binary"))
	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecution)
}

func TestExecuteTimeoutKillsProcessGroup(t *testing.T) {
	l := newTestLocal(0)
	pidFile := filepath.Join(t.TempDir(), "child.pid")
	script := fmt.Sprintf("sleep 30 & echo $! > %s; wait", pidFile)
	cmd := domain.NewCommand("sh", "-c", script).WithTimeout(300 * time.Millisecond)

	start := time.Now()
	res, err := l.Execute(context.Background(), cmd)
	elapsed := time.Since(start)

	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.Less(t, elapsed, 3*time.Second)

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	require.Positive(t, cmdErr.PID)
	assert.True(t, processGone(cmdErr.PID), "shell should be gone")

	data, readErr := os.ReadFile(pidFile)
	require.NoError(t, readErr)
	childPID, convErr := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, convErr)
	assert.Eventually(t, func() bool { return processGone(childPID) }, 2*time.Second, 20*time.Millisecond,
		"forked child should be killed with its group")
}

func TestExecuteParentCancel(t *testing.T) {
	l := newTestLocal(0)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	res, err := l.Execute(ctx, domain.NewCommand("sleep", "30"))
	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecution)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteDrainsLargeOutputOnBothStreams(t *testing.T) {
	l := newTestLocal(0)
	script := "i=0; while [ $i -lt 20000 ]; do echo out-line; echo err-line >&2; i=$((i+1)); done"
	res, err := l.Execute(context.Background(), domain.NewCommand("sh", "-c", script).WithTimeout(20*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 20000, strings.Count(res.Stdout, "out-line\n"))
	assert.Equal(t, 20000, strings.Count(res.Stderr, "err-line\n"))
	assert.False(t, res.Truncated)
}

func TestExecuteTruncatesButDrains(t *testing.T) {
	l := newTestLocal(1024)
	res, err := l.Execute(context.Background(), domain.NewCommand("sh", "-c", "head -c 200000 /dev/zero | tr '\\000' x"))
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Len(t, res.Stdout, 1024)
	assert.True(t, res.Truncated)
}

func TestExecuteFeedsScriptOnStdin(t *testing.T) {
	l := newTestLocal(0)
	res, err := l.Execute(context.Background(), domain.NewCommand("cat").WithScript("tell application \"Finder\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "tell application \"Finder\"\n", res.Stdout)
}

func TestExecuteWorkingDirectory(t *testing.T) {
	l := newTestLocal(0)
	dir := t.TempDir()
	res, err := l.Execute(context.Background(), domain.NewCommand("pwd").WithDir(dir))
	require.NoError(t, err)
	resolved, _ := filepath.EvalSymlinks(dir)
	assert.Contains(t, []string{dir, resolved}, strings.TrimSpace(res.Stdout))
}
