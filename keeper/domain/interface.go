//go:generate go tool mockery

package domain

import (
	"context"
	"time"
)

// Executor runs a command with the caller's privileges.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (*CommandResult, error)
}

// CommandRunner also routes commands through privilege escalation.
type CommandRunner interface {
	Executor
	ExecutePrivileged(ctx context.Context, cmd Command) (*CommandResult, error)
}

// Elevator runs one command behind the OS authorization prompt.
type Elevator interface {
	Elevate(ctx context.Context, cmd Command) (*CommandResult, error)
}

// ScriptRequest is one script run. Args reach the script's run handler as argv, so values never
// need to be quoted into Source.
type ScriptRequest struct {
	Application string
	Source      string
	Args        []string
	Timeout     time.Duration
}

// ScriptRunner submits automation scripts to the OS scripting interface.
type ScriptRunner interface {
	RunScript(ctx context.Context, req ScriptRequest) (*CommandResult, error)
}

// BrowserAutomation is the scripting capability of one browser application.
type BrowserAutomation interface {
	Browser() Browser
	ListTabs(ctx context.Context) ([]BrowserTab, ParseReport, error)
	CloseTab(ctx context.Context, tab BrowserTab) (bool, error)
}

// ParseReport summarizes what a parser dropped.
type ParseReport struct {
	Lines   int
	Skipped int
	Errors  []ParseError
}

type Poller[T any] interface {
	Kind() PollerKind
	Refresh(ctx context.Context) (*Snapshot[T], error)
	LastSnapshot() *Snapshot[T]
	State() PollState[T]
	IsRefreshing() bool
}

type (
	ProcessPoller = Poller[ProcessRecord]
	TabPoller     = Poller[BrowserTab]
	HealthPoller  = Poller[HealthCheckResult]
)

// Publisher hands events to the presentation context.
type Publisher interface {
	Publish(ev Event)
}

type Observer interface {
	Observe(ev Event)
}

type ActionCoordinator interface {
	Terminate(ctx context.Context, pid int, force bool) error
	CloseTabs(ctx context.Context, tabs []BrowserTab) (int, error)
	RunCleanup(ctx context.Context, category string) (*CleanupOutcome, error)
	EstimateCleanup(ctx context.Context, category string) (*CleanupEstimate, error)
	CleanupCategories() []CleanupCategory
	Refresh(ctx context.Context, kind PollerKind) error
}

// StateView reads presentation state from outside the presentation context.
type StateView interface {
	Processes(ctx context.Context) (PollState[ProcessRecord], error)
	Tabs(ctx context.Context) (PollState[BrowserTab], error)
	Health(ctx context.Context) (PollState[HealthCheckResult], error)
	Actions(ctx context.Context) ([]ActionEvent, error)
}
