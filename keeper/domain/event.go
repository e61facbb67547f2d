package domain

import "time"

// Event is anything published to the presentation context.
type Event interface {
	EventName() string
}

type SnapshotEvent[T any] struct {
	State PollState[T]
}

func (e SnapshotEvent[T]) EventName() string {
	return "snapshot." + string(e.State.Kind)
}

type ActionKind string

const (
	ActionTerminate ActionKind = "terminate"
	ActionCloseTabs ActionKind = "close_tabs"
	ActionCleanup   ActionKind = "cleanup"
	ActionRefresh   ActionKind = "refresh"
)

type ActionEvent struct {
	ID      string
	Action  ActionKind
	Target  string
	Message string
	Err     error
	At      time.Time
}

func (e ActionEvent) EventName() string {
	return "action." + string(e.Action)
}

func (e ActionEvent) Failed() bool {
	return e.Err != nil
}
