package domain

import "time"

type PollerKind string

const (
	PollerProcesses PollerKind = "processes"
	PollerTabs      PollerKind = "tabs"
	PollerHealth    PollerKind = "health"
)

func ParsePollerKind(s string) (PollerKind, error) {
	switch kind := PollerKind(s); kind {
	case PollerProcesses, PollerTabs, PollerHealth:
		return kind, nil
	}
	return "", ErrUnknownPoller
}

// Snapshot is immutable once published.
type Snapshot[T any] struct {
	Items       []T
	TakenAt     time.Time
	Seq         uint64
	Skipped     int
	ParseErrors []ParseError
	Warnings    []string
	Fingerprint string
}

func (s *Snapshot[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// PollState is what a poller publishes after every refresh attempt.
type PollState[T any] struct {
	Kind       PollerKind
	Snapshot   *Snapshot[T]
	Refreshing bool
	LastError  error
	FailedAt   time.Time
}

// Stale reports that the last refresh failed and the snapshot is from an earlier run.
func (s PollState[T]) Stale() bool {
	return s.LastError != nil && s.Snapshot != nil
}

func (s PollState[T]) StaleSince() time.Time {
	if !s.Stale() {
		return time.Time{}
	}
	return s.Snapshot.TakenAt
}
