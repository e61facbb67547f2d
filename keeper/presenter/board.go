package presenter

import "github.com/hostkeeper/keeper/keeper/domain"

const defaultActionHistory = 50

// Board is the presentation state. Only the dispatcher goroutine touches it.
type Board struct {
	Processes domain.PollState[domain.ProcessRecord]
	Tabs      domain.PollState[domain.BrowserTab]
	Health    domain.PollState[domain.HealthCheckResult]
	// Actions is newest first.
	Actions []domain.ActionEvent

	history int
}

func NewBoard(history int) *Board {
	if history <= 0 {
		history = defaultActionHistory
	}
	return &Board{
		Processes: domain.PollState[domain.ProcessRecord]{Kind: domain.PollerProcesses},
		Tabs:      domain.PollState[domain.BrowserTab]{Kind: domain.PollerTabs},
		Health:    domain.PollState[domain.HealthCheckResult]{Kind: domain.PollerHealth},
		history:   history,
	}
}

func (b *Board) Apply(ev domain.Event) {
	switch e := ev.(type) {
	case domain.SnapshotEvent[domain.ProcessRecord]:
		b.Processes = e.State
	case domain.SnapshotEvent[domain.BrowserTab]:
		b.Tabs = e.State
	case domain.SnapshotEvent[domain.HealthCheckResult]:
		b.Health = e.State
	case domain.ActionEvent:
		b.Actions = append([]domain.ActionEvent{e}, b.Actions...)
		if len(b.Actions) > b.history {
			b.Actions = b.Actions[:b.history]
		}
	}
}
