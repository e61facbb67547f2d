package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func processEvent(items ...domain.ProcessRecord) eventMsg {
	return eventMsg{ev: domain.SnapshotEvent[domain.ProcessRecord]{State: domain.PollState[domain.ProcessRecord]{
		Kind:     domain.PollerProcesses,
		Snapshot: &domain.Snapshot[domain.ProcessRecord]{Items: items, TakenAt: time.Now()},
	}}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelHidesSystemProcesses(t *testing.T) {
	m := NewModel(domain.NewMockActionCoordinator(t), domain.NewPolicyStore(domain.DefaultPolicy()), 10)
	m, _ = update(t, m, processEvent(
		domain.ProcessRecord{PID: 42, Name: "Slack", User: "alice", MemoryMB: 900},
		domain.ProcessRecord{PID: 1, Name: "launchd", User: "root", System: true},
	))
	assert.Len(t, m.processes(), 1)
	assert.Contains(t, m.View(), "Slack")
	assert.NotContains(t, m.View(), "launchd")

	m, _ = update(t, m, key("s"))
	assert.Len(t, m.processes(), 2)
}

func TestModelTerminateNeedsConfirmation(t *testing.T) {
	coordinator := domain.NewMockActionCoordinator(t)
	m := NewModel(coordinator, domain.NewPolicyStore(domain.DefaultPolicy()), 10)
	m, _ = update(t, m, processEvent(domain.ProcessRecord{PID: 42, Name: "Slack", User: "alice"}))

	m, cmd := update(t, m, key("X"))
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Force kill Slack (pid 42)?")

	coordinator.EXPECT().Terminate(mock.Anything, 42, true).Return(nil).Once()
	m, cmd = update(t, m, key("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.confirm)

	m, _ = update(t, m, cmd())
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "pid 42")
}

func TestModelConfirmationCanBeCancelled(t *testing.T) {
	m := NewModel(domain.NewMockActionCoordinator(t), domain.NewPolicyStore(domain.DefaultPolicy()), 10)
	m, _ = update(t, m, processEvent(domain.ProcessRecord{PID: 42, Name: "Slack"}))
	m, _ = update(t, m, key("x"))
	m, cmd := update(t, m, key("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
}

func TestModelShowsStaleState(t *testing.T) {
	m := NewModel(domain.NewMockActionCoordinator(t), domain.NewPolicyStore(domain.DefaultPolicy()), 10)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewTabs, m.view)

	taken := time.Date(2026, 1, 2, 9, 30, 0, 0, time.Local)
	m, _ = update(t, m, eventMsg{ev: domain.SnapshotEvent[domain.BrowserTab]{State: domain.PollState[domain.BrowserTab]{
		Kind:      domain.PollerTabs,
		Snapshot:  &domain.Snapshot[domain.BrowserTab]{TakenAt: taken, Items: []domain.BrowserTab{{Browser: "Safari", WindowIndex: 1, TabIndex: 1, Title: "Docs"}}},
		LastError: domain.ErrPermissionDenied,
	}}})
	out := m.View()
	assert.Contains(t, out, "stale since 09:30:00")
	assert.Contains(t, out, "Docs")
}

func TestModelActionEventsSetStatus(t *testing.T) {
	m := NewModel(domain.NewMockActionCoordinator(t), domain.NewPolicyStore(domain.DefaultPolicy()), 10)
	m, _ = update(t, m, eventMsg{ev: domain.ActionEvent{Action: domain.ActionCleanup, Message: "removed 3 items", At: time.Now()}})
	assert.Equal(t, "removed 3 items", m.status)

	m, _ = update(t, m, eventMsg{ev: domain.ActionEvent{Action: domain.ActionTerminate, Err: domain.ErrPermissionDenied, At: time.Now()}})
	assert.True(t, m.statusErr)
	assert.Len(t, m.board.Actions, 2)
}

func TestModelCursorStaysInRange(t *testing.T) {
	m := NewModel(domain.NewMockActionCoordinator(t), domain.NewPolicyStore(domain.DefaultPolicy()), 10)
	m, _ = update(t, m, processEvent(domain.ProcessRecord{PID: 1, Name: "a"}, domain.ProcessRecord{PID: 2, Name: "b"}))
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, key("j"))
	}
	assert.Equal(t, 1, m.cursor)

	m, _ = update(t, m, processEvent(domain.ProcessRecord{PID: 1, Name: "a"}))
	assert.Equal(t, 0, m.cursor)
}

func TestObserverKeepsOrder(t *testing.T) {
	var got []tea.Msg
	done := make(chan struct{})
	o := NewObserver(func(msg tea.Msg) {
		got = append(got, msg)
		if len(got) == 3 {
			close(done)
		}
	}, 4)
	stop := make(chan struct{})
	defer close(stop)
	go o.Run(stop)

	for i := 0; i < 3; i++ {
		o.Observe(domain.ActionEvent{ID: string(rune('a' + i))})
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("events not delivered")
	}
	for i, msg := range got {
		assert.Equal(t, string(rune('a'+i)), msg.(eventMsg).ev.(domain.ActionEvent).ID)
	}
}

func TestObserverNeverBlocksWithoutReader(t *testing.T) {
	o := NewObserver(func(tea.Msg) {}, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			o.Observe(domain.ActionEvent{ID: string(rune('a' + i%26))})
			o.Observe(domain.SnapshotEvent[domain.ProcessRecord]{State: domain.PollState[domain.ProcessRecord]{Kind: domain.PollerProcesses}})
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Observe blocked")
	}
	assert.LessOrEqual(t, len(o.drain()), 4)
}

func TestObserverCoalescesSnapshots(t *testing.T) {
	o := NewObserver(func(tea.Msg) {}, 8)
	first := &domain.Snapshot[domain.ProcessRecord]{Seq: 1}
	second := &domain.Snapshot[domain.ProcessRecord]{Seq: 2}
	o.Observe(domain.SnapshotEvent[domain.ProcessRecord]{State: domain.PollState[domain.ProcessRecord]{Kind: domain.PollerProcesses, Snapshot: first}})
	o.Observe(domain.ActionEvent{ID: "x"})
	o.Observe(domain.SnapshotEvent[domain.ProcessRecord]{State: domain.PollState[domain.ProcessRecord]{Kind: domain.PollerProcesses, Snapshot: second}})
	o.Observe(domain.SnapshotEvent[domain.BrowserTab]{State: domain.PollState[domain.BrowserTab]{Kind: domain.PollerTabs}})

	pending := o.drain()
	require.Len(t, pending, 3)
	assert.Equal(t, "x", pending[0].(domain.ActionEvent).ID)
	assert.Equal(t, uint64(2), pending[1].(domain.SnapshotEvent[domain.ProcessRecord]).State.Snapshot.Seq)
	assert.Equal(t, "snapshot.tabs", pending[2].EventName())
}

func TestObserverDoesNotBlockAfterStop(t *testing.T) {
	o := NewObserver(func(tea.Msg) {}, 1)
	stop := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		o.Run(stop)
		close(exited)
	}()
	close(stop)
	<-exited

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			o.Observe(domain.ActionEvent{ID: "late"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Observe blocked after Run exited")
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
