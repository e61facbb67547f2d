package presenter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observerFunc func(domain.Event)

func (f observerFunc) Observe(ev domain.Event) { f(ev) }

func start(t *testing.T, cfg config.PresenterConfig) *Dispatcher {
	d := NewDispatcher(cfg)
	stop := make(chan struct{})
	go d.Run(stop)
	t.Cleanup(func() { close(stop) })
	return d
}

func TestPublishUpdatesBoardInOrder(t *testing.T) {
	d := start(t, config.PresenterConfig{})
	view := NewView(d)

	for i := 1; i <= 3; i++ {
		d.Publish(domain.SnapshotEvent[domain.ProcessRecord]{State: domain.PollState[domain.ProcessRecord]{
			Kind:     domain.PollerProcesses,
			Snapshot: &domain.Snapshot[domain.ProcessRecord]{Seq: uint64(i)},
		}})
	}
	state, err := view.Processes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), state.Snapshot.Seq)

	tabs, err := view.Tabs(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tabs.Snapshot)
	assert.Equal(t, domain.PollerTabs, tabs.Kind)
}

func TestObserversRunOnDispatcher(t *testing.T) {
	d := start(t, config.PresenterConfig{})
	var mu sync.Mutex
	var names []string
	d.Subscribe(observerFunc(func(ev domain.Event) {
		mu.Lock()
		defer mu.Unlock()
		names = append(names, ev.EventName())
	}))

	d.Publish(domain.ActionEvent{Action: domain.ActionTerminate})
	d.Publish(domain.SnapshotEvent[domain.HealthCheckResult]{State: domain.PollState[domain.HealthCheckResult]{Kind: domain.PollerHealth}})
	require.NoError(t, d.Call(context.Background(), func(*Board) {}))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"action.terminate", "snapshot.health"}, names)
}

func TestActionHistoryIsBounded(t *testing.T) {
	d := start(t, config.PresenterConfig{ActionHistory: 2})
	view := NewView(d)
	for i := 0; i < 5; i++ {
		d.Publish(domain.ActionEvent{ID: fmt.Sprint(i), Action: domain.ActionCleanup})
	}
	actions, err := view.Actions(context.Background())
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "4", actions[0].ID)
	assert.Equal(t, "3", actions[1].ID)
}

func TestPanickingTaskDoesNotStopDispatcher(t *testing.T) {
	d := start(t, config.PresenterConfig{})
	d.Post(func() { panic("boom") })
	assert.NoError(t, d.Call(context.Background(), func(*Board) {}))
}

func TestCallAfterStop(t *testing.T) {
	d := NewDispatcher(config.PresenterConfig{})
	stop := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		d.Run(stop)
		close(finished)
	}()
	close(stop)
	<-finished

	err := d.Call(context.Background(), func(*Board) {})
	assert.True(t, errors.Is(err, ErrDispatcherStopped))
	d.Publish(domain.ActionEvent{})
}

func TestCallHonoursContext(t *testing.T) {
	d := NewDispatcher(config.PresenterConfig{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewView(d).Health(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
