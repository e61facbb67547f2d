package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hostkeeper/keeper/keeper/domain"
)

type eventMsg struct {
	ev domain.Event
}

// Observer forwards dispatcher events to a bubbletea program in publish order. Observe never
// blocks: a pending snapshot event is replaced by a newer one from the same poller, and once
// limit events are pending the oldest action event is dropped.
type Observer struct {
	mu      sync.Mutex
	pending []domain.Event
	limit   int
	wake    chan struct{}
	send    func(tea.Msg)
}

func NewObserver(send func(tea.Msg), limit int) *Observer {
	if limit <= 0 {
		limit = 256
	}
	return &Observer{limit: limit, wake: make(chan struct{}, 1), send: send}
}

func (o *Observer) Observe(ev domain.Event) {
	o.mu.Lock()
	o.enqueue(ev)
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
}

func (o *Observer) enqueue(ev domain.Event) {
	if _, isAction := ev.(domain.ActionEvent); !isAction {
		for i, p := range o.pending {
			if p.EventName() == ev.EventName() {
				o.pending = append(o.pending[:i], o.pending[i+1:]...)
				break
			}
		}
	}
	o.pending = append(o.pending, ev)
	if len(o.pending) <= o.limit {
		return
	}
	for i, p := range o.pending {
		if _, isAction := p.(domain.ActionEvent); isAction {
			o.pending = append(o.pending[:i], o.pending[i+1:]...)
			return
		}
	}
	o.pending = o.pending[1:]
}

func (o *Observer) drain() []domain.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	batch := o.pending
	o.pending = nil
	return batch
}

// Run delivers pending events until stop is closed.
func (o *Observer) Run(stop <-chan struct{}) {
	for {
		select {
		case <-o.wake:
			for _, ev := range o.drain() {
				select {
				case <-stop:
					return
				default:
				}
				o.send(eventMsg{ev: ev})
			}
		case <-stop:
			return
		}
	}
}
