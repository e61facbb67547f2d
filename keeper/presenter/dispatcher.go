// Package presenter owns presentation state. Everything that reads or writes it runs on one
// dispatcher goroutine; other goroutines hand work over through Publish, Post and Call.
package presenter

import (
	"context"
	"errors"
	"sync"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/pkg/logger"
)

var ErrDispatcherStopped = errors.New("dispatcher stopped")

type Dispatcher struct {
	queue     chan func()
	stopped   chan struct{}
	stopOnce  sync.Once
	board     *Board
	observers []domain.Observer
}

func NewDispatcher(cfg config.PresenterConfig) *Dispatcher {
	size := cfg.QueueSize
	if size <= 0 {
		size = 256
	}
	return &Dispatcher{
		queue:   make(chan func(), size),
		stopped: make(chan struct{}),
		board:   NewBoard(cfg.ActionHistory),
	}
}

// Run consumes the queue until stop is closed. Work still queued at that point is dropped.
func (d *Dispatcher) Run(stop <-chan struct{}) {
	defer d.stopOnce.Do(func() { close(d.stopped) })
	for {
		select {
		case fn := <-d.queue:
			d.run(fn)
		case <-stop:
			logger.Logger(context.Background()).Info().Msg("dispatcher stopped")
			return
		}
	}
}

func (d *Dispatcher) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logger(context.Background()).Error().Interface("panic", r).Msg("dispatcher task panicked")
		}
	}()
	fn()
}

// Post enqueues fn. It reports false when the dispatcher has stopped.
func (d *Dispatcher) Post(fn func()) bool {
	select {
	case <-d.stopped:
		return false
	default:
	}
	select {
	case d.queue <- fn:
		return true
	case <-d.stopped:
		return false
	}
}

// Publish applies ev to the board and then fans it out to observers, in publish order.
func (d *Dispatcher) Publish(ev domain.Event) {
	ok := d.Post(func() {
		d.board.Apply(ev)
		for _, o := range d.observers {
			o.Observe(ev)
		}
	})
	if !ok {
		logger.Logger(context.Background()).Debug().Str("event", ev.EventName()).Msg("dropped event, dispatcher stopped")
	}
}

// Subscribe registers o for every event published after the registration is processed.
func (d *Dispatcher) Subscribe(o domain.Observer) {
	d.Post(func() {
		d.observers = append(d.observers, o)
	})
}

// Call runs fn on the dispatcher and waits for it. If ctx ends first fn may still run later.
func (d *Dispatcher) Call(ctx context.Context, fn func(b *Board)) error {
	done := make(chan struct{})
	queued := d.Post(func() {
		defer close(done)
		fn(d.board)
	})
	if !queued {
		return ErrDispatcherStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrDispatcherStopped
		}
	}
}
