package presenter

import (
	"context"

	"github.com/hostkeeper/keeper/keeper/domain"
)

// View reads the board from any goroutine by running the read on the dispatcher.
type View struct {
	d *Dispatcher
}

func NewView(d *Dispatcher) domain.StateView {
	return &View{d: d}
}

// read copies a value off the board. On error the copy is abandoned, not read.
func read[T any](ctx context.Context, d *Dispatcher, get func(b *Board) T) (T, error) {
	out := make(chan T, 1)
	if err := d.Call(ctx, func(b *Board) { out <- get(b) }); err != nil {
		var zero T
		return zero, err
	}
	return <-out, nil
}

func (v *View) Processes(ctx context.Context) (domain.PollState[domain.ProcessRecord], error) {
	return read(ctx, v.d, func(b *Board) domain.PollState[domain.ProcessRecord] { return b.Processes })
}

func (v *View) Tabs(ctx context.Context) (domain.PollState[domain.BrowserTab], error) {
	return read(ctx, v.d, func(b *Board) domain.PollState[domain.BrowserTab] { return b.Tabs })
}

func (v *View) Health(ctx context.Context) (domain.PollState[domain.HealthCheckResult], error) {
	return read(ctx, v.d, func(b *Board) domain.PollState[domain.HealthCheckResult] { return b.Health })
}

func (v *View) Actions(ctx context.Context) ([]domain.ActionEvent, error) {
	return read(ctx, v.d, func(b *Board) []domain.ActionEvent {
		out := make([]domain.ActionEvent, len(b.Actions))
		copy(out, b.Actions)
		return out
	})
}
