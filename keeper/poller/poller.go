package poller

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"github.com/hostkeeper/keeper/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// Fetcher produces one complete snapshot or an error. It must not publish anything itself.
type Fetcher[T any] func(ctx context.Context) (*domain.Snapshot[T], error)

type Options struct {
	Timeout   time.Duration
	Publisher domain.Publisher
	Metrics   *metrics.Collector
}

// Poller owns the state of one data source. At most one refresh runs at a time; a Refresh call
// that arrives while one is in flight waits for and returns that refresh's result.
type Poller[T any] struct {
	kind       domain.PollerKind
	fetch      Fetcher[T]
	timeout    time.Duration
	publisher  domain.Publisher
	metrics    *metrics.Collector
	group      singleflight.Group
	refreshing atomic.Bool
	state      atomic.Pointer[domain.PollState[T]]
	seq        atomic.Uint64
}

func New[T any](kind domain.PollerKind, fetch Fetcher[T], opts Options) *Poller[T] {
	p := &Poller[T]{
		kind:      kind,
		fetch:     fetch,
		timeout:   opts.Timeout,
		publisher: opts.Publisher,
		metrics:   opts.Metrics,
	}
	p.state.Store(&domain.PollState[T]{Kind: kind})
	return p
}

func (p *Poller[T]) Kind() domain.PollerKind {
	return p.kind
}

// Refresh runs the fetch pipeline, or joins the one already running. Cancelling ctx only stops
// this caller from waiting; the shared pipeline still completes and publishes.
func (p *Poller[T]) Refresh(ctx context.Context) (*domain.Snapshot[T], error) {
	ch := p.group.DoChan(string(p.kind), func() (any, error) {
		return p.refresh(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Snapshot[T]), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Poller[T]) LastSnapshot() *domain.Snapshot[T] {
	return p.state.Load().Snapshot
}

func (p *Poller[T]) IsRefreshing() bool {
	return p.refreshing.Load()
}

func (p *Poller[T]) State() domain.PollState[T] {
	s := *p.state.Load()
	s.Refreshing = p.refreshing.Load()
	return s
}

// refresh only ever runs inside the singleflight group, so state writes are serialized.
func (p *Poller[T]) refresh(ctx context.Context) (*domain.Snapshot[T], error) {
	log := logger.Logger(ctx).With().Str("poller", string(p.kind)).Logger()
	p.refreshing.Store(true)
	p.publish(p.State())

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	snap, err := p.fetch(ctx)

	next := *p.state.Load()
	next.Refreshing = false
	if err != nil {
		next.LastError = err
		next.FailedAt = time.Now()
		p.state.Store(&next)
		p.refreshing.Store(false)
		p.metrics.ObserveRefresh(string(p.kind), metrics.OutcomeFailure, 0, 0)
		log.Warn().Err(err).Bool("stale", next.Stale()).Msg("refresh failed, keeping last snapshot")
		p.publish(next)
		return nil, err
	}

	if snap == nil {
		snap = &domain.Snapshot[T]{}
	}
	snap.Seq = p.seq.Add(1)
	if snap.TakenAt.IsZero() {
		snap.TakenAt = time.Now()
	}
	next.Snapshot = snap
	next.LastError = nil
	next.FailedAt = time.Time{}
	p.state.Store(&next)
	p.refreshing.Store(false)
	p.metrics.ObserveRefresh(string(p.kind), metrics.OutcomeSuccess, len(snap.Items), snap.Skipped)
	if snap.Skipped > 0 {
		log.Debug().Int("skipped", snap.Skipped).Interface("samples", snap.ParseErrors).Msg("listing had malformed lines")
	}
	p.publish(next)
	return snap, nil
}

func (p *Poller[T]) publish(state domain.PollState[T]) {
	if p.publisher == nil {
		return
	}
	p.publisher.Publish(domain.SnapshotEvent[T]{State: state})
}
