package service

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/errs"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"github.com/hostkeeper/keeper/pkg/logger"
	"github.com/hostkeeper/keeper/pkg/util"
	"github.com/rs/xid"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Runner    domain.CommandRunner
	Processes domain.ProcessPoller
	Tabs      domain.TabPoller
	Health    domain.HealthPoller
	Browsers  []domain.BrowserAutomation
	Cleanup   config.CleanupConfig
	Publisher domain.Publisher
	Metrics   *metrics.Collector `optional:"true"`
}

func NewService(params Params) (domain.ActionCoordinator, error) {
	catalog, err := NewCatalog(params.Cleanup.Categories, runtime.GOOS)
	if err != nil {
		return nil, err
	}
	ttl := params.Cleanup.EstimateTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	browsers := make(map[domain.Browser]domain.BrowserAutomation, len(params.Browsers))
	for _, b := range params.Browsers {
		browsers[b.Browser()] = b
	}
	return &Service{
		Runner:      params.Runner,
		Processes:   params.Processes,
		Tabs:        params.Tabs,
		Health:      params.Health,
		Publisher:   params.Publisher,
		browsers:    browsers,
		catalog:     catalog,
		metrics:     params.Metrics,
		sizes:       cache.New[string, int64](),
		estimateTTL: ttl,
		inflight:    util.NewGenericMap[string, struct{}](),
	}, nil
}

// Service carries out user actions. Commands of one action run one after another and the
// affected poller refreshes only after the last one returned.
type Service struct {
	Runner    domain.CommandRunner
	Processes domain.ProcessPoller
	Tabs      domain.TabPoller
	Health    domain.HealthPoller
	Publisher domain.Publisher

	browsers    map[domain.Browser]domain.BrowserAutomation
	catalog     *Catalog
	metrics     *metrics.Collector
	sizes       *cache.Cache[string, int64]
	estimateTTL time.Duration
	inflight    *util.GenericMap[string, struct{}]
}

// acquire claims every key or none of them.
func (svc *Service) acquire(keys ...string) (func(), error) {
	var held []string
	release := func() {
		for _, k := range held {
			svc.inflight.Delete(k)
		}
	}
	for _, k := range keys {
		if _, busy := svc.inflight.LoadOrStore(k, struct{}{}); busy {
			release()
			return nil, domain.ErrActionInProgress
		}
		held = append(held, k)
	}
	return release, nil
}

// finish publishes the action event and records its outcome. It returns err unchanged.
func (svc *Service) finish(ctx context.Context, kind domain.ActionKind, target, message string, err error) error {
	outcome := metrics.OutcomeSuccess
	log := logger.Logger(ctx).With().Str("action", string(kind)).Str("target", target).Logger()
	switch {
	case err == nil:
		log.Info().Msg(message)
	case errors.Is(err, domain.ErrPartialActionFailure):
		outcome = metrics.OutcomePartial
		log.Warn().Err(err).Msg(message)
	case errors.Is(err, domain.ErrActionInProgress):
		outcome = metrics.OutcomeBusy
		log.Info().Err(err).Msg(message)
	default:
		outcome = metrics.OutcomeFailure
		log.Warn().Err(err).Msg(message)
	}
	svc.metrics.ObserveAction(string(kind), outcome)
	if svc.Publisher != nil {
		svc.Publisher.Publish(domain.ActionEvent{
			ID:      xid.New().String(),
			Action:  kind,
			Target:  target,
			Message: message,
			Err:     err,
			At:      time.Now(),
		})
	}
	return err
}

func refreshAfter[T any](ctx context.Context, p domain.Poller[T]) {
	if p == nil {
		return
	}
	if _, err := p.Refresh(ctx); err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("poller", string(p.Kind())).Msg("refresh after action failed")
	}
}

// reason is the text shown to the user for err: the OS error output when there is one.
func reason(err error) string {
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && strings.TrimSpace(cmdErr.Stderr) != "" {
		return strings.TrimSpace(cmdErr.Stderr)
	}
	return err.Error()
}

func (svc *Service) Refresh(ctx context.Context, kind domain.PollerKind) error {
	var err error
	switch kind {
	case domain.PollerProcesses:
		_, err = svc.Processes.Refresh(ctx)
	case domain.PollerTabs:
		_, err = svc.Tabs.Refresh(ctx)
	case domain.PollerHealth:
		_, err = svc.Health.Refresh(ctx)
	default:
		return errs.NewActionError(string(domain.ActionRefresh), string(kind), "no such poller", domain.ErrUnknownPoller)
	}
	if err != nil {
		return svc.finish(ctx, domain.ActionRefresh, string(kind), "refresh failed",
			errs.NewActionError(string(domain.ActionRefresh), string(kind), reason(err), err))
	}
	return svc.finish(ctx, domain.ActionRefresh, string(kind), "refreshed", nil)
}
