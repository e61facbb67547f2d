package poller

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// HealthCheck pairs a diagnostic command with the function that grades its output.
type HealthCheck struct {
	Category string
	Name     string
	Command  domain.Command
	Evaluate func(res *domain.CommandResult) domain.HealthCheckResult
}

type HealthParams struct {
	fx.In
	Runner    domain.CommandRunner
	Config    config.PollerConfig
	Health    config.HealthConfig
	Publisher domain.Publisher
	Metrics   *metrics.Collector `optional:"true"`
}

func NewHealthPoller(params HealthParams) domain.HealthPoller {
	return NewHealthPollerWithChecks(params, DefaultHealthChecks(runtime.GOOS, params.Health))
}

func NewHealthPollerWithChecks(params HealthParams, checks []HealthCheck) domain.HealthPoller {
	src := &healthSource{exec: params.Runner, checks: checks, concurrency: params.Health.Concurrency}
	if src.concurrency <= 0 {
		src.concurrency = 4
	}
	return New(domain.PollerHealth, src.fetch, Options{
		Timeout:   params.Config.Health.Timeout,
		Publisher: params.Publisher,
		Metrics:   params.Metrics,
	})
}

type healthSource struct {
	exec        domain.Executor
	checks      []HealthCheck
	concurrency int
}

// fetch runs every check and never fails: a check that cannot run is reported as a result.
func (s *healthSource) fetch(ctx context.Context) (*domain.Snapshot[domain.HealthCheckResult], error) {
	results := make([]domain.HealthCheckResult, len(s.checks))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, check := range s.checks {
		g.Go(func() error {
			results[i] = s.run(ctx, check)
			return nil
		})
	}
	_ = g.Wait()
	return &domain.Snapshot[domain.HealthCheckResult]{Items: results, TakenAt: time.Now()}, nil
}

func (s *healthSource) run(ctx context.Context, check HealthCheck) domain.HealthCheckResult {
	res, err := s.exec.Execute(ctx, check.Command)
	var result domain.HealthCheckResult
	switch {
	case err == nil:
		result = check.Evaluate(res)
	case errors.Is(err, domain.ErrExecution):
		result = domain.HealthCheckResult{Status: domain.HealthInfo, Message: "check unavailable on this system", Detail: err.Error()}
	default:
		result = domain.HealthCheckResult{Status: domain.HealthFail, Message: "check did not complete", Detail: err.Error()}
	}
	if result.Category == "" {
		result.Category = check.Category
	}
	if result.Name == "" {
		result.Name = check.Name
	}
	return result
}

// graded wraps a parser for checks whose command must exit zero.
func graded(parse func(stdout string) (domain.HealthStatus, string, error)) func(*domain.CommandResult) domain.HealthCheckResult {
	return func(res *domain.CommandResult) domain.HealthCheckResult {
		if !res.Success() {
			return domain.HealthCheckResult{
				Status:  domain.HealthFail,
				Message: "command failed",
				Detail:  strings.TrimSpace(res.Stderr),
			}
		}
		status, msg, err := parse(res.Stdout)
		if err != nil {
			return domain.HealthCheckResult{Status: domain.HealthInfo, Message: "unrecognised output", Detail: err.Error()}
		}
		return domain.HealthCheckResult{Status: status, Message: msg}
	}
}
