package poller

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"github.com/hostkeeper/keeper/keeper/parser"
	"github.com/hostkeeper/keeper/pkg/util"
	"go.uber.org/fx"
)

type ProcessParams struct {
	fx.In
	Runner    domain.CommandRunner
	Policy    *domain.PolicyStore
	Config    config.PollerConfig
	Publisher domain.Publisher
	Metrics   *metrics.Collector `optional:"true"`
}

func NewProcessPoller(params ProcessParams) domain.ProcessPoller {
	src := &processSource{exec: params.Runner, policy: params.Policy}
	return New(domain.PollerProcesses, src.fetch, Options{
		Timeout:   params.Config.Processes.Timeout,
		Publisher: params.Publisher,
		Metrics:   params.Metrics,
	})
}

type processSource struct {
	exec   domain.Executor
	policy *domain.PolicyStore
}

func (s *processSource) fetch(ctx context.Context) (*domain.Snapshot[domain.ProcessRecord], error) {
	res, err := s.exec.Execute(ctx, domain.NewCommand("ps", parser.ProcessListArgs...).WithEnv(parser.ProcessListEnv...))
	if err != nil {
		return nil, err
	}
	if err := domain.RequireSuccess(res); err != nil {
		return nil, err
	}

	records, report := parser.ParseProcessList(res.Stdout, s.policy.Get().Classifier)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MemoryMB > records[j].MemoryMB
	})
	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, strconv.Itoa(r.PID)+":"+r.Command)
	}
	return &domain.Snapshot[domain.ProcessRecord]{
		Items:       records,
		TakenAt:     time.Now(),
		Skipped:     report.Skipped,
		ParseErrors: report.Errors,
		Fingerprint: util.FingerprintLines(keys),
	}, nil
}
