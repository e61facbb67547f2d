package poller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"github.com/hostkeeper/keeper/pkg/util"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type TabParams struct {
	fx.In
	Browsers  []domain.BrowserAutomation
	Policy    *domain.PolicyStore
	Config    config.PollerConfig
	Publisher domain.Publisher
	Metrics   *metrics.Collector `optional:"true"`
}

func NewTabPoller(params TabParams) domain.TabPoller {
	src := &tabSource{browsers: params.Browsers, policy: params.Policy}
	return New(domain.PollerTabs, src.fetch, Options{
		Timeout:   params.Config.Tabs.Timeout,
		Publisher: params.Publisher,
		Metrics:   params.Metrics,
	})
}

type tabSource struct {
	browsers []domain.BrowserAutomation
	policy   *domain.PolicyStore
}

type browserListing struct {
	tabs   []domain.BrowserTab
	report domain.ParseReport
	err    error
}

// fetch queries all browsers at once. A browser that fails becomes a warning on the snapshot;
// the refresh fails only when every browser failed.
func (s *tabSource) fetch(ctx context.Context) (*domain.Snapshot[domain.BrowserTab], error) {
	listings := make([]browserListing, len(s.browsers))
	var g errgroup.Group
	for i, b := range s.browsers {
		g.Go(func() error {
			tabs, report, err := b.ListTabs(ctx)
			listings[i] = browserListing{tabs: tabs, report: report, err: err}
			return nil
		})
	}
	_ = g.Wait()

	estimator := s.policy.Get().Tabs
	snap := &domain.Snapshot[domain.BrowserTab]{Items: []domain.BrowserTab{}}
	var errs []error
	var keys []string
	for i, listing := range listings {
		browser := s.browsers[i].Browser()
		if listing.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", browser, listing.err))
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("%s: %v", browser, listing.err))
			continue
		}
		snap.Skipped += listing.report.Skipped
		snap.ParseErrors = append(snap.ParseErrors, listing.report.Errors...)
		for _, tab := range listing.tabs {
			tab = estimator.Apply(tab)
			snap.Items = append(snap.Items, tab)
			keys = append(keys, string(tab.Browser)+"|"+strconv.Itoa(tab.WindowIndex)+"|"+strconv.Itoa(tab.TabIndex)+"|"+tab.URL)
		}
	}
	if len(s.browsers) > 0 && len(errs) == len(s.browsers) {
		return nil, errors.Join(errs...)
	}
	snap.TakenAt = time.Now()
	snap.Fingerprint = util.FingerprintLines(keys)
	return snap, nil
}
