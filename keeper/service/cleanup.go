package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/errs"
	"github.com/hostkeeper/keeper/keeper/parser"
	"github.com/hostkeeper/keeper/pkg/logger"
	pkgerrors "github.com/pkg/errors"
)

func (svc *Service) CleanupCategories() []domain.CleanupCategory {
	return svc.catalog.Categories()
}

// EstimateCleanup measures what RunCleanup would remove. Sizes are cached per path for the
// estimate TTL; command categories have nothing to measure.
func (svc *Service) EstimateCleanup(ctx context.Context, category string) (*domain.CleanupEstimate, error) {
	cat, err := svc.catalog.Lookup(category)
	if err != nil {
		return nil, err
	}
	estimate := &domain.CleanupEstimate{Category: cat.Name, Items: []domain.DiskUsage{}}
	if len(cat.Command) > 0 {
		return estimate, nil
	}
	items, err := svc.catalog.Expand(cat)
	if err != nil {
		return nil, err
	}
	sizes, err := svc.measure(ctx, items)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "estimate %s", cat.Name)
	}
	for _, item := range items {
		size, ok := sizes[item]
		if !ok {
			continue
		}
		estimate.Items = append(estimate.Items, domain.DiskUsage{Path: item, Bytes: size})
		estimate.TotalBytes += size
	}
	sort.SliceStable(estimate.Items, func(i, j int) bool {
		return estimate.Items[i].Bytes > estimate.Items[j].Bytes
	})
	return estimate, nil
}

// measure returns the size of every path it could read, running du only for uncached paths.
func (svc *Service) measure(ctx context.Context, paths []string) (map[string]int64, error) {
	sizes := make(map[string]int64, len(paths))
	var missing []string
	for _, p := range paths {
		if size, ok := svc.sizes.Get(p); ok {
			sizes[p] = size
			continue
		}
		missing = append(missing, p)
	}
	if len(missing) == 0 {
		return sizes, nil
	}

	args := append([]string{"-sk", "--"}, missing...)
	res, err := svc.Runner.Execute(ctx, domain.NewCommand("du", args...))
	if err != nil {
		return nil, err
	}
	// du exits non-zero when a path vanished or is unreadable but still reports the rest.
	usages, report := parser.ParseDiskUsage(res.Stdout)
	if len(usages) == 0 && !res.Success() {
		return nil, domain.RequireSuccess(res)
	}
	if report.Skipped > 0 {
		logger.Logger(ctx).Debug().Int("skipped", report.Skipped).Msg("du listing had malformed lines")
	}
	for _, u := range usages {
		sizes[u.Path] = u.Bytes
		svc.sizes.Set(u.Path, u.Bytes, cache.WithExpiration(svc.estimateTTL))
	}
	return sizes, nil
}

// RunCleanup removes every item of a path category one at a time, or runs the category's command.
func (svc *Service) RunCleanup(ctx context.Context, category string) (*domain.CleanupOutcome, error) {
	action := string(domain.ActionCleanup)
	cat, err := svc.catalog.Lookup(category)
	if err != nil {
		return nil, svc.finish(ctx, domain.ActionCleanup, category, "unknown category",
			errs.NewActionError(action, category, "unknown cleanup category", err))
	}
	release, err := svc.acquire("cleanup:" + cat.Name)
	if err != nil {
		return nil, svc.finish(ctx, domain.ActionCleanup, cat.Name, "cleanup already running",
			errs.NewActionError(action, cat.Name, "already in progress", err))
	}
	defer release()

	var outcome *domain.CleanupOutcome
	if len(cat.Command) > 0 {
		outcome, err = svc.runCleanupCommand(ctx, cat)
	} else {
		outcome, err = svc.removeItems(ctx, cat)
	}
	if outcome != nil {
		refreshAfter(ctx, svc.Health)
	}

	msg := "cleanup failed"
	if outcome != nil {
		msg = fmt.Sprintf("removed %d items, freed %d bytes", outcome.ItemsRemoved, outcome.BytesFreed)
	}
	if err != nil {
		err = errs.NewActionError(action, cat.Name, reason(err), err)
	}
	return outcome, svc.finish(ctx, domain.ActionCleanup, cat.Name, msg, err)
}

func (svc *Service) runCleanupCommand(ctx context.Context, cat domain.CleanupCategory) (*domain.CleanupOutcome, error) {
	cmd := domain.NewCommand(cat.Command[0], cat.Command[1:]...)
	if cat.Privileged {
		cmd = cmd.Elevated()
	}
	res, err := svc.Runner.Execute(ctx, cmd)
	if err == nil {
		err = domain.RequireSuccess(res)
	}
	if err != nil {
		return nil, err
	}
	return &domain.CleanupOutcome{Category: cat.Name}, nil
}

func (svc *Service) removeItems(ctx context.Context, cat domain.CleanupCategory) (*domain.CleanupOutcome, error) {
	items, err := svc.catalog.Expand(cat)
	if err != nil {
		return nil, err
	}
	sizes, err := svc.measure(ctx, items)
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("category", cat.Name).Msg("could not measure items, freed bytes will be reported as 0")
		sizes = map[string]int64{}
	}

	outcome := &domain.CleanupOutcome{Category: cat.Name}
	var failures []error
	if cat.Privileged {
		failures = svc.removeElevated(ctx, items, sizes, outcome)
	} else {
		failures = svc.removeEach(ctx, items, sizes, outcome)
	}

	switch {
	case len(failures) == 0:
		return outcome, nil
	case outcome.ItemsRemoved > 0:
		return outcome, fmt.Errorf("%w: %d of %d items failed: %w", domain.ErrPartialActionFailure, len(failures), len(items), errors.Join(failures...))
	default:
		return outcome, pkgerrors.WithMessage(errors.Join(failures...), strings.Join(failedTargets(outcome), ", "))
	}
}

// removeEach runs one rm per item so a failure is attributed to its item.
func (svc *Service) removeEach(ctx context.Context, items []string, sizes map[string]int64, outcome *domain.CleanupOutcome) []error {
	var failures []error
	for _, item := range items {
		res, err := svc.Runner.Execute(ctx, domain.NewCommand("rm", "-rf", "--", item))
		if err == nil {
			err = domain.RequireSuccess(res)
		}
		svc.sizes.Delete(item)
		if err != nil {
			if _, statErr := os.Lstat(item); os.IsNotExist(statErr) {
				continue
			}
			outcome.Failures = append(outcome.Failures, domain.CleanupFailure{Target: item, Reason: reason(err)})
			failures = append(failures, err)
			continue
		}
		outcome.ItemsRemoved++
		outcome.BytesFreed += sizes[item]
	}
	return failures
}

// removeElevated removes all items behind a single authorization prompt, then checks which ones
// are still on disk.
func (svc *Service) removeElevated(ctx context.Context, items []string, sizes map[string]int64, outcome *domain.CleanupOutcome) []error {
	if len(items) == 0 {
		return nil
	}
	args := append([]string{"-rf", "--"}, items...)
	res, err := svc.Runner.Execute(ctx, domain.NewCommand("rm", args...).Elevated())
	if err == nil {
		err = domain.RequireSuccess(res)
	}
	if err == nil {
		err = errors.New("still present after rm")
	}

	var failures []error
	for _, item := range items {
		svc.sizes.Delete(item)
		if _, statErr := os.Lstat(item); !os.IsNotExist(statErr) {
			outcome.Failures = append(outcome.Failures, domain.CleanupFailure{Target: item, Reason: reason(err)})
			failures = append(failures, fmt.Errorf("%s: %w", item, err))
			continue
		}
		outcome.ItemsRemoved++
		outcome.BytesFreed += sizes[item]
	}
	return failures
}

func failedTargets(outcome *domain.CleanupOutcome) []string {
	out := make([]string, 0, len(outcome.Failures))
	for _, f := range outcome.Failures {
		out = append(out, f.Target)
	}
	return out
}
