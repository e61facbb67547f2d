package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/errs"
)

// CloseTabs closes tabs browser by browser, last position first so earlier indices stay valid.
// A tab whose index shifted is found again by URL; one no tab shows any more is not a failure.
func (svc *Service) CloseTabs(ctx context.Context, tabs []domain.BrowserTab) (int, error) {
	action := string(domain.ActionCloseTabs)
	if len(tabs) == 0 {
		return 0, nil
	}

	byBrowser := map[domain.Browser][]domain.BrowserTab{}
	var order []domain.Browser
	for _, tab := range tabs {
		if _, ok := byBrowser[tab.Browser]; !ok {
			order = append(order, tab.Browser)
		}
		byBrowser[tab.Browser] = append(byBrowser[tab.Browser], tab)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	target := fmt.Sprintf("%d tabs", len(tabs))

	keys := make([]string, 0, len(order))
	for _, b := range order {
		keys = append(keys, "close_tabs:"+string(b))
	}
	release, err := svc.acquire(keys...)
	if err != nil {
		return 0, svc.finish(ctx, domain.ActionCloseTabs, target, "closing tabs already running",
			errs.NewActionError(action, target, "already in progress", err))
	}
	defer release()

	closed := 0
	var failures []error
	for _, browser := range order {
		automation, ok := svc.browsers[browser]
		if !ok {
			failures = append(failures, fmt.Errorf("%s: %w", browser, domain.ErrNotFound))
			continue
		}
		batch := byBrowser[browser]
		sort.Slice(batch, func(i, j int) bool {
			if batch[i].WindowIndex != batch[j].WindowIndex {
				return batch[i].WindowIndex > batch[j].WindowIndex
			}
			return batch[i].TabIndex > batch[j].TabIndex
		})
		for _, tab := range batch {
			ok, err := automation.CloseTab(ctx, tab)
			if err != nil {
				failures = append(failures, fmt.Errorf("%s window %d tab %d: %w", browser, tab.WindowIndex, tab.TabIndex, err))
				continue
			}
			if ok {
				closed++
			}
		}
	}

	refreshAfter(ctx, svc.Tabs)

	msg := fmt.Sprintf("closed %d of %d tabs", closed, len(tabs))
	switch {
	case len(failures) == 0:
		return closed, svc.finish(ctx, domain.ActionCloseTabs, target, msg, nil)
	case closed > 0:
		cause := fmt.Errorf("%w: %w", domain.ErrPartialActionFailure, errors.Join(failures...))
		return closed, svc.finish(ctx, domain.ActionCloseTabs, target, msg,
			errs.NewActionError(action, target, msg, cause))
	default:
		cause := errors.Join(failures...)
		return 0, svc.finish(ctx, domain.ActionCloseTabs, target, msg,
			errs.NewActionError(action, target, reason(failures[0]), cause))
	}
}
