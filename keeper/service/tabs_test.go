package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// browserWindows keeps tab URLs per window and answers the close script the way the browser
// would: positions shift down when a tab is closed.
type browserWindows struct {
	mu      sync.Mutex
	windows [][]string
}

func (b *browserWindows) RunScript(ctx context.Context, req domain.ScriptRequest) (*domain.CommandResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !strings.Contains(req.Source, "on run argv") || len(req.Args) != 3 {
		return nil, fmt.Errorf("unexpected script request %+v", req.Args)
	}
	window, _ := strconv.Atoi(req.Args[0])
	tab, _ := strconv.Atoi(req.Args[1])
	url := req.Args[2]

	if window >= 1 && window <= len(b.windows) {
		w := b.windows[window-1]
		for ti := min(tab, len(w)); ti >= 1; ti-- {
			if w[ti-1] == url {
				b.close(window-1, ti-1)
				return &domain.CommandResult{Stdout: "closed\n"}, nil
			}
		}
	}
	for wi, w := range b.windows {
		for ti, u := range w {
			if u == url {
				b.close(wi, ti)
				return &domain.CommandResult{Stdout: "closed\n"}, nil
			}
		}
	}
	return &domain.CommandResult{Stdout: "missing\n"}, nil
}

func (b *browserWindows) close(wi, ti int) {
	w := b.windows[wi]
	b.windows[wi] = append(w[:ti:ti], w[ti+1:]...)
}

// closeByHand removes the first tab showing url, as a user would.
func (b *browserWindows) closeByHand(url string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for wi, w := range b.windows {
		for ti, u := range w {
			if u == url {
				b.close(wi, ti)
				return
			}
		}
	}
}

func (b *browserWindows) remaining() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]string, len(b.windows))
	for i, w := range b.windows {
		out[i] = append([]string{}, w...)
	}
	return out
}

func safariTab(window, tab int, url string) domain.BrowserTab {
	return domain.BrowserTab{Browser: "Safari", WindowIndex: window, TabIndex: tab, URL: url}
}

func TestCloseTabsAfterEarlierTabClosedByHand(t *testing.T) {
	browser := &browserWindows{windows: [][]string{{"https://a.example", "https://b.example", "https://c.example", "https://d.example"}}}
	f := newFixture(t, config.CleanupConfig{}, script.NewSafari("Safari", browser))

	requested := []domain.BrowserTab{
		safariTab(1, 2, "https://b.example"),
		safariTab(1, 3, "https://c.example"),
		safariTab(1, 4, "https://d.example"),
	}
	browser.closeByHand("https://b.example")

	closed, err := f.svc.CloseTabs(context.Background(), requested)
	require.NoError(t, err)
	assert.Equal(t, 2, closed)
	assert.Equal(t, [][]string{{"https://a.example"}}, browser.remaining())
	assert.False(t, f.events.last().Failed())
}

func TestCloseTabsDuplicateURLsClosesOnlyRequested(t *testing.T) {
	browser := &browserWindows{windows: [][]string{{"https://a.example", "https://x.example", "https://b.example", "https://x.example", "https://x.example"}}}
	f := newFixture(t, config.CleanupConfig{}, script.NewSafari("Safari", browser))

	requested := []domain.BrowserTab{
		safariTab(1, 2, "https://x.example"),
		safariTab(1, 4, "https://x.example"),
	}
	browser.closeByHand("https://a.example")

	closed, err := f.svc.CloseTabs(context.Background(), requested)
	require.NoError(t, err)
	assert.Equal(t, 2, closed)
	assert.Equal(t, [][]string{{"https://b.example", "https://x.example"}}, browser.remaining())
}

func TestCloseTabsFindsTabInAnotherWindow(t *testing.T) {
	browser := &browserWindows{windows: [][]string{
		{"https://a.example"},
		{"https://b.example", "https://c.example"},
	}}
	f := newFixture(t, config.CleanupConfig{}, script.NewSafari("Safari", browser))

	requested := []domain.BrowserTab{safariTab(2, 2, "https://c.example")}
	browser.mu.Lock()
	browser.windows = browser.windows[1:]
	browser.mu.Unlock()

	closed, err := f.svc.CloseTabs(context.Background(), requested)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	assert.Equal(t, [][]string{{"https://b.example"}}, browser.remaining())
}
