package script

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/parser"
	"github.com/hostkeeper/keeper/pkg/util"
	"go.uber.org/fx"
)

const (
	closeResultClosed  = "closed"
	closeResultMissing = "missing"
)

// listTabsTemplate enumerates tabs as "window<TAB>tab<TAB>title<TAB>url" lines. The separators are
// built from character ids because "tab" names a class inside browser tell blocks.
const listTabsTemplate = `set sep to character id 9
set nl to character id 10
if application %[1]s is not running then return ""
set out to ""
tell application %[1]s
	set wi to 0
	repeat with w in windows
		set wi to wi + 1
		set ti to 0
		repeat with t in tabs of w
			set ti to ti + 1
			set out to out & wi & sep & ti & sep & (%[2]s of t as text) & sep & (URL of t as text) & nl
		end repeat
	end repeat
end tell
return out`

// closeTabTemplate closes the tab showing argv's URL. It tries the recorded position first, then
// lower positions in the same window (tabs closed in between shift indices down), then every
// window. Batches close in descending position order, so a tab closed earlier in the batch is
// already gone and cannot be matched twice.
const closeTabTemplate = `on run argv
	set wantedWindow to (item 1 of argv) as integer
	set wantedTab to (item 2 of argv) as integer
	set wantedURL to item 3 of argv
	if application %[1]s is not running then return "missing"
	tell application %[1]s
		set windowCount to count of windows
		if windowCount >= wantedWindow then
			set w to window wantedWindow
			set ti to count of tabs of w
			if ti > wantedTab then set ti to wantedTab
			repeat while ti >= 1
				if (URL of tab ti of w as text) is wantedURL then
					close tab ti of w
					return "closed"
				end if
				set ti to ti - 1
			end repeat
		end if
		repeat with wi from 1 to windowCount
			set w to window wi
			repeat with ti from 1 to (count of tabs of w)
				if (URL of tab ti of w as text) is wantedURL then
					close tab ti of w
					return "closed"
				end if
			end repeat
		end repeat
	end tell
	return "missing"
end run`

// Safari drives Safari through its scripting dictionary, where a tab's title is its "name".
type Safari struct {
	browser domain.Browser
	scripts domain.ScriptRunner
}

func NewSafari(browser domain.Browser, scripts domain.ScriptRunner) *Safari {
	return &Safari{browser: browser, scripts: scripts}
}

func (s *Safari) Browser() domain.Browser {
	return s.browser
}

func (s *Safari) ListTabs(ctx context.Context) ([]domain.BrowserTab, domain.ParseReport, error) {
	return listTabs(ctx, s.scripts, s.browser, "name")
}

func (s *Safari) CloseTab(ctx context.Context, tab domain.BrowserTab) (bool, error) {
	return closeTab(ctx, s.scripts, s.browser, tab)
}

// Chromium covers Chrome and the browsers sharing its dictionary (Brave, Edge, Arc, Vivaldi).
type Chromium struct {
	browser domain.Browser
	scripts domain.ScriptRunner
}

func NewChromium(browser domain.Browser, scripts domain.ScriptRunner) *Chromium {
	return &Chromium{browser: browser, scripts: scripts}
}

func (c *Chromium) Browser() domain.Browser {
	return c.browser
}

func (c *Chromium) ListTabs(ctx context.Context) ([]domain.BrowserTab, domain.ParseReport, error) {
	return listTabs(ctx, c.scripts, c.browser, "title")
}

func (c *Chromium) CloseTab(ctx context.Context, tab domain.BrowserTab) (bool, error) {
	return closeTab(ctx, c.scripts, c.browser, tab)
}

func listTabs(ctx context.Context, scripts domain.ScriptRunner, browser domain.Browser, titleProperty string) ([]domain.BrowserTab, domain.ParseReport, error) {
	src := fmt.Sprintf(listTabsTemplate, util.AppleScriptString(string(browser)), titleProperty)
	res, err := scripts.RunScript(ctx, domain.ScriptRequest{Application: string(browser), Source: src})
	if err != nil {
		return nil, domain.ParseReport{}, err
	}
	if err := domain.RequireSuccess(res); err != nil {
		return nil, domain.ParseReport{}, err
	}
	tabs, report := parser.ParseTabList(browser, res.Stdout)
	return tabs, report, nil
}

func closeTab(ctx context.Context, scripts domain.ScriptRunner, browser domain.Browser, tab domain.BrowserTab) (bool, error) {
	src := fmt.Sprintf(closeTabTemplate, util.AppleScriptString(string(browser)))
	res, err := scripts.RunScript(ctx, domain.ScriptRequest{
		Application: string(browser),
		Source:      src,
		Args:        []string{strconv.Itoa(tab.WindowIndex), strconv.Itoa(tab.TabIndex), tab.URL},
	})
	if err != nil {
		return false, err
	}
	if err := domain.RequireSuccess(res); err != nil {
		return false, err
	}
	switch out := strings.TrimSpace(res.Stdout); out {
	case closeResultClosed:
		return true, nil
	case closeResultMissing:
		return false, nil
	default:
		return false, &domain.CommandError{
			Kind:    domain.ErrExecution,
			Command: "close tab in " + string(browser),
			Err:     fmt.Errorf("unexpected script output %q", out),
		}
	}
}

type AutomationParams struct {
	fx.In
	Config  config.TabConfig
	Scripts domain.ScriptRunner
}

// NewAutomations builds one automation per configured browser.
func NewAutomations(params AutomationParams) []domain.BrowserAutomation {
	automations := make([]domain.BrowserAutomation, 0, len(params.Config.Browsers))
	for _, name := range params.Config.Browsers {
		browser := domain.Browser(name)
		if browser.Family() == domain.FamilySafari {
			automations = append(automations, NewSafari(browser, params.Scripts))
			continue
		}
		automations = append(automations, NewChromium(browser, params.Scripts))
	}
	return automations
}
