package parser

import (
	"strconv"
	"strings"

	"github.com/hostkeeper/keeper/keeper/domain"
)

// ParseTabList parses the tab enumeration emitted by the browser scripts: window index, tab index,
// title and URL separated by tabs. A title that itself contains a tab changes the column count and
// drops the line.
func ParseTabList(browser domain.Browser, text string) ([]domain.BrowserTab, domain.ParseReport) {
	var r reporter
	tabs := []domain.BrowserTab{}
	for i, raw := range lines(text) {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.line()
		cols := strings.Split(line, "\t")
		if len(cols) != 4 {
			r.skip(i+1, line, "expected 4 tab-separated columns")
			continue
		}
		window, err := strconv.Atoi(strings.TrimSpace(cols[0]))
		if err != nil || window < 1 {
			r.skip(i+1, line, "invalid window index")
			continue
		}
		tab, err := strconv.Atoi(strings.TrimSpace(cols[1]))
		if err != nil || tab < 1 {
			r.skip(i+1, line, "invalid tab index")
			continue
		}
		tabs = append(tabs, domain.BrowserTab{
			Browser:     browser,
			WindowIndex: window,
			TabIndex:    tab,
			Title:       cols[2],
			URL:         strings.TrimSpace(cols[3]),
		})
	}
	return tabs, r.report
}
