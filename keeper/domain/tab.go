package domain

import (
	"net/url"
	"strings"
)

const DefaultHeavyTabThresholdMB = 200

type Browser string

// BrowserFamily selects the scripting dialect a browser understands.
type BrowserFamily string

const (
	FamilySafari   BrowserFamily = "safari"
	FamilyChromium BrowserFamily = "chromium"
)

// Family maps a browser application name to its scripting dialect.
func (b Browser) Family() BrowserFamily {
	if strings.HasPrefix(string(b), "Safari") {
		return FamilySafari
	}
	return FamilyChromium
}

// BrowserTab positions are only meaningful inside the snapshot that produced them.
type BrowserTab struct {
	Browser     Browser `json:"browser"`
	WindowIndex int     `json:"window_index"`
	TabIndex    int     `json:"tab_index"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	MemoryMB    float64 `json:"memory_mb"`
	Heavy       bool    `json:"heavy"`
}

// SameContent compares tabs by what they show rather than where they sit.
func (t BrowserTab) SameContent(o BrowserTab) bool {
	return t.Browser == o.Browser && t.URL == o.URL && t.Title == o.Title
}

func (t BrowserTab) Host() string {
	u, err := url.Parse(t.URL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// TabEstimator guesses tab memory from the URL host. Browsers do not expose per-tab memory
// through their scripting interfaces.
type TabEstimator struct {
	BaseMemoryMB     float64
	HeavyThresholdMB float64
	DomainWeights    map[string]float64
}

func DefaultTabEstimator() TabEstimator {
	return TabEstimator{BaseMemoryMB: 80, HeavyThresholdMB: DefaultHeavyTabThresholdMB}
}

// Apply fills MemoryMB and Heavy. A host matches a weight when it equals the key or ends with
// "."+key; the longest matching key wins.
func (e TabEstimator) Apply(tab BrowserTab) BrowserTab {
	host := tab.Host()
	estimate := e.BaseMemoryMB
	matched := ""
	for domain, weight := range e.DomainWeights {
		if host != domain && !strings.HasSuffix(host, "."+domain) {
			continue
		}
		if len(domain) > len(matched) {
			matched = domain
			estimate = weight
		}
	}
	tab.MemoryMB = estimate
	tab.Heavy = estimate > e.HeavyThresholdMB
	return tab
}
