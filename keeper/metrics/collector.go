package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "keeper"

// Collector groups the engine's metrics. A nil *Collector records nothing.
type Collector struct {
	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	refreshes       *prometheus.CounterVec
	skippedLines    *prometheus.CounterVec
	snapshotItems   *prometheus.GaugeVec
	actions         *prometheus.CounterVec
	escalations     *prometheus.CounterVec
}

func NewCollector() *Collector {
	return &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "External commands executed, by program and outcome.",
		}, []string{"program", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Wall-clock duration of external commands.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"program"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poller_refreshes_total",
			Help:      "Poller refresh attempts, by poller and outcome.",
		}, []string{"poller", "outcome"}),
		skippedLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parser_skipped_lines_total",
			Help:      "Listing lines dropped by parsers.",
		}, []string{"poller"}),
		snapshotItems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_items",
			Help:      "Items in the latest published snapshot.",
		}, []string{"poller"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "User actions, by kind and outcome.",
		}, []string{"action", "outcome"}),
		escalations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalations_total",
			Help:      "Privilege escalation prompts, by outcome.",
		}, []string{"outcome"}),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.commands.Describe(ch)
	c.commandDuration.Describe(ch)
	c.refreshes.Describe(ch)
	c.skippedLines.Describe(ch)
	c.snapshotItems.Describe(ch)
	c.actions.Describe(ch)
	c.escalations.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.commands.Collect(ch)
	c.commandDuration.Collect(ch)
	c.refreshes.Collect(ch)
	c.skippedLines.Collect(ch)
	c.snapshotItems.Collect(ch)
	c.actions.Collect(ch)
	c.escalations.Collect(ch)
}

func (c *Collector) ObserveCommand(program, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.commands.WithLabelValues(program, outcome).Inc()
	c.commandDuration.WithLabelValues(program).Observe(d.Seconds())
}

func (c *Collector) ObserveRefresh(poller, outcome string, items, skipped int) {
	if c == nil {
		return
	}
	c.refreshes.WithLabelValues(poller, outcome).Inc()
	if outcome != OutcomeSuccess {
		return
	}
	c.snapshotItems.WithLabelValues(poller).Set(float64(items))
	if skipped > 0 {
		c.skippedLines.WithLabelValues(poller).Add(float64(skipped))
	}
}

func (c *Collector) ObserveAction(action, outcome string) {
	if c == nil {
		return
	}
	c.actions.WithLabelValues(action, outcome).Inc()
}

func (c *Collector) ObserveEscalation(outcome string) {
	if c == nil {
		return
	}
	c.escalations.WithLabelValues(outcome).Inc()
}

const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeTimeout  = "timeout"
	OutcomeDenied   = "denied"
	OutcomeBusy     = "busy"
	OutcomePartial  = "partial"
	OutcomeNonZero  = "nonzero"
	OutcomeCanceled = "canceled"
)
