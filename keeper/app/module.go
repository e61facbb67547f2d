package app

import (
	"runtime"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/auth"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/escalation"
	"github.com/hostkeeper/keeper/keeper/metrics"
	"github.com/hostkeeper/keeper/keeper/poller"
	"github.com/hostkeeper/keeper/keeper/presenter"
	"github.com/hostkeeper/keeper/keeper/rest"
	"github.com/hostkeeper/keeper/keeper/runner"
	"github.com/hostkeeper/keeper/keeper/script"
	"github.com/hostkeeper/keeper/keeper/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// NewPolicy converts the classification sections of the config into a domain policy.
func NewPolicy(cfg config.KeeperConfig) domain.Policy {
	p := domain.DefaultPolicy()
	if cfg.Processes.SuperUser != "" {
		p.Classifier.SuperUser = cfg.Processes.SuperUser
	}
	if cfg.Processes.ReservedUserPrefixes != nil {
		p.Classifier.ReservedUserPrefixes = cfg.Processes.ReservedUserPrefixes
	}
	if cfg.Processes.VendorNamespaces != nil {
		p.Classifier.VendorNamespaces = cfg.Processes.VendorNamespaces
	}
	if cfg.Processes.HeavyThresholdMB > 0 {
		p.HeavyProcessThreshold = cfg.Processes.HeavyThresholdMB
	}
	if cfg.Tabs.BaseMemoryMB > 0 {
		p.Tabs.BaseMemoryMB = cfg.Tabs.BaseMemoryMB
	}
	if cfg.Tabs.HeavyThresholdMB > 0 {
		p.Tabs.HeavyThresholdMB = cfg.Tabs.HeavyThresholdMB
	}
	p.Tabs.DomainWeights = cfg.Tabs.DomainWeights
	return p
}

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	loader, err := config.InitKeeperConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() *config.Loader {
			return loader
		}),
		fx.Provide(func(l *config.Loader) config.KeeperConfig {
			return l.Config()
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.ServerConfig {
			return cfg.Server
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.LoggingConfig {
			return cfg.Logging
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.RunnerConfig {
			return cfg.Runner
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.EscalationConfig {
			return cfg.Escalation
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.PollerConfig {
			return cfg.Poller
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.TabConfig {
			return cfg.Tabs
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.HealthConfig {
			return cfg.Health
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.CleanupConfig {
			return cfg.Cleanup
		}),
		fx.Provide(func(cfg config.KeeperConfig) config.PresenterConfig {
			return cfg.Presenter
		}),
		fx.Provide(func(cfg config.KeeperConfig) *domain.PolicyStore {
			return domain.NewPolicyStore(NewPolicy(cfg))
		}),
	), nil
}

// NewRegistry registers the engine collector next to the Go runtime collectors.
func NewRegistry(collector *metrics.Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// RunnerModule creates an Fx module that provides command execution, return domain.CommandRunner
func RunnerModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(metrics.NewCollector),
		fx.Provide(NewRegistry),
		fx.Provide(func(reg *prometheus.Registry) prometheus.Gatherer {
			return reg
		}),
		fx.Provide(runner.NewLocal),
		fx.Provide(func(l *runner.Local) domain.Executor {
			return l
		}),
		fx.Provide(func() escalation.Authorizer {
			return escalation.DefaultAuthorizer()
		}),
		fx.Provide(escalation.NewGate),
		fx.Provide(func(g *escalation.Gate) domain.Elevator {
			return g
		}),
		fx.Provide(runner.NewRunner),
		fx.Provide(script.NewBridge),
		fx.Provide(func(b *script.Bridge) domain.ScriptRunner {
			return b
		}),
	), nil
}

// provideAutomations returns no browsers where AppleScript is unavailable, the tab poller then
// publishes empty snapshots.
func provideAutomations(params script.AutomationParams) []domain.BrowserAutomation {
	if runtime.GOOS != "darwin" {
		return nil
	}
	return script.NewAutomations(params)
}

// PollerModule creates an Fx module that provides the dispatcher and the three pollers
func PollerModule(configName string, configPath string) (fx.Option, error) {
	runnerModule, err := RunnerModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		runnerModule,
		fx.Provide(presenter.NewDispatcher),
		fx.Provide(func(d *presenter.Dispatcher) domain.Publisher {
			return d
		}),
		fx.Provide(provideAutomations),
		fx.Provide(poller.NewProcessPoller),
		fx.Provide(poller.NewTabPoller),
		fx.Provide(poller.NewHealthPoller),
	), nil
}

// ServiceModule creates an Fx module that provides the action layer, return domain.ActionCoordinator
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	pollerModule, err := PollerModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		pollerModule,
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(presenter.NewView),
		fx.Provide(auth.NewIssuer),
		fx.Provide(rest.NewHandler),
	), nil
}
