package app

import (
	"context"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/poller"
	"github.com/hostkeeper/keeper/keeper/presenter"
	"github.com/hostkeeper/keeper/keeper/rest"
	"github.com/hostkeeper/keeper/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.NopLogger,
		fx.Invoke(StartDispatcher),
		fx.Invoke(StartPollers),
		fx.Invoke(WatchConfig),
		fx.Invoke(StartRestApp),
	)
	return app, nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = "127.0.0.1:7420"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on %s", serverHost)
				if err := engine.Start(serverHost); err != nil {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}

// StartDispatcher runs the presentation loop for the lifetime of the app.
func StartDispatcher(lc fx.Lifecycle, dispatcher *presenter.Dispatcher) {
	stopCh := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go dispatcher.Run(stopCh)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopCh)
			return nil
		},
	})
}

type PollerParams struct {
	fx.In
	Config    config.PollerConfig
	Processes domain.ProcessPoller
	Tabs      domain.TabPoller
	Health    domain.HealthPoller
}

// StartPollers starts one refresh loop per poller. Loops share a stop channel closed on shutdown.
func StartPollers(lc fx.Lifecycle, params PollerParams) {
	stopCh := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go poller.Loop(stopCh, params.Processes, params.Config.Processes)
			go poller.Loop(stopCh, params.Tabs, params.Config.Tabs)
			go poller.Loop(stopCh, params.Health, params.Config.Health)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopCh)
			return nil
		},
	})
}

// WatchConfig swaps the classification policy whenever the config file changes. Pollers pick it
// up on their next refresh.
func WatchConfig(loader *config.Loader, policy *domain.PolicyStore) {
	log := logger.Logger(context.Background())
	if loader.ConfigFile() == "" {
		log.Debug().Msg("no config file in use, hot reload disabled")
		return
	}
	loader.Watch(func(cfg config.KeeperConfig) {
		policy.Set(NewPolicy(cfg))
		log.Info().Str("file", loader.ConfigFile()).Msg("config reloaded, policy updated")
	}, func(err error) {
		log.Warn().Err(err).Msg("config reload rejected, keeping previous policy")
	})
}
