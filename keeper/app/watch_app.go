package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/presenter"
	"github.com/hostkeeper/keeper/keeper/tui"
	"github.com/hostkeeper/keeper/pkg/logger"
	"go.uber.org/fx"
)

// NewWatchApp runs the pollers behind the terminal UI. The app shuts itself down when the user
// quits the UI.
func NewWatchApp(configName string, configDirPath string) (*fx.App, error) {
	serviceModule, err := ServiceModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		serviceModule,
		fx.NopLogger,
		fx.Invoke(StartDispatcher),
		fx.Invoke(StartWatch),
		fx.Invoke(StartPollers),
		fx.Invoke(WatchConfig),
	)
	return app, nil
}

type WatchParams struct {
	fx.In
	Lifecycle   fx.Lifecycle
	Shutdowner  fx.Shutdowner
	Coordinator domain.ActionCoordinator
	Policy      *domain.PolicyStore
	Dispatcher  *presenter.Dispatcher
	Config      config.PresenterConfig
}

// StartWatch subscribes the terminal UI to the dispatcher before any poller starts, so the first
// snapshots reach the screen.
func StartWatch(params WatchParams) {
	model := tui.NewModel(params.Coordinator, params.Policy, params.Config.ActionHistory)
	program := tea.NewProgram(model, tea.WithAltScreen())
	observer := tui.NewObserver(program.Send, params.Config.QueueSize)
	params.Dispatcher.Subscribe(observer)

	stopCh := make(chan struct{})
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go observer.Run(stopCh)
			go func() {
				bgCtx := context.Background()
				if _, err := program.Run(); err != nil {
					logger.Logger(bgCtx).Error().Err(err).Msg("terminal ui exited with error")
				}
				if err := params.Shutdowner.Shutdown(); err != nil {
					logger.Logger(bgCtx).Warn().Err(err).Msg("shutdown after ui exit failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopCh)
			program.Quit()
			return nil
		},
	})
}
