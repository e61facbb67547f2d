package app

import (
	"context"

	"github.com/hostkeeper/keeper/keeper/domain"
	"go.uber.org/fx"
)

// RunHealthCheck starts just the poller layer, runs one health refresh and stops again.
func RunHealthCheck(ctx context.Context, configName string, configDirPath string) (*domain.Snapshot[domain.HealthCheckResult], error) {
	pollerModule, err := PollerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	var health domain.HealthPoller
	app := fx.New(
		pollerModule,
		fx.NopLogger,
		fx.Invoke(StartDispatcher),
		fx.Populate(&health),
	)
	if err := app.Start(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	return health.Refresh(ctx)
}
