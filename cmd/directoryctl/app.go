package main

import (
	"context"
	"log/slog"

	"directory/config"
	"directory/internal/domain/lifecycle"
	"directory/internal/errors"
	"directory/internal/infra/auth"
	logs "directory/internal/infra/log"
	"directory/internal/infra/metrics"
	"directory/internal/infra/notification"
	"directory/internal/infra/persistence/postgres"
	"directory/internal/infra/pubsub"
	"directory/internal/infra/storage"
	"directory/internal/usecase/impl"

	"go.uber.org/fx"
)

// runApp starts the dependency graph, hands the populated targets to run and
// stops the graph afterwards. Targets are pointers as accepted by fx.Populate.
func runApp(ctx context.Context, run func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			metrics.New,
			metrics.DirectoryMetrics,
			postgres.NewListingRepository,
			postgres.NewSettingsRepository,
			postgres.NewEntitlementRepository,
			postgres.NewTransactionManager,
			auth.NewJWTService,
			notification.NewNotificationService,
			pubsub.NewEventPublisher,
			storage.NewSnapshotStore,
			impl.NewEntitlementService,
			impl.NewSettingsService,
			impl.NewReconciliationService,
			impl.NewSitemapService,
		),
		fx.Populate(targets...),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := run(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Warn("Failed to stop cleanly", slog.Any("error", err))
	}

	return runErr
}
