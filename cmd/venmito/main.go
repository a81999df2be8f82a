package main

import (
	"context"
	"log/slog"
	"os"

	"venmito/config"
	"venmito/internal/delivery"
	"venmito/internal/delivery/http"
	"venmito/internal/delivery/http/router/handler"
	"venmito/internal/domain/service"
	logs "venmito/internal/infra/log"
	"venmito/internal/infra/metrics"
	"venmito/internal/infra/persistence/migrations"
	"venmito/internal/infra/persistence/postgres"
	"venmito/internal/infra/pubsub"
	"venmito/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			runMigrations,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPersonRepository,
			postgres.NewPromotionRepository,
			postgres.NewTransferRepository,
			postgres.NewTransactionRepository,
			postgres.NewItemRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			metrics.NewRegistry,
			newIngestionMetrics,
		),
	)
}

// newIngestionMetrics exposes the registry through the port the engine records into.
func newIngestionMetrics(reg *metrics.Registry) service.IngestionMetrics {
	return reg
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBatchRunner,
			impl.NewPeopleService,
			impl.NewPromotionService,
			impl.NewTransferService,
			impl.NewTransactionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPeopleHandler,
			handler.NewPromotionHandler,
			handler.NewTransferHandler,
			handler.NewTransactionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// runMigrations applies the embedded schema on start when migration.autoMigrate is set.
// It is registered after postgres.New, so the connection has been pinged by then.
func runMigrations(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) {
	if cfg.Migration == nil || !cfg.Migration.AutoMigrate {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}

			runner, err := migrations.NewRunner(ctx, sqlDB, logger)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := runner.Close(); closeErr != nil {
					logger.Warn("Failed to close migration runner", slog.Any("error", closeErr))
				}
			}()

			return runner.Up()
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
