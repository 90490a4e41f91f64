package main

import (
	"context"
	"log/slog"
	"os"

	"expitrack/config"
	"expitrack/internal/delivery"
	"expitrack/internal/delivery/http"
	"expitrack/internal/delivery/http/middleware"
	"expitrack/internal/delivery/http/router/handler"
	"expitrack/internal/delivery/worker"
	"expitrack/internal/infra/auth"
	logs "expitrack/internal/infra/log"
	"expitrack/internal/infra/persistence/postgres"
	"expitrack/internal/infra/push"
	"expitrack/internal/infra/queue"
	"expitrack/internal/infra/storage"
	"expitrack/internal/usecase/impl"

	"go.uber.org/fx"
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
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
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
		queue.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewItemRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewPreferenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			queue.NewRedisJobQueue,
			storage.NewBlobStorage,
			push.NewFirebaseService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewItemService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewAdminService,
			impl.NewExpiryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewItemHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
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
			fx.Annotate(
				worker.NewPoller,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewReconciler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
