package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/MaulikI8/imperialwatch/config"
	"github.com/MaulikI8/imperialwatch/internal/delivery"
	"github.com/MaulikI8/imperialwatch/internal/delivery/http"
	"github.com/MaulikI8/imperialwatch/internal/delivery/http/middleware"
	"github.com/MaulikI8/imperialwatch/internal/delivery/http/router/handler"
	"github.com/MaulikI8/imperialwatch/internal/infra/auth"
	logs "github.com/MaulikI8/imperialwatch/internal/infra/log"
	"github.com/MaulikI8/imperialwatch/internal/infra/payment"
	"github.com/MaulikI8/imperialwatch/internal/infra/persistence/postgres"
	"github.com/MaulikI8/imperialwatch/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewWatchRepository,
			postgres.NewCustomerRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			payment.NewStripeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewAccountService,
			impl.NewCheckoutService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewAccountHandler,
			handler.NewCheckoutHandler,
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
