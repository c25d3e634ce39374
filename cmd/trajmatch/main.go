package main

import (
	"context"
	"log/slog"
	"os"

	"trajmatch/config"
	"trajmatch/internal/delivery"
	"trajmatch/internal/delivery/api"
	"trajmatch/internal/delivery/api/router/handler"
	"trajmatch/internal/domain/lifecycle"
	"trajmatch/internal/domain/trajectory"
	logs "trajmatch/internal/infra/log"
	"trajmatch/internal/infra/matcher"
	"trajmatch/internal/infra/persistence"
	"trajmatch/internal/infra/pubsub"
	"trajmatch/internal/infra/qrcode"
	"trajmatch/internal/usecase"
	"trajmatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			stopSimulationOnShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		trajectory.NewStore,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			matcher.NewMatchingClient,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSimulationService,
			impl.NewTrajectoryService,
			impl.NewRouteService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTrajectoryHandler,
			handler.NewSimulationHandler,
			handler.NewRouteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// stopSimulationOnShutdown cancels an in-flight match request before the
// publisher it reports to is closed. Fx runs OnStop hooks in reverse order,
// and this hook is registered after the publisher's.
func stopSimulationOnShutdown(lc fx.Lifecycle, simulation usecase.SimulationUsecase, logger *slog.Logger) {
	lc.Append(fx.StopHook(func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		logger.Info("Stopping simulation")

		return simulation.Stop(ctx)
	}))
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
