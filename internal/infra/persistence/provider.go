// Package persistence selects the route store named by persistence.provider
// and the run progress store named by runStore.provider.
package persistence

import (
	"context"
	"log/slog"

	"trajmatch/config"
	"trajmatch/internal/domain/constants"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/infra/persistence/blob"
	"trajmatch/internal/infra/persistence/firestore"
	"trajmatch/internal/infra/persistence/memory"
	"trajmatch/internal/infra/persistence/postgres"
	"trajmatch/internal/infra/persistence/redis"
	"trajmatch/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds the dependencies of the route store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRouteRepository builds only the selected backend, so a memory setup
// never dials a database or a bucket.
func NewRouteRepository(params Params) (repository.RouteRepository, error) {
	provider := constants.PersistenceProviderMemory
	if params.Config.Persistence != nil && params.Config.Persistence.Provider != "" {
		provider = params.Config.Persistence.Provider
	}
	logger := params.Logger.With(slog.String("route_store", provider))

	switch provider {
	case constants.PersistenceProviderMemory:
		logger.Info("Routes are kept in memory and lost on restart")

		return memory.NewRouteRepository(), nil

	case constants.PersistenceProviderPostgres:
		db, err := postgres.Open(params.Lc, params.Config, logger)
		if err != nil {
			return nil, err
		}

		return postgres.NewRouteRepository(db), nil

	case constants.PersistenceProviderFirestore:
		repo, err := firestore.NewRouteRepository(params.Ctx, params.Config.Firebase)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.StopHook(repo.Close))
		logger.Info("Using Firestore route store",
			slog.String("project_id", params.Config.Firebase.ProjectID),
			slog.String("collection", params.Config.Firebase.Collection),
		)

		return repo, nil

	case constants.PersistenceProviderBlob:
		repo, err := blob.Open(params.Ctx, params.Config.Blob.BucketURL, params.Config.Blob.Prefix)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.StopHook(repo.Close))
		logger.Info("Using blob route store", slog.String("bucket", params.Config.Blob.BucketURL))

		return repo, nil

	case constants.PersistenceProviderSQLite:
		repo, err := sqlite.Open(params.Ctx, params.Config.SQLite.Path, logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.StopHook(repo.Close))
		logger.Info("Using SQLite route store", slog.String("path", params.Config.SQLite.Path))

		return repo, nil

	default:
		return nil, errors.Errorf("unknown persistence provider: %s", provider)
	}
}

// NewRunProgressRepository builds the run progress store of the event worker.
func NewRunProgressRepository(params Params) (repository.RunProgressRepository, error) {
	provider := constants.RunStoreProviderMemory
	if params.Config.RunStore != nil && params.Config.RunStore.Provider != "" {
		provider = params.Config.RunStore.Provider
	}
	var maxRuns int
	if params.Config.Worker != nil {
		maxRuns = params.Config.Worker.MaxTrackedRuns
	}
	logger := params.Logger.With(slog.String("run_store", provider))

	switch provider {
	case constants.RunStoreProviderMemory:
		return memory.NewRunProgressRepository(maxRuns), nil

	case constants.RunStoreProviderRedis:
		repo, err := redis.Open(params.Ctx, params.Config.Redis, maxRuns)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.StopHook(repo.Close))
		logger.Info("Using Redis run store", slog.String("addr", params.Config.Redis.Addr))

		return repo, nil

	default:
		return nil, errors.Errorf("unknown run store provider: %s", provider)
	}
}

// Module provides the route repository
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouteRepository),
)

// RunStoreModule provides the run progress repository
//
//nolint:gochecknoglobals
var RunStoreModule = fx.Options(
	fx.Provide(NewRunProgressRepository),
)
