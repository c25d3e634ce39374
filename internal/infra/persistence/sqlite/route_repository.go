// Package sqlite stores routes in a single SQLite file, for editors that want
// their routes to survive restarts without running a database server.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/errors"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// RouteRepository is the SQLite implementation of repository.RouteRepository.
type RouteRepository struct {
	db *sql.DB
}

// Open opens or creates the database at path and migrates it.
func Open(ctx context.Context, path string, logger *slog.Logger) (*RouteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}
	// One writer at a time; the busy timeout covers other processes.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to configure sqlite")
	}
	if err := migrateUp(db, logger); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &RouteRepository{db: db}, nil
}

func (repo *RouteRepository) SaveRoute(ctx context.Context, route *entity.Route) error {
	markers, err := json.Marshal(entity.Records(route.Points))
	if err != nil {
		return errors.WithStack(err)
	}
	updated := route.UpdatedAt.UTC().Format(timeLayout)

	_, err = repo.db.ExecContext(ctx, `
		INSERT INTO routes (name, markers, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			markers = excluded.markers,
			updated_at = excluded.updated_at`,
		route.Name, string(markers), updated, updated,
	)

	return errors.Wrapf(err, "failed to save route %q", route.Name)
}

func (repo *RouteRepository) FindRouteByName(ctx context.Context, name string) (*entity.Route, error) {
	var markers, updated string
	err := repo.db.QueryRowContext(ctx,
		"SELECT markers, updated_at FROM routes WHERE name = ?", name,
	).Scan(&markers, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRouteNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find route %q", name)
	}

	var recs []entity.PointRecord
	if err := json.Unmarshal([]byte(markers), &recs); err != nil {
		return nil, errors.Wrapf(err, "route %q has malformed markers", name)
	}
	points, err := entity.PointsFromRecords(recs)
	if err != nil {
		return nil, errors.Wrapf(err, "route %q", name)
	}
	updatedAt, err := time.Parse(timeLayout, updated)
	if err != nil {
		return nil, errors.Wrapf(err, "route %q has malformed updated_at", name)
	}

	return &entity.Route{Name: name, Points: points, UpdatedAt: updatedAt}, nil
}

func (repo *RouteRepository) DeleteRoute(ctx context.Context, name string) error {
	result, err := repo.db.ExecContext(ctx, "DELETE FROM routes WHERE name = ?", name)
	if err != nil {
		return errors.Wrapf(err, "failed to delete route %q", name)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return repository.ErrRouteNotFound
	}

	return nil
}

func (repo *RouteRepository) ListRouteNames(ctx context.Context) ([]string, error) {
	rows, err := repo.db.QueryContext(ctx, "SELECT name FROM routes ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.WithStack(err)
		}
		names = append(names, name)
	}

	return names, errors.WithStack(rows.Err())
}

func (repo *RouteRepository) Close() error {
	return errors.WithStack(repo.db.Close())
}
