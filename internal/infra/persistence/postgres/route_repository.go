// Package postgres stores routes in PostgreSQL through GORM.
package postgres

import (
	"context"
	"encoding/json"

	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// SaveRoute upserts on the name primary key.
func (repo *routeRepository) SaveRoute(ctx context.Context, route *entity.Route) error {
	routeM, err := fromRouteDomain(route)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"points", "updated_at"}),
		}).
		Create(routeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save route")
	}

	return nil
}

func (repo *routeRepository) FindRouteByName(ctx context.Context, name string) (*entity.Route, error) {
	var routeM model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by name")
	}

	return toRouteDomain(&routeM)
}

func (repo *routeRepository) DeleteRoute(ctx context.Context, name string) error {
	result := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&model.RouteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete route")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRouteNotFound
	}

	return nil
}

func (repo *routeRepository) ListRouteNames(ctx context.Context) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list route names")
	}

	return names, nil
}

func fromRouteDomain(route *entity.Route) (*model.RouteModel, error) {
	points, err := json.Marshal(entity.Records(route.Points))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &model.RouteModel{
		Name:      route.Name,
		Points:    datatypes.JSON(points),
		UpdatedAt: route.UpdatedAt,
	}, nil
}

func toRouteDomain(routeM *model.RouteModel) (*entity.Route, error) {
	var recs []entity.PointRecord
	if err := json.Unmarshal(routeM.Points, &recs); err != nil {
		return nil, errors.Wrapf(err, "route %s has malformed points", routeM.Name)
	}

	points, err := entity.PointsFromRecords(recs)
	if err != nil {
		return nil, errors.Wrapf(err, "route %s", routeM.Name)
	}

	return &entity.Route{
		Name:      routeM.Name,
		Points:    points,
		UpdatedAt: routeM.UpdatedAt,
	}, nil
}
