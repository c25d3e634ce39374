// Package model holds the storage shapes of persisted routes.
package model

import (
	"time"

	"trajmatch/internal/domain/entity"

	"gorm.io/datatypes"
)

// RouteModel is the GORM-specific struct for the 'routes' table.
// Points holds the marker list as JSONB so a route is read and written in one row.
type RouteModel struct {
	Name      string         `gorm:"type:varchar(255);primaryKey"`
	Points    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}

// RouteDocument is the document and object shape shared by the Firestore and blob stores.
type RouteDocument struct {
	Name      string               `json:"name" firestore:"name"`
	Markers   []entity.PointRecord `json:"markers" firestore:"markers"`
	UpdatedAt time.Time            `json:"updatedAt" firestore:"updatedAt"`
}

func NewRouteDocument(route *entity.Route) *RouteDocument {
	return &RouteDocument{
		Name:      route.Name,
		Markers:   entity.Records(route.Points),
		UpdatedAt: route.UpdatedAt.UTC(),
	}
}

// ToDomain parses the stored markers. A document with an unparsable
// timestamp is reported rather than silently truncated.
func (d *RouteDocument) ToDomain() (*entity.Route, error) {
	points, err := entity.PointsFromRecords(d.Markers)
	if err != nil {
		return nil, err
	}

	return &entity.Route{
		Name:      d.Name,
		Points:    points,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
