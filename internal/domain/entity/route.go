package entity

import "time"

// Route is a named, persisted trajectory point list.
type Route struct {
	Name      string
	Points    []TrajectoryPoint
	UpdatedAt time.Time
}
