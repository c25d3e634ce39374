// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// TimestampLayout is the only accepted timestamp format for trajectory points,
// both on the editor API and on the map matching wire.
const TimestampLayout = "2006-01-02 15:04:05"

// TrajectoryPoint is one recorded or user-placed position of the trajectory.
// Its position in the trajectory (0..N-1) is its index; the point itself does not carry it.
type TrajectoryPoint struct {
	Latitude  float64   // Geographic latitude in [-90, 90].
	Longitude float64   // Geographic longitude in [-180, 180].
	Timestamp time.Time // Registration time, second precision.
	Altitude  *float64  // Optional altitude in meters.
}

// FormattedTimestamp renders the timestamp in TimestampLayout.
func (p TrajectoryPoint) FormattedTimestamp() string {
	return p.Timestamp.Format(TimestampLayout)
}

// RoundCoordinate rounds a coordinate to 6 decimals, the precision the editor keeps.
func RoundCoordinate(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// PointRecord is the marker shape used by the editor API and by every route store.
// The validate tags are the write-side contract of the trajectory store.
type PointRecord struct {
	Lat      float64  `json:"lat" firestore:"lat" validate:"gte=-90,lte=90"`
	Lng      float64  `json:"lng" firestore:"lng" validate:"gte=-180,lte=180"`
	Time     string   `json:"time" firestore:"time" validate:"required,datetime=2006-01-02 15:04:05"`
	Altitude *float64 `json:"altitude,omitempty" firestore:"altitude,omitempty"`
}

// Record converts the point into its marker shape.
func (p TrajectoryPoint) Record() PointRecord {
	return PointRecord{
		Lat:      p.Latitude,
		Lng:      p.Longitude,
		Time:     p.FormattedTimestamp(),
		Altitude: p.Altitude,
	}
}

// MarshalJSON writes the marker shape.
func (p TrajectoryPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Record())
}

// UnmarshalJSON reads the marker shape. Range checks are the trajectory store's job.
func (p *TrajectoryPoint) UnmarshalJSON(data []byte) error {
	var rec PointRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	point, err := rec.Point()
	if err != nil {
		return err
	}
	*p = point

	return nil
}

// Point parses the timestamp of the record. Coordinates are taken as is.
func (r PointRecord) Point() (TrajectoryPoint, error) {
	ts, err := time.Parse(TimestampLayout, r.Time)
	if err != nil {
		return TrajectoryPoint{}, err
	}

	return TrajectoryPoint{
		Latitude:  r.Lat,
		Longitude: r.Lng,
		Timestamp: ts,
		Altitude:  r.Altitude,
	}, nil
}

// Records converts points into their marker shape.
func Records(points []TrajectoryPoint) []PointRecord {
	recs := make([]PointRecord, len(points))
	for i, p := range points {
		recs[i] = p.Record()
	}

	return recs
}

// PointsFromRecords parses stored markers back into points.
func PointsFromRecords(recs []PointRecord) ([]TrajectoryPoint, error) {
	points := make([]TrajectoryPoint, len(recs))
	for i, rec := range recs {
		p, err := rec.Point()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = p
	}

	return points, nil
}
