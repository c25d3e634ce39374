// Package trajectory holds the ordered list of trajectory points the simulation streams.
package trajectory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/errors"

	"github.com/go-playground/validator/v10"
)

// PointPatch holds the fields of an in-place edit. Nil fields are left untouched.
type PointPatch struct {
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Time     *string  `json:"time,omitempty"`
	Altitude *float64 `json:"altitude,omitempty"`
}

// Store is the ordered trajectory point list. Every write is validated and a
// rejected write leaves the store unchanged. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	points   []entity.TrajectoryPoint
	validate *validator.Validate
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Append validates rec and adds it at the end of the trajectory.
func (s *Store) Append(rec entity.PointRecord) (entity.TrajectoryPoint, error) {
	point, err := s.toPoint(rec)
	if err != nil {
		return entity.TrajectoryPoint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = append(s.points, point)

	return point, nil
}

// Update merges patch into the point at index.
func (s *Store) Update(index int, patch PointPatch) (entity.TrajectoryPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.points) {
		return entity.TrajectoryPoint{}, outOfRange(index, len(s.points))
	}

	rec := s.points[index].Record()
	if patch.Lat != nil {
		rec.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		rec.Lng = *patch.Lng
	}
	if patch.Time != nil {
		rec.Time = *patch.Time
	}
	if patch.Altitude != nil {
		rec.Altitude = patch.Altitude
	}

	point, err := s.toPoint(rec)
	if err != nil {
		return entity.TrajectoryPoint{}, err
	}
	s.points[index] = point

	return point, nil
}

// Remove deletes the point at index, shifting later points down.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.points) {
		return outOfRange(index, len(s.points))
	}

	s.points = append(s.points[:index], s.points[index+1:]...)

	return nil
}

// ReplaceAll swaps the whole trajectory. Either every record is valid and the
// store holds exactly recs, or nothing changes.
func (s *Store) ReplaceAll(recs []entity.PointRecord) error {
	points := make([]entity.TrajectoryPoint, 0, len(recs))
	for i, rec := range recs {
		point, err := s.toPoint(rec)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, point)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = points

	return nil
}

// Clear removes every point.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = nil
}

// Get returns the point at index.
func (s *Store) Get(index int) (entity.TrajectoryPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.points) {
		return entity.TrajectoryPoint{}, outOfRange(index, len(s.points))
	}

	return s.points[index], nil
}

// Len returns the number of points.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.points)
}

// Points returns a copy of the trajectory.
func (s *Store) Points() []entity.TrajectoryPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.TrajectoryPoint, len(s.points))
	copy(out, s.points)

	return out
}

func (s *Store) toPoint(rec entity.PointRecord) (entity.TrajectoryPoint, error) {
	if err := s.validate.Struct(rec); err != nil {
		return entity.TrajectoryPoint{}, domainerrors.ErrInvalidPoint.WithDetails(describe(err))
	}

	// Already checked by the datetime tag.
	ts, err := time.Parse(entity.TimestampLayout, rec.Time)
	if err != nil {
		return entity.TrajectoryPoint{}, domainerrors.ErrInvalidPoint.WithDetails(err.Error())
	}

	return entity.TrajectoryPoint{
		Latitude:  entity.RoundCoordinate(rec.Lat),
		Longitude: entity.RoundCoordinate(rec.Lng),
		Timestamp: ts,
		Altitude:  rec.Altitude,
	}, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid %s timestamp", strings.ToLower(fe.Field()), entity.TimestampLayout))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
		}
	}

	return strings.Join(msgs, "; ")
}

func outOfRange(index, length int) error {
	return domainerrors.ErrPointNotFound.WithDetails(fmt.Sprintf("index %d, trajectory has %d points", index, length))
}
