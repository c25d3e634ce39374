// Package service defines interfaces for collaborators of the simulation
// that live outside the domain: the map matcher, event sinks and QR rendering.
package service

import (
	"context"
	"encoding/json"

	"trajmatch/internal/domain/entity"
)

// MatchRequest is the input for one matcher round trip.
type MatchRequest struct {
	Index              int
	Point              entity.TrajectoryPoint
	ActiveStates       json.RawMessage
	AlternativeParents []entity.ParentPoint
}

// MatchingClient sends a single trajectory point to the map matcher.
type MatchingClient interface {
	// RequestMatch returns the parsed response or an error satisfying
	// errors.Is(err, domainerrors.ErrMatchRequestFailed).
	RequestMatch(ctx context.Context, req MatchRequest) (*entity.MatchResponse, error)
}
