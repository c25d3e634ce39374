package usecase

import (
	"context"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/frontier"
)

// SimulationStatus is a point-in-time view of the driver.
type SimulationStatus struct {
	RunID            string                 `json:"run_id,omitempty"`
	State            entity.SimulationState `json:"state"`
	AtIdx            int                    `json:"at_idx"`
	TrajectoryLength int                    `json:"trajectory_length"`
	GapCount         int                    `json:"gap_count"`
	LastError        string                 `json:"last_error,omitempty"`
}

// SimulationUsecase drives a map matching run over the trajectory, one point at a time.
type SimulationUsecase interface {
	// Start moves Stopped or Paused to Running. It needs at least two trajectory points.
	Start(ctx context.Context) error

	// Pause stops scheduling further requests; an in-flight response still applies.
	Pause(ctx context.Context) error

	// Stop ends the run and clears the frontier, history included.
	Stop(ctx context.Context) error

	// Toggle starts or resumes when not running and pauses when running.
	Toggle(ctx context.Context) (entity.SimulationState, error)

	// Status reports the driver state.
	Status() SimulationStatus

	// Snapshot returns a detached copy of the frontier.
	Snapshot() frontier.State

	// Wait blocks until the current run loop, if any, has exited.
	Wait(ctx context.Context) error
}
