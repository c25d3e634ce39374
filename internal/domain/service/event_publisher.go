package service

import (
	"context"
	"time"
)

// SimulationEvent describes a notable step of a simulation run.
type SimulationEvent struct {
	EventID          string    `json:"event_id"`
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	RunID            string    `json:"run_id"`
	Type             string    `json:"type"`
	State            string    `json:"state"`
	RequestIdx       int       `json:"request_idx"`
	AtIdx            int       `json:"at_idx"`
	TrajectoryLength int       `json:"trajectory_length"`
	CommittedCount   int       `json:"committed_count"`
	ProvisionalCount int       `json:"provisional_count"`
	GapStartIdx      *int      `json:"gap_start_idx,omitempty"`
	GapEndIdx        *int      `json:"gap_end_idx,omitempty"`
	Error            string    `json:"error,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing simulation events to a message queue
type EventPublisher interface {
	// PublishSimulationEvent publishes one event. Callers treat failures as non-fatal.
	PublishSimulationEvent(ctx context.Context, event *SimulationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
