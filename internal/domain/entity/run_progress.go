package entity

import "time"

// RunProgress is what an event subscriber knows about one simulation run,
// folded from the events it has received so far.
type RunProgress struct {
	RunID            string          `json:"run_id"`
	State            SimulationState `json:"state"`
	AtIdx            int             `json:"at_idx"`
	TrajectoryLength int             `json:"trajectory_length"`
	CommittedCount   int             `json:"committed_count"`
	ProvisionalCount int             `json:"provisional_count"`
	GapCount         int             `json:"gap_count"`
	EventCount       int             `json:"event_count"`
	LastEventType    string          `json:"last_event_type"`
	LastError        string          `json:"last_error,omitempty"`
	StartedAt        time.Time       `json:"started_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	FinishedAt       *time.Time      `json:"finished_at,omitempty"`
}

// Finished reports whether a terminal event has been seen.
func (p RunProgress) Finished() bool {
	return p.FinishedAt != nil
}
