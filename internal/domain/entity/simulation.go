package entity

// SimulationState is the state of the simulation driver.
type SimulationState string

const (
	SimulationStopped SimulationState = "stopped"
	SimulationRunning SimulationState = "running"
	SimulationPaused  SimulationState = "paused"
)

// String implements fmt.Stringer.
func (s SimulationState) String() string {
	return string(s)
}
