package pubsub

import (
	"strconv"

	"trajmatch/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.SimulationEvent) map[string]string {
	attributes := map[string]string{
		"event_id":    event.EventID,
		"event_type":  event.Type,
		"run_id":      event.RunID,
		"request_idx": strconv.Itoa(event.RequestIdx),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
