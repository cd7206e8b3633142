package directions

import (
	"context"

	"showing-route-service/internal/ports"
)

// MockDirectionsProvider returns scripted legs for tests.
type MockDirectionsProvider struct {
	Legs []ports.RouteLeg
	Err  error

	// Recorded from the last Route call.
	LastOrigin      string
	LastDestination string
	LastWaypoints   []string
}

func (m *MockDirectionsProvider) Route(ctx context.Context, origin, destination string, waypoints []string) ([]ports.RouteLeg, error) {
	m.LastOrigin = origin
	m.LastDestination = destination
	m.LastWaypoints = append([]string(nil), waypoints...)

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Legs, nil
}
