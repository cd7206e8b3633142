package ports

import "context"

// Travel duration and a human-readable distance for one driving leg.
type RouteLeg struct {
	DurationSeconds int
	DistanceLabel   string
}

// Contract for retrieving a multi-stop driving itinerary from an external
// directions service.
type DirectionsProvider interface {
	// Route returns one leg per origin -> waypoint -> ... -> destination
	// segment, in travel order. Waypoint order must be preserved by the
	// implementation; the planner fixes the visiting sequence itself.
	Route(ctx context.Context, origin string, destination string, waypoints []string) ([]RouteLeg, error)
}
