package directions

import (
	"context"
	"errors"
	"fmt"

	maps "googlemaps.github.io/maps"

	"showing-route-service/internal/platform/obs"
	"showing-route-service/internal/ports"
)

// GoogleDirectionsProvider implements DirectionsProvider using the Google
// Maps Directions API.
//
// Requests ask for live-traffic durations and keep waypoint re-optimization
// off: the planner has already fixed the visiting order. The provider is
// safe for concurrent use.
type GoogleDirectionsProvider struct {
	client *maps.Client
}

func NewGoogleDirectionsProvider(apiKey string) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}

	return &GoogleDirectionsProvider{client: client}, nil
}

// Route requests a driving itinerary and returns one leg per segment in
// travel order.
func (g *GoogleDirectionsProvider) Route(
	ctx context.Context,
	origin string,
	destination string,
	waypoints []string,
) (_ []ports.RouteLeg, err error) {
	defer obs.Time(ctx, "google.Directions")(&err)

	if origin == "" || destination == "" {
		return nil, errors.New("google directions: origin and destination must be non-empty")
	}

	req := &maps.DirectionsRequest{
		Origin:        origin,
		Destination:   destination,
		Waypoints:     waypoints,
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("google directions: %w", err)
	}
	if len(routes) == 0 {
		return nil, errors.New("google directions: no routes returned")
	}

	route := routes[0]
	legs := make([]ports.RouteLeg, 0, len(route.Legs))
	for _, leg := range route.Legs {
		duration := leg.Duration
		// Traffic-aware duration is only populated for departure_time=now.
		if leg.DurationInTraffic > 0 {
			duration = leg.DurationInTraffic
		}

		legs = append(legs, ports.RouteLeg{
			DurationSeconds: int(duration.Seconds()),
			DistanceLabel:   leg.Distance.HumanReadable,
		})
	}

	return legs, nil
}
