package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"showing-route-service/internal/domain"
	"showing-route-service/internal/ports"
)

// cityPriority fixes the visiting order of city buckets. Lower values are
// visited first; cities outside the table sort last, ties broken
// alphabetically.
var cityPriority = map[string]int{
	"Richmond Hill": 1,
	"Vaughan":       2,
	"Markham":       3,
	"North York":    4,
	"Scarborough":   5,
	"Toronto":       6,
	"Mississauga":   7,
	"Brampton":      8,
	"Oshawa":        9,
}

const unknownCityPriority = 999

const simulatedTimingNote = "Travel times are simulated estimates, not measured driving durations."

const mapDirBaseURL = "https://www.google.com/maps/dir/"

// RoutePlanner turns an office address and a bounded set of stops into an
// ordered showing itinerary.
//
// Ordering is a geographic-priority heuristic, not optimal routing: stops
// group by city, cities order by the fixed priority table, streets sort
// lexicographically within each city. Timings come from the configured
// directions provider when available; provider failures downgrade silently
// to the simulated time model.
//
// Now and LegMinutes are injectable so tests can pin the clock and the
// simulated leg durations.
type RoutePlanner struct {
	Provider   ports.DirectionsProvider
	Now        func() time.Time
	LegMinutes func() int
}

// NewRoutePlanner builds a planner around an optional directions provider.
// A nil provider means every plan uses simulated timings.
func NewRoutePlanner(provider ports.DirectionsProvider) *RoutePlanner {
	return &RoutePlanner{
		Provider:   provider,
		Now:        time.Now,
		LegMinutes: func() int { return 10 + rand.Intn(21) },
	}
}

// PlanShowings produces the itinerary for visiting the given stops from the
// office and back. The 1-5 stop bound is enforced by the boundary layer, not
// here; invalid input yields a best-effort plan rather than an error.
func (p *RoutePlanner) PlanShowings(ctx context.Context, officeAddress string, stops []domain.Stop) domain.RoutePlan {
	ordered := orderStops(stops)

	if p.Provider != nil {
		plan, err := p.planWithProvider(ctx, officeAddress, ordered)
		if err == nil {
			return plan
		}
		// Provider failures are fallback-eligible, never fatal.
		log.Printf("directions provider failed, using simulated timings: %v", err)
	}

	return p.planSimulated(officeAddress, ordered)
}

// orderStops applies the geographic-priority heuristic: bucket by city,
// order buckets by priority table, sort streets within each bucket with a
// locale-aware collator.
func orderStops(stops []domain.Stop) []domain.Stop {
	buckets := make(map[string][]domain.Stop)
	for _, s := range stops {
		city := citySegment(s.Address)
		buckets[city] = append(buckets[city], s)
	}

	cities := make([]string, 0, len(buckets))
	for city := range buckets {
		cities = append(cities, city)
	}
	sort.Slice(cities, func(i, j int) bool {
		pi, pj := bucketPriority(cities[i]), bucketPriority(cities[j])
		if pi != pj {
			return pi < pj
		}
		return cities[i] < cities[j]
	})

	// Collators are not safe for concurrent use, so build one per call.
	col := collate.New(language.English, collate.IgnoreCase)

	ordered := make([]domain.Stop, 0, len(stops))
	for _, city := range cities {
		bucket := buckets[city]
		sort.SliceStable(bucket, func(i, j int) bool {
			return col.CompareString(streetSegment(bucket[i].Address), streetSegment(bucket[j].Address)) < 0
		})
		ordered = append(ordered, bucket...)
	}
	return ordered
}

// citySegment extracts the city as the second comma-delimited segment of a
// formatted address.
func citySegment(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return "Unknown"
	}
	city := strings.TrimSpace(parts[1])
	if city == "" {
		return "Unknown"
	}
	return city
}

func streetSegment(address string) string {
	return strings.TrimSpace(strings.Split(address, ",")[0])
}

func bucketPriority(city string) int {
	if p, ok := cityPriority[city]; ok {
		return p
	}
	return unknownCityPriority
}

func (p *RoutePlanner) planWithProvider(ctx context.Context, office string, ordered []domain.Stop) (domain.RoutePlan, error) {
	waypoints := make([]string, 0, len(ordered))
	for _, s := range ordered {
		waypoints = append(waypoints, s.Address)
	}

	legs, err := p.Provider.Route(ctx, office, office, waypoints)
	if err != nil {
		return domain.RoutePlan{}, fmt.Errorf("plan showings: directions: %w", err)
	}
	if len(legs) != len(ordered)+1 {
		return domain.RoutePlan{}, fmt.Errorf(
			"plan showings: expected %d legs, got %d",
			len(ordered)+1, len(legs),
		)
	}

	legMinutes := make([]int, len(legs))
	distanceLabels := make([]string, len(legs))
	for i, leg := range legs {
		// Ceiling division: a 601-second leg displays as 11 minutes.
		legMinutes[i] = (leg.DurationSeconds + 59) / 60
		distanceLabels[i] = leg.DistanceLabel
	}

	return p.assemble(office, ordered, legMinutes, distanceLabels, ""), nil
}

func (p *RoutePlanner) planSimulated(office string, ordered []domain.Stop) domain.RoutePlan {
	legMinutes := make([]int, len(ordered)+1)
	for i := range legMinutes {
		legMinutes[i] = p.LegMinutes()
	}
	return p.assemble(office, ordered, legMinutes, nil, simulatedTimingNote)
}

// assemble walks the legs in order, advancing a running clock by each
// driving leg and each visited stop's on-site duration, and builds the
// Start / Visit / Return step sequence shared by both timing modes.
func (p *RoutePlanner) assemble(office string, ordered []domain.Stop, legMinutes []int, distanceLabels []string, notes string) domain.RoutePlan {
	departAt := p.Now()
	steps := make([]domain.RouteStep, 0, len(ordered)+2)
	steps = append(steps, domain.RouteStep{
		Kind:        domain.StepStart,
		StopIndex:   -1,
		Address:     office,
		ArriveAt:    departAt,
		TravelLabel: "0 min",
	})

	clock := departAt
	drivingMinutes := 0
	visitingMinutes := 0
	totalDistance := 0.0
	haveDistance := false

	for i, minutes := range legMinutes {
		clock = clock.Add(time.Duration(minutes) * time.Minute)
		drivingMinutes += minutes

		var distance string
		if i < len(distanceLabels) {
			distance = distanceLabels[i]
			// Non-numeric leg distances contribute 0 to the total.
			if v, ok := leadingNumber(distance); ok {
				totalDistance += v
				haveDistance = true
			}
		}

		if i < len(ordered) {
			stop := ordered[i]
			steps = append(steps, domain.RouteStep{
				Kind:                 domain.StepVisit,
				StopIndex:            i,
				Address:              stop.Address,
				ArriveAt:             clock,
				TravelLabel:          fmt.Sprintf("%d min", minutes),
				VisitDurationMinutes: stop.VisitDurationMinutes,
				DistanceLabel:        distance,
			})
			clock = clock.Add(time.Duration(stop.VisitDurationMinutes) * time.Minute)
			visitingMinutes += stop.VisitDurationMinutes
		} else {
			steps = append(steps, domain.RouteStep{
				Kind:          domain.StepReturn,
				StopIndex:     -1,
				Address:       office,
				ArriveAt:      clock,
				TravelLabel:   fmt.Sprintf("%d min", minutes),
				DistanceLabel: distance,
			})
		}
	}

	plan := domain.RoutePlan{
		Steps:              steps,
		TotalDurationLabel: totalDurationLabel(drivingMinutes, visitingMinutes),
		MapURL:             shareableMapURL(office, ordered),
		Notes:              notes,
	}
	if haveDistance {
		plan.TotalDistanceLabel = fmt.Sprintf("%.1f km", totalDistance)
	}
	return plan
}

var leadingNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

func leadingNumber(label string) (float64, bool) {
	m := leadingNumberRe.FindString(strings.ReplaceAll(label, ",", ""))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func totalDurationLabel(drivingMinutes, visitingMinutes int) string {
	total := drivingMinutes + visitingMinutes
	return fmt.Sprintf(
		"%dh %dm (%dm driving + %dm visiting)",
		total/60, total%60, drivingMinutes, visitingMinutes,
	)
}

// shareableMapURL chains office -> each stop in planned order -> office as
// path-escaped waypoints of the external mapping link.
func shareableMapURL(office string, ordered []domain.Stop) string {
	parts := make([]string, 0, len(ordered)+2)
	parts = append(parts, url.PathEscape(office))
	for _, s := range ordered {
		parts = append(parts, url.PathEscape(s.Address))
	}
	parts = append(parts, url.PathEscape(office))
	return mapDirBaseURL + strings.Join(parts, "/")
}
