package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"showing-route-service/internal/adapters/directions"
	"showing-route-service/internal/domain"
	"showing-route-service/internal/ports"
)

const testOffice = "100 QUEEN ST W, Toronto, Ontario"

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func testPlanner(provider ports.DirectionsProvider, legMinutes int) *RoutePlanner {
	p := NewRoutePlanner(provider)
	p.Now = fixedClock
	p.LegMinutes = func() int { return legMinutes }
	return p
}

func visitAddresses(plan domain.RoutePlan) []string {
	var out []string
	for _, step := range plan.Steps {
		if step.Kind == domain.StepVisit {
			out = append(out, step.Address)
		}
	}
	return out
}

func TestPlanShowingsCityPriorityOrdering(t *testing.T) {
	stops := []domain.Stop{
		{Address: "15 BAY ST, Toronto, Ontario", VisitDurationMinutes: 30},
		{Address: "42 YONGE ST, Richmond Hill, Ontario", VisitDurationMinutes: 30},
		{Address: "7 KING BLVD, Vaughan, Ontario", VisitDurationMinutes: 30},
	}

	plan := testPlanner(nil, 20).PlanShowings(context.Background(), testOffice, stops)

	want := []string{
		"42 YONGE ST, Richmond Hill, Ontario",
		"7 KING BLVD, Vaughan, Ontario",
		"15 BAY ST, Toronto, Ontario",
	}
	got := visitAddresses(plan)
	if len(got) != len(want) {
		t.Fatalf("visit count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPlanShowingsStreetOrderWithinCity(t *testing.T) {
	stops := []domain.Stop{
		{Address: "12 Cherry St, Toronto, Ontario", VisitDurationMinutes: 15},
		{Address: "12 Apple St, Toronto, Ontario", VisitDurationMinutes: 15},
	}

	plan := testPlanner(nil, 10).PlanShowings(context.Background(), testOffice, stops)

	got := visitAddresses(plan)
	if got[0] != "12 Apple St, Toronto, Ontario" || got[1] != "12 Cherry St, Toronto, Ontario" {
		t.Errorf("visit order = %v, want streets sorted within the city", got)
	}
}

func TestPlanShowingsUnknownCitySortsLast(t *testing.T) {
	stops := []domain.Stop{
		{Address: "1 Somewhere Rd", VisitDurationMinutes: 15},
		{Address: "15 BAY ST, Toronto, Ontario", VisitDurationMinutes: 15},
	}

	plan := testPlanner(nil, 10).PlanShowings(context.Background(), testOffice, stops)

	got := visitAddresses(plan)
	if got[0] != "15 BAY ST, Toronto, Ontario" || got[1] != "1 Somewhere Rd" {
		t.Errorf("visit order = %v, want known city before unknown", got)
	}
}

func TestPlanShowingsWithProvider(t *testing.T) {
	mock := &directions.MockDirectionsProvider{
		Legs: []ports.RouteLeg{
			{DurationSeconds: 600, DistanceLabel: "5.0 km"},
			{DurationSeconds: 900, DistanceLabel: "7.5 km"},
		},
	}
	stops := []domain.Stop{
		{Address: "15 BAY ST, Toronto, Ontario", VisitDurationMinutes: 30},
	}

	plan := testPlanner(mock, 10).PlanShowings(context.Background(), testOffice, stops)

	if mock.LastOrigin != testOffice || mock.LastDestination != testOffice {
		t.Errorf("provider endpoints = %q -> %q, want office round trip", mock.LastOrigin, mock.LastDestination)
	}
	if len(mock.LastWaypoints) != 1 || mock.LastWaypoints[0] != stops[0].Address {
		t.Errorf("provider waypoints = %v, want the ordered stops", mock.LastWaypoints)
	}

	if len(plan.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(plan.Steps))
	}

	start := plan.Steps[0]
	if start.Kind != domain.StepStart || start.StopIndex != -1 || start.TravelLabel != "0 min" {
		t.Errorf("start step = %+v", start)
	}
	if !start.ArriveAt.Equal(fixedClock()) {
		t.Errorf("start at %v, want %v", start.ArriveAt, fixedClock())
	}

	visit := plan.Steps[1]
	if visit.TravelLabel != "10 min" || visit.DistanceLabel != "5.0 km" {
		t.Errorf("visit step = %+v", visit)
	}
	if want := fixedClock().Add(10 * time.Minute); !visit.ArriveAt.Equal(want) {
		t.Errorf("visit arrives %v, want %v", visit.ArriveAt, want)
	}

	ret := plan.Steps[2]
	if ret.Kind != domain.StepReturn || ret.TravelLabel != "15 min" {
		t.Errorf("return step = %+v", ret)
	}
	// 10 min drive + 30 min visit + 15 min drive back.
	if want := fixedClock().Add(55 * time.Minute); !ret.ArriveAt.Equal(want) {
		t.Errorf("return arrives %v, want %v", ret.ArriveAt, want)
	}

	if want := "0h 55m (25m driving + 30m visiting)"; plan.TotalDurationLabel != want {
		t.Errorf("total duration = %q, want %q", plan.TotalDurationLabel, want)
	}
	if want := "12.5 km"; plan.TotalDistanceLabel != want {
		t.Errorf("total distance = %q, want %q", plan.TotalDistanceLabel, want)
	}
	if plan.Notes != "" {
		t.Errorf("notes = %q, want empty for provider timings", plan.Notes)
	}
}

func TestPlanShowingsProviderDurationRoundsUp(t *testing.T) {
	mock := &directions.MockDirectionsProvider{
		Legs: []ports.RouteLeg{{DurationSeconds: 601, DistanceLabel: "8.2 km"}},
	}

	plan := testPlanner(mock, 10).PlanShowings(context.Background(), testOffice, nil)

	if len(plan.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(plan.Steps))
	}
	if got := plan.Steps[1].TravelLabel; got != "11 min" {
		t.Errorf("travel label = %q, want %q", got, "11 min")
	}
}

func TestPlanShowingsFallsBackOnProviderError(t *testing.T) {
	mock := &directions.MockDirectionsProvider{Err: errors.New("quota exceeded")}
	stops := []domain.Stop{
		{Address: "15 BAY ST, Toronto, Ontario", VisitDurationMinutes: 30},
		{Address: "42 YONGE ST, Richmond Hill, Ontario", VisitDurationMinutes: 30},
		{Address: "7 KING BLVD, Vaughan, Ontario", VisitDurationMinutes: 30},
	}

	plan := testPlanner(mock, 20).PlanShowings(context.Background(), testOffice, stops)

	// Fallback plans carry the same step shape as provider plans.
	if want := len(stops) + 2; len(plan.Steps) != want {
		t.Fatalf("steps = %d, want %d", len(plan.Steps), want)
	}
	if plan.Notes == "" || !strings.Contains(plan.Notes, "simulated") {
		t.Errorf("notes = %q, want simulated-timing disclosure", plan.Notes)
	}
	if plan.TotalDistanceLabel != "" {
		t.Errorf("total distance = %q, want empty without provider legs", plan.TotalDistanceLabel)
	}
	// 4 legs x 20 min driving, 3 visits x 30 min.
	if want := "2h 50m (80m driving + 90m visiting)"; plan.TotalDurationLabel != want {
		t.Errorf("total duration = %q, want %q", plan.TotalDurationLabel, want)
	}
}

func TestPlanShowingsProviderLegCountMismatchFallsBack(t *testing.T) {
	mock := &directions.MockDirectionsProvider{
		Legs: []ports.RouteLeg{{DurationSeconds: 600, DistanceLabel: "5.0 km"}},
	}
	stops := []domain.Stop{
		{Address: "15 BAY ST, Toronto, Ontario", VisitDurationMinutes: 30},
		{Address: "42 YONGE ST, Richmond Hill, Ontario", VisitDurationMinutes: 30},
	}

	plan := testPlanner(mock, 10).PlanShowings(context.Background(), testOffice, stops)

	if plan.Notes == "" {
		t.Error("expected simulated-timing note after leg count mismatch")
	}
	if want := len(stops) + 2; len(plan.Steps) != want {
		t.Errorf("steps = %d, want %d", len(plan.Steps), want)
	}
}

func TestPlanShowingsMapURL(t *testing.T) {
	stops := []domain.Stop{
		{Address: "15 BAY ST, Toronto, Ontario", VisitDurationMinutes: 30},
	}

	plan := testPlanner(nil, 10).PlanShowings(context.Background(), testOffice, stops)

	want := "https://www.google.com/maps/dir/" + strings.Join([]string{
		url.PathEscape(testOffice),
		url.PathEscape(stops[0].Address),
		url.PathEscape(testOffice),
	}, "/")
	if plan.MapURL != want {
		t.Errorf("map url = %q, want %q", plan.MapURL, want)
	}
}

func TestCitySegment(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"15 BAY ST, Toronto, Ontario", "Toronto"},
		{"42 YONGE ST, Richmond Hill, Ontario", "Richmond Hill"},
		{"1 Somewhere Rd", "Unknown"},
		{"1 Somewhere Rd, , Ontario", "Unknown"},
	}

	for _, tc := range cases {
		if got := citySegment(tc.address); got != tc.want {
			t.Errorf("citySegment(%q) = %q, want %q", tc.address, got, tc.want)
		}
	}
}
