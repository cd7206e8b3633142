package domain

import "time"

// StepKind discriminates the three step types in a showing itinerary.
type StepKind string

const (
	StepStart  StepKind = "start"
	StepVisit  StepKind = "visit"
	StepReturn StepKind = "return"
)

// A property the agent must visit, with the required on-site duration.
// Stops are created by the caller per planning request and are immutable
// during planning.
type Stop struct {
	Address              string
	VisitDurationMinutes int
	MLSNumber            string
}

// One entry in a planned itinerary: arriving at an address at a computed
// time after a driving leg. StopIndex refers to the planned visiting order
// and is -1 for the start and return steps.
type RouteStep struct {
	Kind                 StepKind
	StopIndex            int
	Address              string
	ArriveAt             time.Time
	TravelLabel          string
	VisitDurationMinutes int
	DistanceLabel        string
}

// The planned showing itinerary for a single request.
// The first step is always StepStart and the last is always StepReturn.
// A RoutePlan is immutable planning data; it is returned to the caller and
// never persisted.
type RoutePlan struct {
	Steps              []RouteStep
	TotalDurationLabel string
	TotalDistanceLabel string
	MapURL             string
	Notes              string
}
