package dto

import "time"

type PlanStopRequest struct {
	Address              string `json:"address"`
	VisitDurationMinutes int    `json:"visit_duration_minutes"`
	MLSNumber            string `json:"mls_number,omitempty"`
}

type PlanRequest struct {
	OfficeAddress string            `json:"office_address"`
	Stops         []PlanStopRequest `json:"stops"`
}

type PlanStepResponse struct {
	Kind                 string    `json:"kind"`
	Address              string    `json:"address"`
	ArriveAt             time.Time `json:"arrive_at"`
	TravelLabel          string    `json:"travel_label"`
	VisitDurationMinutes int       `json:"visit_duration_minutes,omitempty"`
	DistanceLabel        string    `json:"distance_label,omitempty"`
}

type PlanResponse struct {
	Steps              []PlanStepResponse `json:"steps"`
	TotalDurationLabel string             `json:"total_duration"`
	TotalDistanceLabel string             `json:"total_distance,omitempty"`
	MapURL             string             `json:"map_url"`
	Notes              string             `json:"notes,omitempty"`
}
