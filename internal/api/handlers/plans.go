package handlers

import (
	"net/http"
	"strings"

	"showing-route-service/internal/api/dto"
	"showing-route-service/internal/domain"
	"showing-route-service/internal/services"
)

const (
	maxStops                    = 5
	defaultVisitDurationMinutes = 30
)

// PlanHandler orchestrates showing route planning.
// The 1-5 stop bound and visit duration checks live here: the planner is
// deliberately validation-free.
type PlanHandler struct {
	Planner       *services.RoutePlanner
	DefaultOffice string
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest
	defer r.Body.Close()
	if err := decodeStrictJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	office := strings.TrimSpace(req.OfficeAddress)
	if office == "" {
		office = strings.TrimSpace(h.DefaultOffice)
	}
	if err := services.ValidateAddress(office); err != nil {
		writeError(w, r, http.StatusBadRequest, "office_address is required")
		return
	}

	if len(req.Stops) < 1 || len(req.Stops) > maxStops {
		writeError(w, r, http.StatusBadRequest, "stops must contain between 1 and 5 entries")
		return
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for _, s := range req.Stops {
		if strings.TrimSpace(s.Address) == "" {
			writeError(w, r, http.StatusBadRequest, "every stop needs an address")
			return
		}

		visit := s.VisitDurationMinutes
		if visit == 0 {
			visit = defaultVisitDurationMinutes
		}
		if visit < 0 {
			writeError(w, r, http.StatusBadRequest, "visit_duration_minutes must be positive")
			return
		}

		stops = append(stops, domain.Stop{
			Address:              strings.TrimSpace(s.Address),
			VisitDurationMinutes: visit,
			MLSNumber:            strings.TrimSpace(s.MLSNumber),
		})
	}

	plan := h.Planner.PlanShowings(r.Context(), office, stops)

	steps := make([]dto.PlanStepResponse, 0, len(plan.Steps))
	for _, s := range plan.Steps {
		steps = append(steps, dto.PlanStepResponse{
			Kind:                 string(s.Kind),
			Address:              s.Address,
			ArriveAt:             s.ArriveAt,
			TravelLabel:          s.TravelLabel,
			VisitDurationMinutes: s.VisitDurationMinutes,
			DistanceLabel:        s.DistanceLabel,
		})
	}

	res := dto.PlanResponse{
		Steps:              steps,
		TotalDurationLabel: plan.TotalDurationLabel,
		TotalDistanceLabel: plan.TotalDistanceLabel,
		MapURL:             plan.MapURL,
		Notes:              plan.Notes,
	}

	writeJSON(w, r, http.StatusOK, res)
}
