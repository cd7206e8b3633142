package handlers

import (
	"errors"
	"net/http"
	"strings"

	"showing-route-service/internal/api/dto"
	"showing-route-service/internal/services"
)

// AddressHandler exposes slug normalization.
type AddressHandler struct{}

// Normalize parses a location slug into structured address components and
// the canonical formatted string. Structurally unusable slugs return 422
// with the parse reason; ambiguous input still yields best-effort fields.
func (h *AddressHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.NormalizeRequest
	defer r.Body.Close()
	if err := decodeStrictJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Slug) == "" {
		writeError(w, r, http.StatusBadRequest, "slug is required")
		return
	}

	components, err := services.NormalizeSlug(req.Slug)
	if err != nil {
		var pe *services.ParseError
		if errors.As(err, &pe) {
			writeError(w, r, http.StatusUnprocessableEntity, pe.Reason)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.NormalizeResponse{
		UnitNumber:      components.UnitNumber,
		StreetNumber:    components.StreetNumber,
		StreetName:      components.StreetName,
		StreetType:      components.StreetType,
		StreetDirection: components.StreetDirection,
		City:            components.City,
		Province:        components.Province,
		Formatted:       components.Formatted(),
	}

	writeJSON(w, r, http.StatusOK, res)
}
