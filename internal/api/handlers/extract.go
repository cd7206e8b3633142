package handlers

import (
	"net/http"

	"showing-route-service/internal/api/dto"
	"showing-route-service/internal/domain"
	"showing-route-service/internal/services"
)

// ExtractHandler exposes property data extraction over raw document text.
type ExtractHandler struct{}

// Extract scans the supplied text for MLS numbers, addresses, and secondary
// listing details. Extraction never fails; a text with no matches returns
// empty collections.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ExtractRequest
	defer r.Body.Close()
	if err := decodeStrictJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	extraction := services.ExtractPropertyData(req.Text)

	writeJSON(w, r, http.StatusOK, toExtractResponse(extraction))
}

func toExtractResponse(e domain.PropertyExtraction) dto.ExtractResponse {
	mls := e.MLSNumbers
	if mls == nil {
		mls = []string{}
	}
	addrs := e.Addresses
	if addrs == nil {
		addrs = []string{}
	}

	return dto.ExtractResponse{
		MLSNumbers: mls,
		Addresses:  addrs,
		Details: dto.PropertyDetailsResponse{
			Prices:        e.Details.Prices,
			Bedrooms:      e.Details.Bedrooms,
			Bathrooms:     e.Details.Bathrooms,
			SquareFootage: e.Details.SquareFootage,
			PropertyType:  e.Details.PropertyType,
		},
	}
}
