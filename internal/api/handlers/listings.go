package handlers

import (
	"log"
	"net/http"
	"strings"

	"showing-route-service/internal/api/dto"
	"showing-route-service/internal/ports"
	"showing-route-service/internal/services"
)

// ListingHandler exposes MLS lookup and document resolution.
type ListingHandler struct {
	Lookup    *services.ListingLookupService
	Extractor ports.TextExtractor
}

// Get resolves a single MLS number taken from the request path.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	mls := strings.Trim(strings.TrimPrefix(r.URL.Path, "/listings/"), "/")
	if mls == "" {
		writeError(w, r, http.StatusBadRequest, "mls number is required")
		return
	}
	if !services.IsValidMLSNumber(mls) {
		writeError(w, r, http.StatusBadRequest, "mls number has an invalid shape")
		return
	}

	result, err := h.Lookup.Lookup(r.Context(), mls)
	if err != nil {
		log.Printf("listing lookup failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "lookup service unavailable")
		return
	}

	if !result.Found {
		writeJSON(w, r, http.StatusNotFound, dto.LookupResponse{Success: false, Reason: result.Reason})
		return
	}

	writeJSON(w, r, http.StatusOK, toLookupResponse(result))
}

// Resolve extracts listing data from document text (or a document handle
// routed through the text extraction service) and resolves every valid MLS
// candidate found.
func (h *ListingHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ResolveRequest
	defer r.Body.Close()
	if err := decodeStrictJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	text := req.Text
	if text == "" && req.DocumentURL != "" {
		if h.Extractor == nil {
			writeError(w, r, http.StatusBadRequest, "document extraction is not configured")
			return
		}
		extracted, err := h.Extractor.ExtractText(r.Context(), req.DocumentURL)
		if err != nil {
			log.Printf("text extraction failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "text extraction failed")
			return
		}
		text = extracted
	}
	if text == "" {
		writeError(w, r, http.StatusBadRequest, "text or document_url is required")
		return
	}

	resolved, err := h.Lookup.ResolveFromText(r.Context(), text)
	if err != nil {
		log.Printf("resolve from text failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "lookup service unavailable")
		return
	}

	listings := make([]dto.LookupResponse, 0, len(resolved.Listings))
	for _, lr := range resolved.Listings {
		listings = append(listings, toLookupResponse(lr))
	}

	res := dto.ResolveResponse{
		Extraction: toExtractResponse(resolved.Extraction),
		Listings:   listings,
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toLookupResponse(result ports.LookupResult) dto.LookupResponse {
	res := dto.LookupResponse{
		Success: result.Found,
		Reason:  result.Reason,
	}
	if result.Found {
		l := result.Listing
		res.Listing = &dto.ListingResponse{
			MLSNumber:     l.MLSNumber,
			Address:       l.Address,
			Price:         l.Price,
			Bedrooms:      l.Bedrooms,
			Bathrooms:     l.Bathrooms,
			SquareFootage: l.SquareFootage,
			PropertyType:  l.PropertyType,
			ResolvedAt:    l.ResolvedAt,
		}
	}
	return res
}
