package api

import (
	"net/http"

	"showing-route-service/internal/api/handlers"
	"showing-route-service/internal/ports"
	"showing-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	planner *services.RoutePlanner,
	lookup *services.ListingLookupService,
	extractor ports.TextExtractor,
	defaultOffice string,
) http.Handler {
	mux := http.NewServeMux()

	addressHandler := &handlers.AddressHandler{}
	extractHandler := &handlers.ExtractHandler{}
	planHandler := &handlers.PlanHandler{
		Planner:       planner,
		DefaultOffice: defaultOffice,
	}
	listingHandler := &handlers.ListingHandler{
		Lookup:    lookup,
		Extractor: extractor,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/addresses/normalize", addressHandler.Normalize)
	mux.HandleFunc("/documents/extract", extractHandler.Extract)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/listings/resolve", listingHandler.Resolve)
	mux.HandleFunc("/listings/", listingHandler.Get)

	return loggingMiddleware(mux)
}
