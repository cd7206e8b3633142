package ports

import (
	"context"

	"showing-route-service/internal/domain"
)

// Outcome of resolving an MLS number against the lookup service.
// Found=false with a Reason is a valid answer, not an error; errors are
// reserved for transport and protocol failures.
type LookupResult struct {
	Found   bool
	Reason  string
	Listing domain.Listing
}

// Port: a boundary for resolving MLS numbers to listings via an external
// address/MLS resolution service.
type ListingResolver interface {
	Lookup(ctx context.Context, mlsNumber string) (LookupResult, error)
}
