package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"showing-route-service/internal/domain"
	"showing-route-service/internal/platform/obs"
	"showing-route-service/internal/ports"
)

// HTTPListingResolver implements ListingResolver against the external
// address/MLS resolution service. Transient failures (network errors, 429,
// 5xx) retry with exponential backoff; a 404 is a clean not-found answer.
//
// The resolver is safe for concurrent use.
type HTTPListingResolver struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewHTTPListingResolver(baseURL, apiKey string) (*HTTPListingResolver, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("resolver base URL is empty")
	}

	return &HTTPListingResolver{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

// lookupResponse is the resolution service wire shape.
type lookupResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
	Address string `json:"address"`
	Details struct {
		Price         string `json:"price"`
		Bedrooms      string `json:"bedrooms"`
		Bathrooms     string `json:"bathrooms"`
		SquareFootage string `json:"square_footage"`
		PropertyType  string `json:"property_type"`
	} `json:"property_details"`
}

func (r *HTTPListingResolver) Lookup(ctx context.Context, mlsNumber string) (_ ports.LookupResult, err error) {
	defer obs.Time(ctx, "resolver.Lookup")(&err)

	if mlsNumber == "" {
		return ports.LookupResult{}, errors.New("lookup: mls number must be non-empty")
	}

	endpoint := fmt.Sprintf("%s/listings/%s", r.baseURL, url.PathEscape(mlsNumber))

	resp, err := r.doWithRetry(ctx, func() (*http.Request, error) {
		return r.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return ports.LookupResult{Found: false, Reason: "MLS number not found"}, nil
		}
		return ports.LookupResult{}, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	var lr lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return ports.LookupResult{}, fmt.Errorf("decode lookup response: %w", err)
	}

	if !lr.Success {
		reason := lr.Reason
		if reason == "" {
			reason = "lookup service reported no match"
		}
		return ports.LookupResult{Found: false, Reason: reason}, nil
	}

	return ports.LookupResult{
		Found: true,
		Listing: domain.Listing{
			MLSNumber:     strings.ToUpper(mlsNumber),
			Address:       lr.Address,
			Price:         lr.Details.Price,
			Bedrooms:      lr.Details.Bedrooms,
			Bathrooms:     lr.Details.Bathrooms,
			SquareFootage: lr.Details.SquareFootage,
			PropertyType:  lr.Details.PropertyType,
			ResolvedAt:    time.Now().UTC(),
		},
	}, nil
}
