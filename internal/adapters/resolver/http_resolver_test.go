package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestLookupSuccess(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"address": "908 - 15 BAY ST, Toronto, Ontario",
			"property_details": {
				"price": "899000",
				"bedrooms": "2",
				"bathrooms": "2",
				"square_footage": "850",
				"property_type": "condo"
			}
		}`))
	}))
	defer server.Close()

	r, err := NewHTTPListingResolver(server.URL, "secret-key")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	result, err := r.Lookup(context.Background(), "w12372194")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	if gotPath != "/listings/w12372194" {
		t.Errorf("request path = %q, want %q", gotPath, "/listings/w12372194")
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("authorization = %q, want bearer token", gotAuth)
	}

	if !result.Found {
		t.Fatal("expected found result")
	}
	if result.Listing.MLSNumber != "W12372194" {
		t.Errorf("mls = %q, want uppercased %q", result.Listing.MLSNumber, "W12372194")
	}
	if result.Listing.Address != "908 - 15 BAY ST, Toronto, Ontario" {
		t.Errorf("address = %q", result.Listing.Address)
	}
	if result.Listing.Price != "899000" || result.Listing.PropertyType != "condo" {
		t.Errorf("details = %+v", result.Listing)
	}
	if result.Listing.ResolvedAt.IsZero() {
		t.Error("resolved timestamp not set")
	}
}

func TestLookupNotFoundIsCleanResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such listing", http.StatusNotFound)
	}))
	defer server.Close()

	r, err := NewHTTPListingResolver(server.URL, "")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	result, err := r.Lookup(context.Background(), "W99999999")
	if err != nil {
		t.Fatalf("404 should not be an error, got: %v", err)
	}
	if result.Found {
		t.Error("expected not-found result")
	}
	if result.Reason == "" {
		t.Error("expected a reason on the not-found result")
	}
}

func TestLookupUnsuccessfulBodyCarriesReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "reason": "listing withdrawn"}`))
	}))
	defer server.Close()

	r, err := NewHTTPListingResolver(server.URL, "")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	result, err := r.Lookup(context.Background(), "W12372194")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Found {
		t.Error("expected not-found result")
	}
	if result.Reason != "listing withdrawn" {
		t.Errorf("reason = %q, want %q", result.Reason, "listing withdrawn")
	}
}

func TestLookupRetriesTransientFailures(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			http.Error(w, "try again later", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "address": "42 YONGE ST, Richmond Hill, Ontario"}`))
	}))
	defer server.Close()

	r, err := NewHTTPListingResolver(server.URL, "")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	result, err := r.Lookup(context.Background(), "N11858302")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !result.Found {
		t.Error("expected found result after retry")
	}
	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestLookupDoesNotRetryClientErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.Error(w, "bad identifier", http.StatusBadRequest)
	}))
	defer server.Close()

	r, err := NewHTTPListingResolver(server.URL, "")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	if _, err := r.Lookup(context.Background(), "W12372194"); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("attempts = %d, want 1 (400 is not retryable)", got)
	}
}

func TestNewHTTPListingResolverRejectsEmptyBaseURL(t *testing.T) {
	if _, err := NewHTTPListingResolver("   ", ""); err == nil {
		t.Error("expected error for blank base URL")
	}
}
