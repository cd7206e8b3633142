package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"showing-route-service/internal/domain"
	"showing-route-service/internal/ports"
)

// maxConcurrentLookups bounds resolver fan-out for batch resolution.
const maxConcurrentLookups = 5

// ListingLookupService chains extractor output into the external resolution
// service: cache first, then resolver, then the persistent listing store.
// Cache and Repo are optional; a nil port is skipped.
type ListingLookupService struct {
	Resolver ports.ListingResolver
	Cache    ports.LookupCache
	Repo     ports.ListingRepository
}

func NewListingLookupService(resolver ports.ListingResolver, cache ports.LookupCache, repo ports.ListingRepository) *ListingLookupService {
	return &ListingLookupService{
		Resolver: resolver,
		Cache:    cache,
		Repo:     repo,
	}
}

// Lookup resolves a single MLS number. Identifiers that fail the strict
// shape check are rejected before any network call.
func (s *ListingLookupService) Lookup(ctx context.Context, mlsNumber string) (ports.LookupResult, error) {
	mls := strings.ToUpper(strings.TrimSpace(mlsNumber))
	if !IsValidMLSNumber(mls) {
		return ports.LookupResult{}, fmt.Errorf("lookup listing: %q is not a valid MLS number", mlsNumber)
	}

	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, mls)
		if err != nil {
			// Cache failures degrade to a resolver call.
			log.Printf("lookup cache read failed mls=%s err=%v", mls, err)
		} else if ok {
			return cached, nil
		}
	}

	result, err := s.Resolver.Lookup(ctx, mls)
	if err != nil {
		return ports.LookupResult{}, fmt.Errorf("lookup listing %s: %w", mls, err)
	}

	if result.Found && s.Repo != nil {
		if err := s.Repo.Save(ctx, result.Listing); err != nil {
			log.Printf("listing save failed mls=%s err=%v", mls, err)
		}
	}
	if s.Cache != nil {
		if err := s.Cache.Put(ctx, mls, result); err != nil {
			log.Printf("lookup cache write failed mls=%s err=%v", mls, err)
		}
	}

	return result, nil
}

// ResolveFromText extracts listing data from raw document text and resolves
// the extraction's MLS candidates.
func (s *ListingLookupService) ResolveFromText(ctx context.Context, raw string) (ExtractionWithListings, error) {
	extraction := ExtractPropertyData(raw)

	results, err := s.ResolveExtraction(ctx, extraction)
	if err != nil {
		return ExtractionWithListings{}, err
	}

	return ExtractionWithListings{Extraction: extraction, Listings: results}, nil
}

// ResolveExtraction filters an extraction's MLS candidates through the
// strict shape check and resolves the survivors with bounded concurrency.
// Results keep candidate order.
func (s *ListingLookupService) ResolveExtraction(ctx context.Context, extraction domain.PropertyExtraction) ([]ports.LookupResult, error) {
	candidates := make([]string, 0, len(extraction.MLSNumbers))
	for _, mls := range extraction.MLSNumbers {
		if IsValidMLSNumber(mls) {
			candidates = append(candidates, mls)
		}
	}
	if len(candidates) == 0 {
		return []ports.LookupResult{}, nil
	}

	results := make([]ports.LookupResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, mls := range candidates {
		i, mls := i, mls
		g.Go(func() error {
			result, err := s.Lookup(ctx, mls)
			if err != nil {
				return fmt.Errorf("resolve from text: %w", err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ExtractionWithListings pairs an extraction result with any listings
// resolved from its MLS candidates.
type ExtractionWithListings struct {
	Extraction domain.PropertyExtraction
	Listings   []ports.LookupResult
}
