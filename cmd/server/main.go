package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"showing-route-service/internal/adapters/cache"
	"showing-route-service/internal/adapters/directions"
	"showing-route-service/internal/adapters/extraction"
	"showing-route-service/internal/adapters/repositories"
	"showing-route-service/internal/adapters/resolver"
	"showing-route-service/internal/api"
	"showing-route-service/internal/config"
	"showing-route-service/internal/platform/db"
	"showing-route-service/internal/ports"
	"showing-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Google Maps, Redis, Postgres, HTTP services)
// behind ports and starts the HTTP server. Every external collaborator is
// optional: without a maps key the planner simulates timings, without Redis
// and Postgres the lookup chain skips caching and persistence.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	office := config.Get("OFFICE_ADDRESS", "100 QUEEN ST W, Toronto, Ontario")

	var provider ports.DirectionsProvider
	if key := strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")); key != "" {
		p, err := directions.NewGoogleDirectionsProvider(key)
		if err != nil {
			log.Fatal(err)
		}
		provider = p
	} else {
		log.Println("GOOGLE_MAPS_API_KEY not set; plans will use simulated travel times")
	}
	planner := services.NewRoutePlanner(provider)

	var lookupCache ports.LookupCache
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		lookupCache = cache.NewRedisLookupCache(client, 6*time.Hour)
	}

	var repo ports.ListingRepository
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := repositories.InitSchema(pg); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPgListingRepository(pg)
	}

	resolverURL := strings.TrimSpace(os.Getenv("RESOLVER_BASE_URL"))
	if resolverURL == "" {
		log.Fatal("RESOLVER_BASE_URL is required")
	}
	listingResolver, err := resolver.NewHTTPListingResolver(resolverURL, os.Getenv("RESOLVER_API_KEY"))
	if err != nil {
		log.Fatal(err)
	}
	lookup := services.NewListingLookupService(listingResolver, lookupCache, repo)

	var textExtractor ports.TextExtractor
	if extractorURL := strings.TrimSpace(os.Getenv("EXTRACTOR_BASE_URL")); extractorURL != "" {
		te, err := extraction.NewHTTPTextExtractor(extractorURL, os.Getenv("EXTRACTOR_API_KEY"))
		if err != nil {
			log.Fatal(err)
		}
		textExtractor = te
	}

	router := api.NewRouter(planner, lookup, textExtractor, office)

	// Timeouts allow for directions and OCR latency on cold requests.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
