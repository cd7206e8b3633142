package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"showing-route-service/internal/domain"
)

// InitSchema creates the listings table when it does not exist yet.
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS listings (
		mls_number     TEXT PRIMARY KEY,
		address        TEXT NOT NULL,
		price          TEXT NOT NULL DEFAULT '',
		bedrooms       TEXT NOT NULL DEFAULT '',
		bathrooms      TEXT NOT NULL DEFAULT '',
		square_footage TEXT NOT NULL DEFAULT '',
		property_type  TEXT NOT NULL DEFAULT '',
		resolved_at    TIMESTAMPTZ NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: create listings table: %w", err)
	}

	return nil
}

type seedListing struct {
	MLSNumber     string `json:"mls_number"`
	Address       string `json:"address"`
	Price         string `json:"price"`
	Bedrooms      string `json:"bedrooms"`
	Bathrooms     string `json:"bathrooms"`
	SquareFootage string `json:"square_footage"`
	PropertyType  string `json:"property_type"`
}

// SeedFromJSON loads demo listings for local runs. Existing rows are
// upserted so reseeding is idempotent.
func SeedFromJSON(db *sql.DB, seedPath string) error {
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("seed listings: read %q: %w", seedPath, err)
	}

	var seeds []seedListing
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("seed listings: parse %q: %w", seedPath, err)
	}

	repo := NewPgListingRepository(db)
	now := time.Now().UTC()

	for _, s := range seeds {
		listing := domain.Listing{
			MLSNumber:     s.MLSNumber,
			Address:       s.Address,
			Price:         s.Price,
			Bedrooms:      s.Bedrooms,
			Bathrooms:     s.Bathrooms,
			SquareFootage: s.SquareFootage,
			PropertyType:  s.PropertyType,
			ResolvedAt:    now,
		}
		if err := repo.Save(context.Background(), listing); err != nil {
			return fmt.Errorf("seed listings: %w", err)
		}
	}

	return nil
}
