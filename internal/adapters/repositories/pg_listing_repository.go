package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"showing-route-service/internal/domain"
)

// Postgres-backed implementation of the ListingRepository port.
type PgListingRepository struct{ DB *sql.DB }

func NewPgListingRepository(db *sql.DB) *PgListingRepository {
	return &PgListingRepository{DB: db}
}

// Save inserts or updates a listing keyed by MLS number.
func (r *PgListingRepository) Save(ctx context.Context, listing domain.Listing) error {
	if r.DB == nil {
		return errors.New("pg listing repository: DB is nil")
	}
	if listing.MLSNumber == "" {
		return errors.New("save listing: mls number must not be empty")
	}

	query := `
	INSERT INTO listings (
		mls_number, address, price, bedrooms, bathrooms,
		square_footage, property_type, resolved_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (mls_number) DO UPDATE
	SET address        = EXCLUDED.address,
		price          = EXCLUDED.price,
		bedrooms       = EXCLUDED.bedrooms,
		bathrooms      = EXCLUDED.bathrooms,
		square_footage = EXCLUDED.square_footage,
		property_type  = EXCLUDED.property_type,
		resolved_at    = EXCLUDED.resolved_at;
	`
	if _, err := r.DB.ExecContext(
		ctx, query,
		listing.MLSNumber, listing.Address, listing.Price, listing.Bedrooms,
		listing.Bathrooms, listing.SquareFootage, listing.PropertyType, listing.ResolvedAt,
	); err != nil {
		return fmt.Errorf("save listing %s: %w", listing.MLSNumber, err)
	}

	return nil
}

// GetByMLS returns the stored listing and whether one exists.
func (r *PgListingRepository) GetByMLS(ctx context.Context, mlsNumber string) (domain.Listing, bool, error) {
	if r.DB == nil {
		return domain.Listing{}, false, errors.New("pg listing repository: DB is nil")
	}

	query := `
	SELECT mls_number, address, price, bedrooms, bathrooms,
		square_footage, property_type, resolved_at
	FROM listings
	WHERE mls_number = $1;
	`
	var l domain.Listing
	err := r.DB.QueryRowContext(ctx, query, mlsNumber).Scan(
		&l.MLSNumber, &l.Address, &l.Price, &l.Bedrooms, &l.Bathrooms,
		&l.SquareFootage, &l.PropertyType, &l.ResolvedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Listing{}, false, nil
	}
	if err != nil {
		return domain.Listing{}, false, fmt.Errorf("get listing %s: %w", mlsNumber, err)
	}

	return l, true, nil
}

// List returns all stored listings ordered by MLS number.
func (r *PgListingRepository) List(ctx context.Context) ([]domain.Listing, error) {
	if r.DB == nil {
		return nil, errors.New("pg listing repository: DB is nil")
	}

	query := `
	SELECT mls_number, address, price, bedrooms, bathrooms,
		square_footage, property_type, resolved_at
	FROM listings
	ORDER BY mls_number;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list listings: query listings table: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0, 64)
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.MLSNumber, &l.Address, &l.Price, &l.Bedrooms, &l.Bathrooms,
			&l.SquareFootage, &l.PropertyType, &l.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("list listings: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list listings: row iteration: %w", err)
	}

	return listings, nil
}
