package domain

import "time"

// A resolved real-estate listing keyed by its MLS number.
// ResolvedAt records when the external lookup service answered.
type Listing struct {
	MLSNumber     string
	Address       string
	Price         string
	Bedrooms      string
	Bathrooms     string
	SquareFootage string
	PropertyType  string
	ResolvedAt    time.Time
}
