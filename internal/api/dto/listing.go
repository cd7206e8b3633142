package dto

import "time"

type ListingResponse struct {
	MLSNumber     string    `json:"mls_number"`
	Address       string    `json:"address"`
	Price         string    `json:"price,omitempty"`
	Bedrooms      string    `json:"bedrooms,omitempty"`
	Bathrooms     string    `json:"bathrooms,omitempty"`
	SquareFootage string    `json:"square_footage,omitempty"`
	PropertyType  string    `json:"property_type,omitempty"`
	ResolvedAt    time.Time `json:"resolved_at"`
}

type LookupResponse struct {
	Success bool             `json:"success"`
	Reason  string           `json:"reason,omitempty"`
	Listing *ListingResponse `json:"listing,omitempty"`
}

type ResolveRequest struct {
	Text        string `json:"text"`
	DocumentURL string `json:"document_url"`
}

type ResolveResponse struct {
	Extraction ExtractResponse  `json:"extraction"`
	Listings   []LookupResponse `json:"listings"`
}
