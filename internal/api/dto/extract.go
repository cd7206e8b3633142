package dto

type ExtractRequest struct {
	Text string `json:"text"`
}

type PropertyDetailsResponse struct {
	Prices        []string `json:"prices,omitempty"`
	Bedrooms      string   `json:"bedrooms,omitempty"`
	Bathrooms     string   `json:"bathrooms,omitempty"`
	SquareFootage string   `json:"square_footage,omitempty"`
	PropertyType  string   `json:"property_type,omitempty"`
}

type ExtractResponse struct {
	MLSNumbers []string                `json:"mls_numbers"`
	Addresses  []string                `json:"addresses"`
	Details    PropertyDetailsResponse `json:"property_details"`
}
