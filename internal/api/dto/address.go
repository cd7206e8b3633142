package dto

type NormalizeRequest struct {
	Slug string `json:"slug"`
}

type NormalizeResponse struct {
	UnitNumber      string `json:"unit_number,omitempty"`
	StreetNumber    string `json:"street_number,omitempty"`
	StreetName      string `json:"street_name"`
	StreetType      string `json:"street_type,omitempty"`
	StreetDirection string `json:"street_direction,omitempty"`
	City            string `json:"city,omitempty"`
	Province        string `json:"province,omitempty"`
	Formatted       string `json:"formatted_address"`
}
