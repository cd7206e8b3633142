package domain

// Secondary listing attributes recognized in free-form document text.
// All values are kept as display strings; numeric cleanup (comma and
// currency-symbol stripping) happens during extraction.
type PropertyDetails struct {
	Prices        []string
	Bedrooms      string
	Bathrooms     string
	SquareFootage string
	PropertyType  string
}

// Result of scanning raw document text for listing data.
// MLSNumbers and Addresses are deduplicated and preserve first-seen order.
// An extraction with no matches is a valid empty result, never an error.
type PropertyExtraction struct {
	MLSNumbers []string
	Addresses  []string
	Details    PropertyDetails
}
