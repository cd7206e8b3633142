package domain

import "strings"

// Structured postal address fields parsed from a location slug.
// StreetName holds capitalized words ("Bay"), StreetType holds the canonical
// suffix abbreviation ("St"). City is empty when parsing never reached a
// recognizable locality token.
type AddressComponents struct {
	UnitNumber      string
	StreetNumber    string
	StreetName      string
	StreetType      string
	StreetDirection string
	City            string
	Province        string
}

// Formatted renders the canonical display string for the address:
// "908 - 15 BAY ST, Toronto, Ontario". The street portion is uppercased;
// city and province are appended only when a city was detected.
func (a AddressComponents) Formatted() string {
	street := make([]string, 0, 5)
	if a.UnitNumber != "" {
		street = append(street, a.UnitNumber, "-")
	}
	if a.StreetNumber != "" {
		street = append(street, a.StreetNumber)
	}
	if a.StreetName != "" {
		street = append(street, strings.ToUpper(a.StreetName))
	}
	if a.StreetType != "" {
		street = append(street, strings.ToUpper(a.StreetType))
	}
	if a.StreetDirection != "" {
		street = append(street, strings.ToUpper(a.StreetDirection))
	}

	out := strings.Join(street, " ")
	if a.City != "" {
		province := a.Province
		if province == "" {
			province = "Ontario"
		}
		out += ", " + a.City + ", " + province
	}

	return strings.TrimSpace(out)
}

// IsDuplicateAddress reports whether two formatted addresses refer to the
// same location under the substring-containment rule: one address being a
// case-insensitive substring of the other.
func IsDuplicateAddress(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
