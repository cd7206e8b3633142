package services

import (
	"fmt"
	"strings"

	"showing-route-service/internal/domain"
)

// ParseError reports why a slug could not be normalized into an address.
// Ambiguous input never produces a ParseError; only structurally unusable
// token streams do.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "normalize address: " + e.Reason
}

const defaultProvince = "Ontario"

// streetSuffixes maps slug tokens (full words and their abbreviations) to
// canonical street type abbreviations.
var streetSuffixes = map[string]string{
	"avenue":    "Ave",
	"ave":       "Ave",
	"street":    "St",
	"st":        "St",
	"road":      "Rd",
	"rd":        "Rd",
	"drive":     "Dr",
	"dr":        "Dr",
	"boulevard": "Blvd",
	"blvd":      "Blvd",
	"lane":      "Ln",
	"ln":        "Ln",
	"court":     "Ct",
	"crt":       "Ct",
	"ct":        "Ct",
	"circle":    "Cir",
	"cir":       "Cir",
	"crescent":  "Cres",
	"cres":      "Cres",
	"place":     "Pl",
	"pl":        "Pl",
	"way":       "Way",
	"terrace":   "Terr",
	"terr":      "Terr",
}

// multiWordCities are matched greedily before single-token city detection.
var multiWordCities = map[string]string{
	"richmond hill": "Richmond Hill",
	"north york":    "North York",
	"east york":     "East York",
}

// knownCities are high-confidence single-token locality matches.
var knownCities = map[string]string{
	"toronto":     "Toronto",
	"mississauga": "Mississauga",
	"brampton":    "Brampton",
	"vaughan":     "Vaughan",
	"markham":     "Markham",
	"oshawa":      "Oshawa",
	"scarborough": "Scarborough",
	"etobicoke":   "Etobicoke",
	"hamilton":    "Hamilton",
	"oakville":    "Oakville",
	"burlington":  "Burlington",
	"milton":      "Milton",
	"pickering":   "Pickering",
	"ajax":        "Ajax",
	"whitby":      "Whitby",
	"newmarket":   "Newmarket",
	"aurora":      "Aurora",
	"barrie":      "Barrie",
	"ottawa":      "Ottawa",
	"london":      "London",
	"kitchener":   "Kitchener",
	"waterloo":    "Waterloo",
	"guelph":      "Guelph",
}

// directionTokens are compass suffixes that may trail a street type
// ("KING ST E").
var directionTokens = map[string]string{
	"e": "E",
	"w": "W",
	"n": "N",
	"s": "S",
}

// NormalizeSlug splits a hyphen/slash-delimited location slug into lowercase
// word tokens and normalizes them.
func NormalizeSlug(slug string) (domain.AddressComponents, error) {
	tokens := strings.FieldsFunc(strings.ToLower(slug), func(r rune) bool {
		return r == '-' || r == '/' || r == ' '
	})
	return NormalizeSlugTokens(tokens)
}

// NormalizeSlugTokens parses an ordered sequence of lowercase word tokens
// into structured address fields.
//
// Tokens are consumed left to right: an optional unit/street number pair,
// street name words up to a recognized street suffix or locality start, an
// optional compass direction, then the city. Unrecognized trailing tokens
// are treated as neighborhood noise and dropped from the formatted output.
func NormalizeSlugTokens(tokens []string) (domain.AddressComponents, error) {
	if len(tokens) < 3 {
		return domain.AddressComponents{}, &ParseError{
			Reason: fmt.Sprintf("need at least 3 location tokens, got %d", len(tokens)),
		}
	}

	var c domain.AddressComponents
	i := 0

	// A slug leading with two numbers carries a unit number before the
	// street number.
	if isNumeric(tokens[0]) && isNumeric(tokens[1]) {
		c.UnitNumber = tokens[0]
		c.StreetNumber = tokens[1]
		i = 2
	} else if isNumeric(tokens[0]) {
		c.StreetNumber = tokens[0]
		i = 1
	}

	// Consume street name words until a street suffix or a locality start.
	var nameParts []string
	for i < len(tokens) {
		tok := tokens[i]
		if abbr, ok := streetSuffixes[tok]; ok {
			c.StreetType = abbr
			i++
			break
		}
		if isLocalityStart(tokens, i) {
			break
		}
		nameParts = append(nameParts, capitalizeToken(tok))
		i++
	}

	if len(nameParts) == 0 {
		return domain.AddressComponents{}, &ParseError{
			Reason: "token stream exhausted before a street name was formed",
		}
	}
	c.StreetName = strings.Join(nameParts, " ")

	// A compass token right after the street type belongs to the street
	// portion when a known city still follows later in the stream
	// ("... STREET E ... OSHAWA").
	if i < len(tokens) {
		if dir, ok := directionTokens[tokens[i]]; ok && cityAppearsAfter(tokens, i+1) {
			c.StreetDirection = dir
			i++
		}
	}

	// Two-token localities win over single-token city matches.
	for j := i; j < len(tokens); j++ {
		if j+1 < len(tokens) {
			if city, ok := multiWordCities[tokens[j]+" "+tokens[j+1]]; ok {
				c.City = city
				break
			}
		}
		if city, ok := knownCities[tokens[j]]; ok {
			c.City = city
			break
		}
	}

	if c.City != "" {
		c.Province = defaultProvince
	}

	return c, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isLocalityStart reports whether the token at position i begins a
// recognized city name, either alone or as a two-token locality.
func isLocalityStart(tokens []string, i int) bool {
	if i+1 < len(tokens) {
		if _, ok := multiWordCities[tokens[i]+" "+tokens[i+1]]; ok {
			return true
		}
	}
	_, ok := knownCities[tokens[i]]
	return ok
}

func cityAppearsAfter(tokens []string, from int) bool {
	for j := from; j < len(tokens); j++ {
		if isLocalityStart(tokens, j) {
			return true
		}
	}
	return false
}

func capitalizeToken(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ValidateAddress is an optional pre-check for planner input. The planner
// itself does not validate; callers that want early rejection use this.
func ValidateAddress(address string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return &ParseError{Reason: "address is empty"}
	}
	if len(trimmed) <= 5 {
		return &ParseError{Reason: fmt.Sprintf("address %q is too short", trimmed)}
	}
	return nil
}
