package services

import (
	"regexp"
	"strings"

	"showing-route-service/internal/domain"
)

// candidateMatcher pairs a compiled pattern with the submatch group carrying
// the candidate value. Matchers are applied in slice order; dedup happens in
// a separate pass so each matcher stays testable in isolation.
type candidateMatcher struct {
	re    *regexp.Regexp
	group int
}

func (m candidateMatcher) find(text string) []string {
	matches := m.re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, sm := range matches {
		out = append(out, strings.TrimSpace(sm[m.group]))
	}
	return out
}

// addressMatcher builds a display string from several submatch groups.
type addressMatcher struct {
	re     *regexp.Regexp
	groups []int
}

func (m addressMatcher) find(text string) []string {
	matches := m.re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, sm := range matches {
		parts := make([]string, 0, len(m.groups))
		for _, g := range m.groups {
			if v := strings.TrimSpace(sm[g]); v != "" {
				parts = append(parts, v)
			}
		}
		out = append(out, strings.Join(parts, ", "))
	}
	return out
}

const mlsBody = `[A-Za-z]\d{7,8}(?:-[A-Za-z])?`

// mlsMatchers recognize letter-prefixed listing identifiers, labeled forms
// first so labeled occurrences set the insertion order.
var mlsMatchers = []candidateMatcher{
	{re: regexp.MustCompile(`(?i)\bMLS\s*(?:#:|#|:)?\s*(` + mlsBody + `)`), group: 1},
	{re: regexp.MustCompile(`(?i)\b(?:Listing|Property|Reference)\s*(?:#:|#|:)?\s*(` + mlsBody + `)`), group: 1},
	{re: regexp.MustCompile(`\b(` + mlsBody + `)\b`), group: 1},
}

const streetSuffixAlt = `(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Boulevard|Blvd|Lane|Ln|Court|Ct|Circle|Cir|Crescent|Cres|Place|Pl|Way|Terrace|Terr)`

const provinceAlt = `(?:Ontario|ON|Quebec|QC|British\s+Columbia|BC|Alberta|AB|Manitoba|MB|Saskatchewan|SK|Nova\s+Scotia|NS|New\s+Brunswick|NB|Newfoundland|NL|Prince\s+Edward\s+Island|PE)`

const streetLine = `((?:\d+\s*-\s*)?\d+\s+[A-Za-z]+(?:\s+[A-Za-z]+){0,3}?\s+` + streetSuffixAlt + `\b\.?)`

// addressMatchers are applied in decreasing specificity so fuller matches
// land before the bare street fallback.
var addressMatchers = []addressMatcher{
	{
		re:     regexp.MustCompile(`(?i)` + streetLine + `\s*,\s*([A-Za-z]+(?:\s+[A-Za-z]+)?)\s*,\s*(` + provinceAlt + `)\b`),
		groups: []int{1, 2, 3},
	},
	{
		re:     regexp.MustCompile(streetLine + `\s*,\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`),
		groups: []int{1, 2},
	},
	{
		re:     regexp.MustCompile(`(?i)` + streetLine),
		groups: []int{1},
	},
}

var (
	priceRe         = regexp.MustCompile(`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)
	bedroomsRe      = regexp.MustCompile(`(?i)\b(\d+)\s*bed(?:room)?s?\b`)
	bathroomsRe     = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*bath(?:room)?s?\b`)
	squareFootageRe = regexp.MustCompile(`(?i)\b(\d[\d,]*)\s*sq\.?\s*ft\.?\b`)
)

// propertyTypeVocab is checked in order; hyphenated and longer forms come
// before their substrings ("semi-detached" before "detached").
var propertyTypeVocab = []string{
	"semi-detached",
	"detached",
	"townhouse",
	"condominium",
	"condo",
	"apartment",
	"duplex",
	"triplex",
	"bungalow",
	"ranch",
	"colonial",
}

// ExtractPropertyData scans raw document text (OCR or PDF output, supplied
// externally) for MLS numbers, postal addresses, and secondary listing
// attributes. Absence of any match yields empty collections, not an error.
func ExtractPropertyData(raw string) domain.PropertyExtraction {
	return domain.PropertyExtraction{
		MLSNumbers: extractMLSNumbers(raw),
		Addresses:  extractAddresses(raw),
		Details:    extractDetails(raw),
	}
}

func extractMLSNumbers(raw string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range mlsMatchers {
		for _, cand := range m.find(raw) {
			cand = strings.ToUpper(cand)
			if _, ok := seen[cand]; ok {
				continue
			}
			seen[cand] = struct{}{}
			out = append(out, cand)
		}
	}
	return out
}

func extractAddresses(raw string) []string {
	accepted := []string{}
	for _, m := range addressMatchers {
		for _, cand := range m.find(raw) {
			if isSuppressedAddress(accepted, cand) {
				continue
			}
			accepted = append(accepted, cand)
		}
	}
	return accepted
}

// isSuppressedAddress applies the substring-containment rule against all
// accepted addresses, comparing suffix-canonicalized forms so "Main Street"
// and "Main St" collapse to one entry.
func isSuppressedAddress(accepted []string, cand string) bool {
	cc := canonicalAddressKey(cand)
	for _, a := range accepted {
		if domain.IsDuplicateAddress(canonicalAddressKey(a), cc) {
			return true
		}
	}
	return false
}

// canonicalAddressKey lowercases an address and abbreviates street suffix
// words so containment checks are insensitive to "Street" vs "St".
func canonicalAddressKey(address string) string {
	words := strings.Fields(strings.ToLower(address))
	for i, w := range words {
		trailing := ""
		if n := len(w); n > 0 && (w[n-1] == ',' || w[n-1] == '.') {
			trailing = w[n-1:]
			w = w[:n-1]
		}
		if abbr, ok := streetSuffixes[w]; ok {
			words[i] = strings.ToLower(abbr) + trailing
		}
	}
	return strings.Join(words, " ")
}

func extractDetails(raw string) domain.PropertyDetails {
	var d domain.PropertyDetails

	for _, m := range priceRe.FindAllString(raw, -1) {
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(m)
		d.Prices = append(d.Prices, cleaned)
	}

	if sm := bedroomsRe.FindStringSubmatch(raw); sm != nil {
		d.Bedrooms = sm[1]
	}
	if sm := bathroomsRe.FindStringSubmatch(raw); sm != nil {
		d.Bathrooms = sm[1]
	}
	if sm := squareFootageRe.FindStringSubmatch(raw); sm != nil {
		d.SquareFootage = strings.ReplaceAll(sm[1], ",", "")
	}

	lower := strings.ToLower(raw)
	for _, t := range propertyTypeVocab {
		if strings.Contains(lower, t) {
			d.PropertyType = t
			break
		}
	}

	return d
}

// mlsShapes are the two strict identifier shapes accepted by the lookup
// boundary: letter + 7-8 digits, or letter + 6-7 digits + dash + optional
// letter suffix.
var mlsShapes = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]\d{7,8}$`),
	regexp.MustCompile(`^[A-Z]\d{6,7}-[A-Z]?$`),
}

// IsValidMLSNumber classifies a string as a plausible MLS number for callers
// that filter extractor output before querying lookup services.
func IsValidMLSNumber(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, re := range mlsShapes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
