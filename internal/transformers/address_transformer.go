package transformers

import (
	"strings"

	"realestate-listings/internal/models"
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// NormalizeAddressComponent lowercases, trims and collapses inner whitespace.
func (t *addressTransformer) NormalizeAddressComponent(input string) string {
	return strings.ToLower(strings.Join(strings.Fields(input), " "))
}

// MatchesLocation reports whether query is a case-insensitive substring of
// the address or the street address. An empty query matches everything; a
// missing location matches nothing else.
func (t *addressTransformer) MatchesLocation(loc *models.Location, query string) bool {
	q := t.NormalizeAddressComponent(query)
	if q == "" {
		return true
	}
	if loc == nil {
		return false
	}
	return strings.Contains(t.NormalizeAddressComponent(loc.Address), q) ||
		strings.Contains(t.NormalizeAddressComponent(loc.StreetAddress), q)
}
