package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "realestate-listings/internal/errors"
)

// NewID returns a fresh canonical identifier.
func NewID() string {
	return uuid.NewString()
}

// CanonicalID normalizes an identifier to the lowercase hyphenated UUID form
// used as primary key and as the document back-reference. Anything that does
// not parse is rejected so lookups never silently miss.
func CanonicalID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%q: %w", raw, apperrors.ErrInvalidID)
	}
	return id.String(), nil
}
