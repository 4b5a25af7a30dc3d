package validators

import (
	"fmt"
	"strings"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

func (v *propertyValidator) ValidateCreate(fields *models.PropertyFields, attrs *models.Attributes) error {
	if fields == nil {
		return fmt.Errorf("%w: property fields are required", apperrors.ErrInvalidInput)
	}
	if err := structErr(fields); err != nil {
		return err
	}
	if fields.Price.IsNegative() {
		return fmt.Errorf("%w: price must be at least 0", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(fields.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	return validateAttributes(attrs)
}

func (v *propertyValidator) ValidateUpdate(upd *models.RecordUpdate, attrs *models.Attributes) error {
	if upd != nil {
		if err := structErr(upd); err != nil {
			return err
		}
		if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
			return fmt.Errorf("%w: title must not be empty", apperrors.ErrInvalidInput)
		}
		if upd.Price != nil && upd.Price.IsNegative() {
			return fmt.Errorf("%w: price must be at least 0", apperrors.ErrInvalidInput)
		}
	}
	return validateAttributes(attrs)
}

func (v *propertyValidator) ValidateSearch(filter *models.SearchFilter) error {
	if filter == nil {
		return nil
	}
	if err := structErr(filter); err != nil {
		return err
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return fmt.Errorf("%w: min_price must not exceed max_price", apperrors.ErrInvalidInput)
	}
	return nil
}

func validateAttributes(attrs *models.Attributes) error {
	if attrs == nil {
		return nil
	}
	if err := structErr(attrs); err != nil {
		return err
	}
	for key := range attrs.Extra {
		if err := validateExtraKey(key); err != nil {
			return err
		}
	}
	return nil
}

// extra keys become top-level document fields, so they must be plain names
func validateExtraKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: attribute keys must not be empty", apperrors.ErrInvalidInput)
	case models.IsReservedDocumentKey(key):
		return fmt.Errorf("%w: attribute key %q is reserved", apperrors.ErrInvalidInput, key)
	case strings.HasPrefix(key, "$") || strings.Contains(key, "."):
		return fmt.Errorf("%w: attribute key %q must not start with '$' or contain '.'", apperrors.ErrInvalidInput, key)
	}
	return nil
}
