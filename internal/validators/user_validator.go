package validators

import (
	"fmt"
	"regexp"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
)

var phonePattern = regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{10}$`)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	if err := structErr(req); err != nil {
		return err
	}
	if req.PhoneNumber != "" && !phonePattern.MatchString(req.PhoneNumber) {
		return fmt.Errorf("%w: invalid phone format", apperrors.ErrInvalidInput)
	}
	return nil
}

func (v *userValidator) ValidateLogin(req *models.LoginRequest) error {
	return structErr(req)
}
