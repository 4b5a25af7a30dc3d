package validators

import (
	"realestate-listings/internal/models"
)

type PropertyValidator interface {
	ValidateCreate(fields *models.PropertyFields, attrs *models.Attributes) error
	ValidateUpdate(upd *models.RecordUpdate, attrs *models.Attributes) error
	ValidateSearch(filter *models.SearchFilter) error
}

type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(req *models.LoginRequest) error
}
