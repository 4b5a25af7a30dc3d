package models

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAgent  Role = "agent"
	RoleBuyer  Role = "buyer"
	RoleTenant Role = "tenant"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID             string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email          string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"type:varchar(255);not null"`
	FirstName      string    `json:"first_name" gorm:"type:varchar(100)"`
	LastName       string    `json:"last_name" gorm:"type:varchar(100)"`
	PhoneNumber    string    `json:"phone_number,omitempty" gorm:"type:varchar(20)"`
	Role           Role      `json:"role" gorm:"type:varchar(20);not null;default:tenant"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// CurrentUser is the identity resolved from a bearer token.
type CurrentUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u CurrentUser) IsAdmin() bool { return u.Role == RoleAdmin }

type RegisterRequest struct {
	Email       string `json:"email" binding:"required" validate:"required,email,max=255"`
	Password    string `json:"password" binding:"required" validate:"required,min=6,max=100"`
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Role        Role   `json:"role" validate:"omitempty,oneof=owner agent buyer tenant"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6,max=100"`
}
