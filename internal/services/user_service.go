package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"realestate-listings/internal/auth"
	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/validators"
	pwd "realestate-listings/pkg/auth"
	"realestate-listings/pkg/logger"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *auth.TokenDetails, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return nil, nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, nil, apperrors.ErrEmailTaken
	}

	hashed, err := pwd.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleTenant
	}
	user := &models.User{
		ID:             models.NewID(),
		Email:          email,
		HashedPassword: hashed,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		PhoneNumber:    req.PhoneNumber,
		Role:           role,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// a concurrent registration won the unique index
		if errors.Is(err, apperrors.ErrConstraintViolation) {
			return nil, nil, apperrors.ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, nil, err
	}
	logger.GlobalLogger.Printf("registered user %s", user.ID)
	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
	}
	if err := pwd.CheckPassword(user.HashedPassword, req.Password); err != nil {
		if errors.Is(err, pwd.ErrPasswordMismatch) {
			return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !user.IsActive {
		logger.GlobalLogger.Warnf("login attempt for inactive user %s", user.ID)
		return nil, fmt.Errorf("account disabled: %w", apperrors.ErrUnauthorized)
	}

	return s.issue(user)
}

// Me returns the stored profile for an authenticated user.
func (s *UserService) Me(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	return user, nil
}

func (s *UserService) issue(user *models.User) (*auth.TokenDetails, error) {
	token, err := auth.GenerateJWT(models.CurrentUser{ID: user.ID, Email: user.Email, Role: user.Role}, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
