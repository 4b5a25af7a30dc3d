package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"realestate-listings/internal/models"

	"gorm.io/gorm"
)

const usersTable = "users"

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail returns nil, nil when no user has the address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		observeSQL("find_by_email", usersTable, start, nil)
		return nil, nil
	}
	observeSQL("find_by_email", usersTable, start, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	var user models.User
	err = r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		observeSQL("find_by_id", usersTable, start, nil)
		return nil, nil
	}
	observeSQL("find_by_id", usersTable, start, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	start := time.Now()
	err := r.db.WithContext(ctx).Create(user).Error
	observeSQL("create", usersTable, start, err)
	return classify(err)
}
