package repositories

import (
	"testing"
	"time"

	"realestate-listings/internal/models"
	"realestate-listings/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(":memory:"), "error")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// one connection keeps a single in-memory database and its pragmas
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:             models.NewID(),
		Email:          email,
		HashedPassword: "x",
		Role:           models.RoleOwner,
		IsActive:       true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newRecord(ownerID, title string, pt models.PropertyType, price string) *models.PropertyRecord {
	return &models.PropertyRecord{
		ID:           models.NewID(),
		OwnerID:      ownerID,
		Title:        title,
		PropertyType: pt,
		Price:        decimal.RequireFromString(price),
		Status:       models.StatusAvailable,
		CreatedAt:    time.Now().UTC(),
	}
}
