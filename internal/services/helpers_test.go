package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/transformers"
	"realestate-listings/internal/validators"
	"realestate-listings/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
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

func seedUser(t *testing.T, db *gorm.DB, email string) string {
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
	return user.ID
}

func newTestService(records repositories.RelationalPropertyStore, documents repositories.DocumentPropertyStore) *PropertyService {
	return NewPropertyService(
		records,
		documents,
		nil,
		nil,
		transformers.NewPropertyTransformer(),
		transformers.NewAddressTransformer(),
		validators.NewPropertyValidator(),
		5*time.Second,
	)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func lakeviewFields() models.PropertyFields {
	return models.PropertyFields{
		Title:        "Lakeview",
		PropertyType: models.PropertyTypeHouse,
		Price:        decimal.RequireFromString("200000.00"),
		Status:       models.StatusAvailable,
	}
}

func lakeviewAttributes() models.Attributes {
	return models.Attributes{
		Location: &models.Location{
			Address:     "12 Lake Rd",
			Coordinates: models.Coordinates{Lat: 1.0, Lng: 2.0},
		},
	}
}

// memDocuments is an in-memory DocumentPropertyStore keyed by back reference.
type memDocuments struct {
	mu   sync.Mutex
	docs map[string]*models.PropertyDocument

	insertErr error
	updateErr error
	deleteErr error
}

func newMemDocuments() *memDocuments {
	return &memDocuments{docs: make(map[string]*models.PropertyDocument)}
}

func (m *memDocuments) Insert(ctx context.Context, doc *models.PropertyDocument) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return "", m.insertErr
	}
	id, err := models.CanonicalID(doc.BackRef)
	if err != nil {
		return "", err
	}
	if _, ok := m.docs[id]; ok {
		return "", fmt.Errorf("%w: duplicate back reference %s", apperrors.ErrConstraintViolation, id)
	}
	stored := *doc
	stored.ID = primitive.NewObjectID()
	stored.BackRef = id
	m.docs[id] = &stored
	return stored.ID.Hex(), nil
}

func (m *memDocuments) FindByBackRef(ctx context.Context, id string) (*models.PropertyDocument, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (m *memDocuments) FindByBackRefs(ctx context.Context, ids []string) (map[string]*models.PropertyDocument, error) {
	out := make(map[string]*models.PropertyDocument, len(ids))
	for _, id := range ids {
		doc, err := m.FindByBackRef(ctx, id)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			out[doc.BackRef] = doc
		}
	}
	return out, nil
}

func (m *memDocuments) UpdateByBackRef(ctx context.Context, id string, attrs models.Attributes) (bool, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return false, m.updateErr
	}
	doc, ok := m.docs[id]
	if !ok {
		return false, nil
	}
	merged := models.NewPropertyDocument(doc.BackRef, doc.OwnerID, doc.Attributes().Merge(attrs), doc.CreatedAt)
	merged.ID = doc.ID
	m.docs[id] = merged
	return true, nil
}

func (m *memDocuments) DeleteByBackRef(ctx context.Context, id string) (bool, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	_, ok := m.docs[id]
	delete(m.docs, id)
	return ok, nil
}

func (m *memDocuments) ListBackRefs(ctx context.Context, cursor models.SweepCursor, limit int) ([]models.DocumentStamp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var stamps []models.DocumentStamp
	for _, doc := range m.docs {
		stamp := models.DocumentStamp{ID: doc.ID, BackRef: doc.BackRef, CreatedAt: doc.CreatedAt}
		if stampBefore(stamp, cursor) {
			stamps = append(stamps, stamp)
		}
	}
	sort.Slice(stamps, func(i, j int) bool {
		if !stamps[i].CreatedAt.Equal(stamps[j].CreatedAt) {
			return stamps[i].CreatedAt.After(stamps[j].CreatedAt)
		}
		return stamps[i].ID.Hex() > stamps[j].ID.Hex()
	})
	if len(stamps) > limit {
		stamps = stamps[:limit]
	}
	return stamps, nil
}

func stampBefore(s models.DocumentStamp, c models.SweepCursor) bool {
	if s.CreatedAt.Before(c.Before) {
		return true
	}
	return !c.BeforeID.IsZero() && s.CreatedAt.Equal(c.Before) && s.ID.Hex() < c.BeforeID.Hex()
}

func (m *memDocuments) Ping(ctx context.Context) error { return nil }

func (m *memDocuments) put(doc *models.PropertyDocument) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	m.docs[doc.BackRef] = doc
}

func (m *memDocuments) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
}

func (m *memDocuments) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
