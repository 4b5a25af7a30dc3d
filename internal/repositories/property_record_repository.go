package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/utils"
	"realestate-listings/pkg/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const propertiesTable = "properties"
const intentsTable = "property_write_intents"

type propertyRecordRepository struct {
	db *gorm.DB
}

func NewPropertyRecordRepository(db *gorm.DB) RelationalPropertyStore {
	return &propertyRecordRepository{db: db}
}

func observeSQL(op, table string, start time.Time, err error) {
	utils.RecordSQLOperationDuration(op, table, start)
	if err != nil {
		utils.RecordSQLError(op, table)
	}
}

// classify maps integrity failures onto ErrConstraintViolation and leaves
// everything else untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if database.IsConstraintViolation(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrConstraintViolation, err)
	}
	return err
}

func (r *propertyRecordRepository) Insert(ctx context.Context, rec *models.PropertyRecord, intent *models.WriteIntent) error {
	id, err := models.CanonicalID(rec.ID)
	if err != nil {
		return err
	}
	ownerID, err := models.CanonicalID(rec.OwnerID)
	if err != nil {
		return err
	}
	rec.ID, rec.OwnerID = id, ownerID
	rec.Price = models.NormalizePrice(rec.Price)

	start := time.Now()
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		if intent != nil {
			intent.PropertyID = id
			if err := tx.Create(intent).Error; err != nil {
				return err
			}
		}
		return nil
	})
	observeSQL("insert", propertiesTable, start, err)
	return classify(err)
}

func (r *propertyRecordRepository) Get(ctx context.Context, id string) (*models.PropertyRecord, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	var rec models.PropertyRecord
	err = r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		observeSQL("get", propertiesTable, start, nil)
		return nil, nil
	}
	observeSQL("get", propertiesTable, start, err)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *propertyRecordRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.PropertyRecord, error) {
	ownerID, err := models.CanonicalID(ownerID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	var recs []models.PropertyRecord
	err = r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id").
		Find(&recs).Error
	observeSQL("list_by_owner", propertiesTable, start, err)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *propertyRecordRepository) Update(ctx context.Context, id string, upd models.RecordUpdate) (*models.PropertyRecord, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	var rec models.PropertyRecord
	found := true
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		if upd.IsEmpty() {
			return nil
		}
		if err := tx.Model(&models.PropertyRecord{}).Where("id = ?", id).Updates(upd.Columns()).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Take(&rec).Error
	})
	observeSQL("update", propertiesTable, start, err)
	if err != nil {
		return nil, classify(err)
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

func (r *propertyRecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return false, err
	}
	start := time.Now()
	var deleted bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.PropertyRecord{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return tx.Where("property_id = ?", id).Delete(&models.WriteIntent{}).Error
	})
	observeSQL("delete", propertiesTable, start, err)
	if err != nil {
		return false, classify(err)
	}
	return deleted, nil
}

func (r *propertyRecordRepository) Filter(ctx context.Context, filter models.SearchFilter) ([]models.PropertyRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.PropertyRecord{})
	if filter.PropertyType != nil {
		query = query.Where("property_type = ?", *filter.PropertyType)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", models.NormalizePrice(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", models.NormalizePrice(*filter.MaxPrice))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	start := time.Now()
	var recs []models.PropertyRecord
	err := query.Order("created_at DESC").Order("id").Find(&recs).Error
	observeSQL("filter", propertiesTable, start, err)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *propertyRecordRepository) LinkDocument(ctx context.Context, id, documentRef string) error {
	id, err := models.CanonicalID(id)
	if err != nil {
		return err
	}
	start := time.Now()
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PropertyRecord{}).Where("id = ?", id).Update("document_ref", documentRef)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("link document to property %s: %w", id, apperrors.ErrNotFound)
		}
		return tx.Where("property_id = ? AND operation = ?", id, models.IntentCreate).Delete(&models.WriteIntent{}).Error
	})
	observeSQL("link_document", propertiesTable, start, err)
	return classify(err)
}

func (r *propertyRecordRepository) AddIntent(ctx context.Context, intent *models.WriteIntent) error {
	id, err := models.CanonicalID(intent.PropertyID)
	if err != nil {
		return err
	}
	intent.PropertyID = id
	start := time.Now()
	err = r.db.WithContext(ctx).Create(intent).Error
	observeSQL("add_intent", intentsTable, start, err)
	return classify(err)
}

func (r *propertyRecordRepository) ClearIntent(ctx context.Context, propertyID string, op models.IntentOperation) error {
	id, err := models.CanonicalID(propertyID)
	if err != nil {
		return err
	}
	start := time.Now()
	err = r.db.WithContext(ctx).Where("property_id = ? AND operation = ?", id, op).Delete(&models.WriteIntent{}).Error
	observeSQL("clear_intent", intentsTable, start, err)
	return err
}

// ResolveIntent removes the row and all of its intents, but only while the
// given intent still exists. The intent delete and the row delete share a
// transaction, so a write that finished and cleared its intent in the
// meantime keeps its row.
func (r *propertyRecordRepository) ResolveIntent(ctx context.Context, propertyID string, op models.IntentOperation) (bool, error) {
	id, err := models.CanonicalID(propertyID)
	if err != nil {
		return false, err
	}
	start := time.Now()
	var claimed bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("property_id = ? AND operation = ?", id, op).Delete(&models.WriteIntent{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		claimed = true
		if err := tx.Where("property_id = ?", id).Delete(&models.WriteIntent{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.PropertyRecord{}).Error
	})
	observeSQL("resolve_intent", intentsTable, start, err)
	if err != nil {
		return false, classify(err)
	}
	return claimed, nil
}

func (r *propertyRecordRepository) StaleIntents(ctx context.Context, before time.Time, limit int) ([]models.WriteIntent, error) {
	start := time.Now()
	var intents []models.WriteIntent
	err := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Order("created_at").
		Limit(limit).
		Find(&intents).Error
	observeSQL("stale_intents", intentsTable, start, err)
	if err != nil {
		return nil, err
	}
	return intents, nil
}

func (r *propertyRecordRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	start := time.Now()
	var found []string
	err := r.db.WithContext(ctx).Model(&models.PropertyRecord{}).Where("id IN ?", ids).Pluck("id", &found).Error
	observeSQL("existing_ids", propertiesTable, start, err)
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *propertyRecordRepository) Ping(ctx context.Context) error {
	return database.PingSQL(ctx, r.db)
}
