package transformers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
)

// keys a caller may never change through an update
var immutableKeys = map[string]bool{
	"id":                 true,
	"owner_id":           true,
	"created_at":         true,
	"document_ref":       true,
	models.KeyBackRef:    true,
	models.KeyDocumentID: true,
}

var relationalKeys = map[string]bool{
	models.ColumnTitle:        true,
	models.ColumnPropertyType: true,
	models.ColumnPrice:        true,
	models.ColumnStatus:       true,
}

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

func (t *propertyTransformer) NewRecord(id, ownerID string, fields models.PropertyFields, now time.Time) *models.PropertyRecord {
	status := fields.Status
	if status == "" {
		status = models.StatusAvailable
	}
	return &models.PropertyRecord{
		ID:           id,
		OwnerID:      ownerID,
		Title:        fields.Title,
		PropertyType: fields.PropertyType,
		Price:        models.NormalizePrice(fields.Price),
		Status:       status,
		CreatedAt:    now,
	}
}

// ToEntity merges the relational row with its document. Identity, owner,
// pricing and timestamps always come from the row.
func (t *propertyTransformer) ToEntity(rec *models.PropertyRecord, doc *models.PropertyDocument) *models.PropertyEntity {
	entity := &models.PropertyEntity{
		ID:           rec.ID,
		OwnerID:      rec.OwnerID,
		Title:        rec.Title,
		PropertyType: rec.PropertyType,
		Price:        rec.Price,
		Status:       rec.Status,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.DocumentRef != nil {
		entity.DocumentRef = *rec.DocumentRef
	}
	if doc != nil {
		entity.Attributes = doc.Attributes()
	}
	return entity
}

// SplitUpdate partitions a partial update into the relational columns and the
// document attributes. Immutable keys and nulls for relational keys are rejected.
func (t *propertyTransformer) SplitUpdate(partial map[string]interface{}) (models.RecordUpdate, models.Attributes, error) {
	var upd models.RecordUpdate
	var attrs models.Attributes

	relational := make(map[string]interface{})
	document := make(map[string]interface{})
	for key, value := range partial {
		switch {
		case immutableKeys[key]:
			return upd, attrs, fmt.Errorf("%w: %s cannot be updated", apperrors.ErrInvalidInput, key)
		case relationalKeys[key]:
			if value == nil {
				return upd, attrs, fmt.Errorf("%w: %s must not be null", apperrors.ErrInvalidInput, key)
			}
			relational[key] = value
		default:
			document[key] = value
		}
	}

	if len(relational) > 0 {
		if err := remarshal(relational, &upd); err != nil {
			return upd, attrs, err
		}
	}
	if len(document) > 0 {
		if err := remarshal(document, &attrs); err != nil {
			return upd, attrs, err
		}
	}
	return upd, attrs, nil
}

func remarshal(in map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}
