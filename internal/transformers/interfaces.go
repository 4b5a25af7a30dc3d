package transformers

import (
	"time"

	"realestate-listings/internal/models"
)

type PropertyTransformer interface {
	NewRecord(id, ownerID string, fields models.PropertyFields, now time.Time) *models.PropertyRecord
	ToEntity(rec *models.PropertyRecord, doc *models.PropertyDocument) *models.PropertyEntity
	SplitUpdate(partial map[string]interface{}) (models.RecordUpdate, models.Attributes, error)
}

type AddressTransformer interface {
	NormalizeAddressComponent(input string) string
	MatchesLocation(loc *models.Location, query string) bool
}
