package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusRented    PropertyStatus = "rented"
	StatusSold      PropertyStatus = "sold"
)

// PriceScale is the number of fractional digits kept for prices.
const PriceScale = 2

// NormalizePrice rounds a price to the stored precision.
func NormalizePrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(PriceScale)
}

// PropertyRecord is the relational row: identity, owner, type, price, status,
// creation time and the link to the attribute document.
type PropertyRecord struct {
	ID           string          `gorm:"type:varchar(36);primaryKey"`
	OwnerID      string          `gorm:"type:varchar(36);not null;index"`
	Owner        *User           `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Title        string          `gorm:"type:varchar(255);not null"`
	PropertyType PropertyType    `gorm:"type:varchar(20);not null;index"`
	Price        decimal.Decimal `gorm:"type:decimal(15,2);not null;index"`
	Status       PropertyStatus  `gorm:"type:varchar(20);not null;default:available;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	DocumentRef  *string         `gorm:"type:varchar(24);uniqueIndex"`
}

func (PropertyRecord) TableName() string { return "properties" }

// Relational column names accepted in partial updates.
const (
	ColumnTitle        = "title"
	ColumnPropertyType = "property_type"
	ColumnPrice        = "price"
	ColumnStatus       = "status"
)

// PropertyFields are the relational-owned values supplied at creation.
type PropertyFields struct {
	Title        string          `json:"title" validate:"required,max=255"`
	PropertyType PropertyType    `json:"property_type" validate:"required,oneof=house apartment land commercial"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Status       PropertyStatus  `json:"status" validate:"omitempty,oneof=available rented sold"`
}

// RecordUpdate carries the relational partition of a partial update.
type RecordUpdate struct {
	Title        *string          `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	PropertyType *PropertyType    `json:"property_type,omitempty" validate:"omitempty,oneof=house apartment land commercial"`
	Price        *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status       *PropertyStatus  `json:"status,omitempty" validate:"omitempty,oneof=available rented sold"`
}

func (u RecordUpdate) IsEmpty() bool {
	return u.Title == nil && u.PropertyType == nil && u.Price == nil && u.Status == nil
}

// Columns returns the column/value map for a gorm Updates call.
func (u RecordUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Title != nil {
		cols[ColumnTitle] = *u.Title
	}
	if u.PropertyType != nil {
		cols[ColumnPropertyType] = *u.PropertyType
	}
	if u.Price != nil {
		cols[ColumnPrice] = NormalizePrice(*u.Price)
	}
	if u.Status != nil {
		cols[ColumnStatus] = *u.Status
	}
	return cols
}

// Snapshot returns the update that would restore rec's current values for the
// columns touched by u.
func (u RecordUpdate) Snapshot(rec *PropertyRecord) RecordUpdate {
	var prev RecordUpdate
	if u.Title != nil {
		title := rec.Title
		prev.Title = &title
	}
	if u.PropertyType != nil {
		pt := rec.PropertyType
		prev.PropertyType = &pt
	}
	if u.Price != nil {
		price := rec.Price
		prev.Price = &price
	}
	if u.Status != nil {
		status := rec.Status
		prev.Status = &status
	}
	return prev
}

// PropertyEntity is the merged view returned to callers.
type PropertyEntity struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Title        string          `json:"title"`
	PropertyType PropertyType    `json:"property_type"`
	Price        decimal.Decimal `json:"price"`
	Status       PropertyStatus  `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	DocumentRef  string          `json:"document_ref"`
	Attributes   Attributes      `json:"attributes"`
}

// SearchFilter combines relational predicates with the document-side location match.
type SearchFilter struct {
	PropertyType *PropertyType    `form:"property_type" validate:"omitempty,oneof=house apartment land commercial"`
	MinPrice     *decimal.Decimal `form:"min_price" validate:"omitempty,gte=0"`
	MaxPrice     *decimal.Decimal `form:"max_price" validate:"omitempty,gte=0"`
	Status       *PropertyStatus  `form:"status" validate:"omitempty,oneof=available rented sold"`
	Location     string           `form:"location" validate:"max=255"`
}
