package models

import (
	"time"

	"gorm.io/datatypes"
)

type IntentOperation string

const (
	IntentCreate IntentOperation = "create"
	IntentDelete IntentOperation = "delete"
)

// WriteIntent marks a composed write that has started in the relational store
// but has not yet been confirmed in the document store. It is written in the
// same transaction as the relational change and removed once both stores
// agree; leftovers are repaired by the reconciler.
type WriteIntent struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	PropertyID string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_write_intents_property_op"`
	Operation  IntentOperation `gorm:"type:varchar(10);not null;uniqueIndex:idx_write_intents_property_op"`
	Payload    datatypes.JSON  `gorm:"type:json"`
	CreatedAt  time.Time       `gorm:"not null;index"`
}

func (WriteIntent) TableName() string { return "property_write_intents" }

// IntentPayload is the context stored with an intent for diagnostics and repair.
type IntentPayload struct {
	OwnerID     string `json:"owner_id,omitempty"`
	DocumentRef string `json:"document_ref,omitempty"`
}
