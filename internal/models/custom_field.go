package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomFieldType string

const (
	FieldTypeText    CustomFieldType = "text"
	FieldTypeNumber  CustomFieldType = "number"
	FieldTypeDate    CustomFieldType = "date"
	FieldTypeBoolean CustomFieldType = "boolean"
)

// ValidFieldType reports whether s is one of the recognized field types.
func ValidFieldType(s string) bool {
	switch CustomFieldType(s) {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean:
		return true
	}
	return false
}

// CustomField is an admin-defined per-ticket attribute definition.
type CustomField struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	FieldType CustomFieldType `json:"fieldType" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (CustomField) TableName() string {
	return "custom_fields"
}

func (f *CustomField) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TicketCustomFieldValue holds at most one value per (ticket, field) pair.
type TicketCustomFieldValue struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	TicketID  uuid.UUID    `json:"ticketId" gorm:"type:uuid;not null;uniqueIndex:idx_ticket_field,priority:1"`
	FieldID   uuid.UUID    `json:"fieldId" gorm:"type:uuid;not null;uniqueIndex:idx_ticket_field,priority:2"`
	Field     *CustomField `json:"field,omitempty" gorm:"foreignKey:FieldID"`
	Value     *string      `json:"value" gorm:"type:text"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (TicketCustomFieldValue) TableName() string {
	return "ticket_custom_fields"
}

func (v *TicketCustomFieldValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
