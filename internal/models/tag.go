package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TicketTag is the ticket<->tag association row. The pair is the identity.
type TicketTag struct {
	TicketID  uuid.UUID `json:"ticketId" gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `json:"tagId" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
}

func (TicketTag) TableName() string {
	return "ticket_tags"
}
