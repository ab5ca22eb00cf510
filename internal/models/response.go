package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketResponse is a customer-visible reply on a ticket. Append-only.
type TicketResponse struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TicketID    uuid.UUID `json:"ticketId" gorm:"type:uuid;index;not null"`
	ResponderID uuid.UUID `json:"responderId" gorm:"type:uuid;not null"`
	Responder   *Profile  `json:"responder,omitempty" gorm:"foreignKey:ResponderID"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (TicketResponse) TableName() string {
	return "ticket_responses"
}

func (r *TicketResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TicketInternalNote is staff-only and never shown to customers. Append-only.
type TicketInternalNote struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TicketID  uuid.UUID `json:"ticketId" gorm:"type:uuid;index;not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null"`
	Author    *Profile  `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (TicketInternalNote) TableName() string {
	return "ticket_internal_notes"
}

func (n *TicketInternalNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
