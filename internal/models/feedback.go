package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketFeedback is the customer's one-time rating of a resolved ticket.
// The unique index on ticket_id makes the relation one-to-one.
type TicketFeedback struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TicketID     uuid.UUID `json:"ticketId" gorm:"type:uuid;uniqueIndex;not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	FeedbackText *string   `json:"feedbackText" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (TicketFeedback) TableName() string {
	return "ticket_feedback"
}

func (f *TicketFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
