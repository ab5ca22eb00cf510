package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// ValidStatus reports whether s is one of the recognized ticket statuses.
func ValidStatus(s string) bool {
	switch TicketStatus(s) {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Priorities are 1 (low), 2 (medium), 3 (high).
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

func ValidPriority(p int) bool {
	return p >= PriorityLow && p <= PriorityHigh
}

type Ticket struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Status      *TicketStatus   `json:"status" gorm:"type:varchar(32);index;default:'open'"`
	Priority    *int            `json:"priority" gorm:"index"`
	CustomerID  uuid.UUID       `json:"customerId" gorm:"type:uuid;index;not null"`
	Customer    *Profile        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	AssignedTo  *uuid.UUID      `json:"assignedTo" gorm:"type:uuid;index"`
	Assignee    *Profile        `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	Tags        []Tag           `json:"tags" gorm:"many2many:ticket_tags;"`
	Feedback    *TicketFeedback `json:"feedback,omitempty" gorm:"foreignKey:TicketID"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsResolved reports whether the ticket reached a terminal state
// (resolved or closed); feedback is only accepted then.
func (t *Ticket) IsResolved() bool {
	if t.Status == nil {
		return false
	}
	return *t.Status == StatusResolved || *t.Status == StatusClosed
}
