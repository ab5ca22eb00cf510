package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleWorker   UserRole = "worker"
	RoleAdmin    UserRole = "admin"
)

// ValidRole reports whether s is one of the recognized role values.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleCustomer, RoleWorker, RoleAdmin:
		return true
	}
	return false
}

// Profile is the authenticated identity plus its capability tier.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	FullName  *string   `json:"fullName"`
	Role      UserRole  `json:"role" gorm:"type:varchar(16);not null;default:'customer'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsStaff reports whether the profile may triage tickets.
func (p *Profile) IsStaff() bool {
	return p.Role == RoleWorker || p.Role == RoleAdmin
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// DisplayName prefers the full name and falls back to the email.
func (p *Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Email
}
