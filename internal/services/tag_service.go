package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrEmptyTagName     = errors.New("tag name is empty")
	ErrDuplicateTagName = errors.New("a tag with this name already exists")
)

// TagService manages the tag taxonomy and the ticket<->tag association table.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// ListTags returns every tag ordered by name.
func (s *TagService) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag inserts a new tag. Names are unique; a duplicate maps to
// ErrDuplicateTagName.
func (s *TagService) CreateTag(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}
	tag := models.Tag{Name: name}
	if err := s.db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTagName
		}
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag and its ticket associations.
func (s *TagService) DeleteTag(id uuid.UUID) error {
	if err := s.db.Where("tag_id = ?", id).Delete(&models.TicketTag{}).Error; err != nil {
		return err
	}
	result := s.db.Delete(&models.Tag{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddToTicket associates a tag with a ticket. Adding an already-present pair
// is a no-op success, so a double-submitted click cannot duplicate the row.
func (s *TagService) AddToTicket(ticketID, tagID uuid.UUID) error {
	assoc := models.TicketTag{TicketID: ticketID, TagID: tagID}
	if err := s.db.Create(&assoc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// RemoveFromTicket deletes the association by its (ticket, tag) pair.
func (s *TagService) RemoveFromTicket(ticketID, tagID uuid.UUID) error {
	return s.db.Where("ticket_id = ? AND tag_id = ?", ticketID, tagID).Delete(&models.TicketTag{}).Error
}

// TicketTags returns the tags attached to one ticket, ordered by name.
func (s *TagService) TicketTags(ticketID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.
		Joins("JOIN ticket_tags ON ticket_tags.tag_id = tags.id").
		Where("ticket_tags.ticket_id = ?", ticketID).
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
