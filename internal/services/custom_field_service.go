package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

var ErrEmptyFieldName = errors.New("field name is empty")

// CustomFieldService manages field definitions and per-ticket values.
type CustomFieldService struct {
	db *gorm.DB
}

func NewCustomFieldService(db *gorm.DB) *CustomFieldService {
	return &CustomFieldService{db: db}
}

func (s *CustomFieldService) ListFields() ([]models.CustomField, error) {
	var fields []models.CustomField
	if err := s.db.Order("name").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (s *CustomFieldService) CreateField(name, fieldType string) (*models.CustomField, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyFieldName
	}
	field := models.CustomField{Name: name, FieldType: models.CustomFieldType(fieldType)}
	if err := s.db.Create(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// RenameField updates a definition's name.
func (s *CustomFieldService) RenameField(id uuid.UUID, name string) (*models.CustomField, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyFieldName
	}
	var field models.CustomField
	if err := s.db.First(&field, "id = ?", id).Error; err != nil {
		return nil, err
	}
	field.Name = name
	if err := s.db.Save(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// DeleteField removes a definition and every per-ticket value for it.
func (s *CustomFieldService) DeleteField(id uuid.UUID) error {
	if err := s.db.Where("field_id = ?", id).Delete(&models.TicketCustomFieldValue{}).Error; err != nil {
		return err
	}
	result := s.db.Delete(&models.CustomField{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TicketValues returns the values set on one ticket with their definitions.
func (s *CustomFieldService) TicketValues(ticketID uuid.UUID) ([]models.TicketCustomFieldValue, error) {
	var values []models.TicketCustomFieldValue
	if err := s.db.Preload("Field").Where("ticket_id = ?", ticketID).Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// SetValue upserts the value keyed by (ticket_id, field_id): update the
// existing row when present, insert otherwise. Never two rows per pair.
func (s *CustomFieldService) SetValue(ticketID, fieldID uuid.UUID, value string) (*models.TicketCustomFieldValue, error) {
	var existing models.TicketCustomFieldValue
	err := s.db.Where("ticket_id = ? AND field_id = ?", ticketID, fieldID).First(&existing).Error
	if err == nil {
		existing.Value = &value
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := models.TicketCustomFieldValue{
		TicketID: ticketID,
		FieldID:  fieldID,
		Value:    &value,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
