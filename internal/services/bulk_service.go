package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrEmptySelection   = errors.New("selection is empty")
	ErrAssigneeNotStaff = errors.New("assignee must be a worker or admin")
)

// BulkMutationService applies a single field update to a caller-selected set
// of tickets as one logical operation.
type BulkMutationService struct {
	db *gorm.DB
}

func NewBulkMutationService(db *gorm.DB) *BulkMutationService {
	return &BulkMutationService{db: db}
}

func (s *BulkMutationService) apply(ids []uuid.UUID, changes map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptySelection
	}
	changes["updated_at"] = time.Now()
	result := s.db.Model(&models.Ticket{}).Where("id IN ?", ids).Updates(changes)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateStatus sets the status on every selected ticket.
func (s *BulkMutationService) UpdateStatus(ids []uuid.UUID, status string) (int64, error) {
	if !models.ValidStatus(status) {
		return 0, fmt.Errorf("%w: status %q", ErrInvalidFilter, status)
	}
	return s.apply(ids, map[string]interface{}{"status": status})
}

// UpdatePriority sets the priority on every selected ticket.
func (s *BulkMutationService) UpdatePriority(ids []uuid.UUID, priority int) (int64, error) {
	if !models.ValidPriority(priority) {
		return 0, fmt.Errorf("%w: priority %d", ErrInvalidFilter, priority)
	}
	return s.apply(ids, map[string]interface{}{"priority": priority})
}

// Assign sets the assignee on every selected ticket. The assignee must be a
// staff profile; assignment to a customer is rejected.
func (s *BulkMutationService) Assign(ids []uuid.UUID, assigneeID uuid.UUID) (int64, error) {
	var assignee models.Profile
	if err := s.db.First(&assignee, "id = ?", assigneeID).Error; err != nil {
		return 0, err
	}
	if !assignee.IsStaff() {
		return 0, ErrAssigneeNotStaff
	}
	return s.apply(ids, map[string]interface{}{"assigned_to": assigneeID})
}

// ReconcileSelection decides what remains selected after a bulk mutation.
// If the active filter for the mutated dimension is set and does not equal
// the newly-applied value, the mutated tickets no longer satisfy the filter
// and the whole selection empties; otherwise the selection is preserved.
func ReconcileSelection(selected []uuid.UUID, activeFilter, appliedValue string) []uuid.UUID {
	if activeFilter != "" && activeFilter != appliedValue {
		return []uuid.UUID{}
	}
	return selected
}

// ReconcilePrioritySelection is ReconcileSelection for the numeric priority
// dimension; the filter arrives as a string query parameter.
func ReconcilePrioritySelection(selected []uuid.UUID, activeFilter string, applied int) []uuid.UUID {
	return ReconcileSelection(selected, activeFilter, strconv.Itoa(applied))
}
