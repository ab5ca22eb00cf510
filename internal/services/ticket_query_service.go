package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

// Sentinel filter values. An empty string means the criterion is not set.
const (
	AssigneeUnassigned = "unassigned"
	TagUntagged        = "untagged"
)

var (
	ErrInvalidFilter           = errors.New("invalid filter value")
	ErrAssigneeFilterForbidden = errors.New("assignee filter requires staff role")
)

// TicketFilters are the independent optional criteria of the ticket queue.
// Filters compose conjunctively; sort is applied last.
type TicketFilters struct {
	Status    string
	Priority  string
	Assignee  string
	Tag       string
	SortField string
	SortDir   string
}

var sortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"priority":   true,
	"status":     true,
}

// NormalizeSort validates the sort key and direction against the whitelist,
// defaulting to updated_at descending as the queue view does.
func NormalizeSort(field, dir string) (string, string, error) {
	if field == "" {
		field = "updated_at"
	}
	if !sortFields[field] {
		return "", "", fmt.Errorf("%w: sort field %q", ErrInvalidFilter, field)
	}
	switch dir {
	case "":
		dir = "desc"
	case "asc", "desc":
	default:
		return "", "", fmt.Errorf("%w: sort direction %q", ErrInvalidFilter, dir)
	}
	return field, dir, nil
}

// Validate checks every set criterion against the recognized values and the
// viewer's capability tier before any query is issued.
func (f TicketFilters) Validate(viewer *models.Profile) error {
	if f.Status != "" && !models.ValidStatus(f.Status) {
		return fmt.Errorf("%w: status %q", ErrInvalidFilter, f.Status)
	}
	if f.Priority != "" {
		p, err := strconv.Atoi(f.Priority)
		if err != nil || !models.ValidPriority(p) {
			return fmt.Errorf("%w: priority %q", ErrInvalidFilter, f.Priority)
		}
	}
	if f.Assignee != "" {
		if !viewer.IsStaff() {
			return ErrAssigneeFilterForbidden
		}
		if f.Assignee != AssigneeUnassigned {
			if _, err := uuid.Parse(f.Assignee); err != nil {
				return fmt.Errorf("%w: assignee %q", ErrInvalidFilter, f.Assignee)
			}
		}
	}
	if f.Tag != "" && f.Tag != TagUntagged {
		if _, err := uuid.Parse(f.Tag); err != nil {
			return fmt.Errorf("%w: tag %q", ErrInvalidFilter, f.Tag)
		}
	}
	if _, _, err := NormalizeSort(f.SortField, f.SortDir); err != nil {
		return err
	}
	return nil
}

// TicketQueryService runs the filter/sort pipeline over the ticket table.
type TicketQueryService struct {
	db *gorm.DB
}

func NewTicketQueryService(db *gorm.DB) *TicketQueryService {
	return &TicketQueryService{db: db}
}

// List returns the viewer's visible tickets matching every set criterion,
// ordered by the requested sort, with tags, assignee summary and feedback
// attached. An empty result is valid.
func (s *TicketQueryService) List(viewer *models.Profile, f TicketFilters) ([]models.Ticket, error) {
	if err := f.Validate(viewer); err != nil {
		return nil, err
	}

	query := s.db.Model(&models.Ticket{}).
		Preload("Tags").
		Preload("Assignee").
		Preload("Feedback")

	// Customers only ever see their own tickets.
	if !viewer.IsStaff() {
		query = query.Where("customer_id = ?", viewer.ID)
	}

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		priority, _ := strconv.Atoi(f.Priority)
		query = query.Where("priority = ?", priority)
	}

	if f.Assignee == AssigneeUnassigned {
		query = query.Where("assigned_to IS NULL")
	} else if f.Assignee != "" {
		query = query.Where("assigned_to = ?", f.Assignee)
	}

	// Tag filtering spans the join table, so resolve the ticket id set first
	// and restrict the primary query by containment.
	if f.Tag == TagUntagged {
		var taggedIDs []uuid.UUID
		if err := s.db.Model(&models.TicketTag{}).Distinct("ticket_id").Pluck("ticket_id", &taggedIDs).Error; err != nil {
			return nil, err
		}
		// No tag associations anywhere means every ticket is untagged.
		if len(taggedIDs) > 0 {
			query = query.Where("id NOT IN ?", taggedIDs)
		}
	} else if f.Tag != "" {
		var ticketIDs []uuid.UUID
		if err := s.db.Model(&models.TicketTag{}).Where("tag_id = ?", f.Tag).Pluck("ticket_id", &ticketIDs).Error; err != nil {
			return nil, err
		}
		// Nothing carries this tag: short-circuit instead of issuing a
		// vacuous containment query.
		if len(ticketIDs) == 0 {
			return []models.Ticket{}, nil
		}
		query = query.Where("id IN ?", ticketIDs)
	}

	field, dir, _ := NormalizeSort(f.SortField, f.SortDir)

	var tickets []models.Ticket
	if err := query.Order(field + " " + dir).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// Get returns one ticket with its associations, scoped to the viewer's
// visibility.
func (s *TicketQueryService) Get(viewer *models.Profile, id uuid.UUID) (*models.Ticket, error) {
	query := s.db.
		Preload("Tags").
		Preload("Assignee").
		Preload("Feedback")
	if !viewer.IsStaff() {
		query = query.Where("customer_id = ?", viewer.ID)
	}

	var ticket models.Ticket
	if err := query.First(&ticket, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}
