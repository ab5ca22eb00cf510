package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/models"
)

func TestNormalizeSort(t *testing.T) {
	tests := []struct {
		field       string
		dir         string
		wantField   string
		wantDir     string
		expectError bool
	}{
		{"", "", "updated_at", "desc", false},
		{"created_at", "asc", "created_at", "asc", false},
		{"updated_at", "desc", "updated_at", "desc", false},
		{"priority", "", "priority", "desc", false},
		{"status", "asc", "status", "asc", false},
		{"title", "asc", "", "", true},
		{"id; DROP TABLE tickets", "asc", "", "", true},
		{"created_at", "sideways", "", "", true},
	}

	for _, test := range tests {
		field, dir, err := NormalizeSort(test.field, test.dir)
		if test.expectError {
			if err == nil {
				t.Errorf("NormalizeSort(%q, %q): expected error, got none", test.field, test.dir)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeSort(%q, %q): unexpected error %v", test.field, test.dir, err)
			continue
		}
		if field != test.wantField || dir != test.wantDir {
			t.Errorf("NormalizeSort(%q, %q) = (%q, %q), expected (%q, %q)",
				test.field, test.dir, field, dir, test.wantField, test.wantDir)
		}
	}
}

func TestTicketFiltersValidate(t *testing.T) {
	customer := &models.Profile{ID: uuid.New(), Role: models.RoleCustomer}
	worker := &models.Profile{ID: uuid.New(), Role: models.RoleWorker}
	admin := &models.Profile{ID: uuid.New(), Role: models.RoleAdmin}

	tests := []struct {
		name    string
		viewer  *models.Profile
		filters TicketFilters
		wantErr error
	}{
		{"empty filters", customer, TicketFilters{}, nil},
		{"valid status", customer, TicketFilters{Status: "in_progress"}, nil},
		{"unknown status", customer, TicketFilters{Status: "pending"}, ErrInvalidFilter},
		{"valid priority", customer, TicketFilters{Priority: "2"}, nil},
		{"priority out of range", customer, TicketFilters{Priority: "4"}, ErrInvalidFilter},
		{"priority not numeric", customer, TicketFilters{Priority: "high"}, ErrInvalidFilter},
		{"customer cannot filter by assignee", customer, TicketFilters{Assignee: AssigneeUnassigned}, ErrAssigneeFilterForbidden},
		{"worker unassigned sentinel", worker, TicketFilters{Assignee: AssigneeUnassigned}, nil},
		{"admin assignee by id", admin, TicketFilters{Assignee: uuid.NewString()}, nil},
		{"worker assignee garbage", worker, TicketFilters{Assignee: "not-a-uuid"}, ErrInvalidFilter},
		{"untagged sentinel", customer, TicketFilters{Tag: TagUntagged}, nil},
		{"tag by id", customer, TicketFilters{Tag: uuid.NewString()}, nil},
		{"tag garbage", customer, TicketFilters{Tag: "urgent"}, ErrInvalidFilter},
		{"bad sort rejected", customer, TicketFilters{SortField: "customer_id"}, ErrInvalidFilter},
		{"combined valid filters", worker, TicketFilters{
			Status:    "open",
			Priority:  "3",
			Assignee:  AssigneeUnassigned,
			Tag:       TagUntagged,
			SortField: "priority",
			SortDir:   "asc",
		}, nil},
	}

	for _, test := range tests {
		err := test.filters.Validate(test.viewer)
		if test.wantErr == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", test.name, err)
			}
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: expected %v, got %v", test.name, test.wantErr, err)
		}
	}
}
