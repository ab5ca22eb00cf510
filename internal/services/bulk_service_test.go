package services

import (
	"testing"

	"github.com/google/uuid"
)

func TestReconcileSelection(t *testing.T) {
	selected := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	tests := []struct {
		name         string
		activeFilter string
		appliedValue string
		expectEmpty  bool
	}{
		{"no active filter keeps selection", "", "resolved", false},
		{"applied value matches filter", "resolved", "resolved", false},
		{"applied value leaves filter", "open", "resolved", true},
		{"assignee filter mismatch", "unassigned", uuid.NewString(), true},
	}

	for _, test := range tests {
		result := ReconcileSelection(selected, test.activeFilter, test.appliedValue)
		if test.expectEmpty {
			if len(result) != 0 {
				t.Errorf("%s: expected empty selection, got %d ids", test.name, len(result))
			}
		} else {
			if len(result) != len(selected) {
				t.Errorf("%s: expected %d ids, got %d", test.name, len(selected), len(result))
			}
		}
	}
}

func TestReconcileSelectionEmptiesDoNotNil(t *testing.T) {
	result := ReconcileSelection([]uuid.UUID{uuid.New()}, "open", "closed")
	if result == nil {
		t.Error("Expected empty slice, got nil")
	}
}

func TestReconcilePrioritySelection(t *testing.T) {
	selected := []uuid.UUID{uuid.New(), uuid.New()}

	tests := []struct {
		name         string
		activeFilter string
		applied      int
		expectEmpty  bool
	}{
		{"no priority filter", "", 3, false},
		{"matching priority filter", "3", 3, false},
		{"mismatched priority filter", "1", 3, true},
	}

	for _, test := range tests {
		result := ReconcilePrioritySelection(selected, test.activeFilter, test.applied)
		if test.expectEmpty && len(result) != 0 {
			t.Errorf("%s: expected empty selection, got %d ids", test.name, len(result))
		}
		if !test.expectEmpty && len(result) != len(selected) {
			t.Errorf("%s: expected %d ids, got %d", test.name, len(selected), len(result))
		}
	}
}
