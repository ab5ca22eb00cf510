package models

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"open", true},
		{"in_progress", true},
		{"resolved", true},
		{"closed", true},
		{"pending", false},
		{"OPEN", false},
		{"", false},
	}

	for _, test := range tests {
		if got := ValidStatus(test.status); got != test.valid {
			t.Errorf("ValidStatus(%q) = %v, expected %v", test.status, got, test.valid)
		}
	}
}

func TestValidPriority(t *testing.T) {
	tests := []struct {
		priority int
		valid    bool
	}{
		{PriorityLow, true},
		{PriorityMedium, true},
		{PriorityHigh, true},
		{0, false},
		{4, false},
		{-1, false},
	}

	for _, test := range tests {
		if got := ValidPriority(test.priority); got != test.valid {
			t.Errorf("ValidPriority(%d) = %v, expected %v", test.priority, got, test.valid)
		}
	}
}

func TestValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"customer", true},
		{"worker", true},
		{"admin", true},
		{"manager", false},
		{"Admin", false},
		{"", false},
	}

	for _, test := range tests {
		if got := ValidRole(test.role); got != test.valid {
			t.Errorf("ValidRole(%q) = %v, expected %v", test.role, got, test.valid)
		}
	}
}

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating int
		valid  bool
	}{
		{1, true},
		{3, true},
		{5, true},
		{0, false},
		{6, false},
		{-1, false},
	}

	for _, test := range tests {
		if got := ValidRating(test.rating); got != test.valid {
			t.Errorf("ValidRating(%d) = %v, expected %v", test.rating, got, test.valid)
		}
	}
}

func TestValidFieldType(t *testing.T) {
	tests := []struct {
		fieldType string
		valid     bool
	}{
		{"text", true},
		{"number", true},
		{"date", true},
		{"boolean", true},
		{"select", false},
		{"", false},
	}

	for _, test := range tests {
		if got := ValidFieldType(test.fieldType); got != test.valid {
			t.Errorf("ValidFieldType(%q) = %v, expected %v", test.fieldType, got, test.valid)
		}
	}
}

func TestProfileIsStaff(t *testing.T) {
	tests := []struct {
		role  UserRole
		staff bool
		admin bool
	}{
		{RoleCustomer, false, false},
		{RoleWorker, true, false},
		{RoleAdmin, true, true},
	}

	for _, test := range tests {
		p := &Profile{Role: test.role}
		if got := p.IsStaff(); got != test.staff {
			t.Errorf("IsStaff() for role %s = %v, expected %v", test.role, got, test.staff)
		}
		if got := p.IsAdmin(); got != test.admin {
			t.Errorf("IsAdmin() for role %s = %v, expected %v", test.role, got, test.admin)
		}
	}
}

func TestProfileDisplayName(t *testing.T) {
	fullName := "Jamie Rivera"
	empty := ""

	tests := []struct {
		name     string
		profile  Profile
		expected string
	}{
		{"full name set", Profile{Email: "jamie@example.com", FullName: &fullName}, "Jamie Rivera"},
		{"full name empty string", Profile{Email: "jamie@example.com", FullName: &empty}, "jamie@example.com"},
		{"full name nil", Profile{Email: "jamie@example.com"}, "jamie@example.com"},
	}

	for _, test := range tests {
		if got := test.profile.DisplayName(); got != test.expected {
			t.Errorf("%s: DisplayName() = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestTicketIsResolved(t *testing.T) {
	open := StatusOpen
	inProgress := StatusInProgress
	resolved := StatusResolved
	closed := StatusClosed

	tests := []struct {
		name     string
		status   *TicketStatus
		resolved bool
	}{
		{"open", &open, false},
		{"in progress", &inProgress, false},
		{"resolved", &resolved, true},
		{"closed", &closed, true},
		{"nil status", nil, false},
	}

	for _, test := range tests {
		ticket := &Ticket{Status: test.status}
		if got := ticket.IsResolved(); got != test.resolved {
			t.Errorf("%s: IsResolved() = %v, expected %v", test.name, got, test.resolved)
		}
	}
}
