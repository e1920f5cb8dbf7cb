package lifecycle

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"pending-production", PendingProduction, false},
		{"approved", Approved, false},
		{"assigned-to-department", AssignedToDepartment, false},
		{"in-progress", InProgress, false},
		{"pending-client-approval", PendingClientApproval, false},
		{"revision-required", RevisionRequired, false},
		{"completed", Completed, false},
		{"posted", Posted, false},
		{"contact-client", ContactClient, false},
		{"", "", true},
		{"done", "", true},
		{"Pending-Production", "", true}, // statuses are exact, not folded
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q): expected error, got %q", tt.input, got)
				}
				if !errors.Is(err, ErrUnknownStatus) {
					t.Errorf("Parse(%q): error = %v, want ErrUnknownStatus", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransition_IntendedPath(t *testing.T) {
	// Walk the main department flow end to end.
	path := []Status{
		PendingProduction,
		Approved,
		AssignedToDepartment,
		InProgress,
		PendingClientApproval,
		RevisionRequired,
		InProgress,
		Completed,
		Posted,
	}
	for i := 1; i < len(path); i++ {
		got, err := Transition(path[i-1], path[i])
		if err != nil {
			t.Fatalf("Transition(%q, %q) failed: %v", path[i-1], path[i], err)
		}
		if got != path[i] {
			t.Errorf("Transition(%q, %q) = %q", path[i-1], path[i], got)
		}
	}
}

func TestTransition_Rejected(t *testing.T) {
	tests := []struct {
		from, to Status
	}{
		{PendingProduction, InProgress},       // skips approval and assignment
		{Approved, Posted},                    // skips the whole flow
		{Posted, PendingProduction},           // terminal
		{ContactClient, InProgress},           // parallel state has no exits
		{Completed, InProgress},               // no going back from completed
		{PendingProduction, PendingProduction}, // self-transition
	}
	for _, tt := range tests {
		if _, err := Transition(tt.from, tt.to); err == nil {
			t.Errorf("Transition(%q, %q): expected error", tt.from, tt.to)
		}
	}
}

func TestTransition_ContactClientOnlyFromApproved(t *testing.T) {
	if _, err := Transition(Approved, ContactClient); err != nil {
		t.Fatalf("Transition(approved, contact-client) failed: %v", err)
	}
	for _, from := range []Status{PendingProduction, AssignedToDepartment, InProgress, Completed, Posted} {
		if _, err := Transition(from, ContactClient); err == nil {
			t.Errorf("Transition(%q, contact-client): expected error", from)
		}
	}
}

func TestForceSet(t *testing.T) {
	// ForceSet accepts any enum member regardless of current status...
	got, err := ForceSet(Posted)
	if err != nil {
		t.Fatalf("ForceSet(posted) failed: %v", err)
	}
	if got != Posted {
		t.Errorf("ForceSet(posted) = %q", got)
	}

	// ...but still rejects values outside the enum.
	if _, err := ForceSet(Status("archived")); err == nil {
		t.Error("ForceSet(archived): expected error")
	}
}

func TestValidDepartment(t *testing.T) {
	for _, d := range []string{"video", "graphics", "social-media", "production", "strategy"} {
		if !ValidDepartment(d) {
			t.Errorf("ValidDepartment(%q) = false", d)
		}
	}
	for _, d := range []string{"", "Video", "marketing"} {
		if ValidDepartment(d) {
			t.Errorf("ValidDepartment(%q) = true", d)
		}
	}
}
