// Package lifecycle defines the task status enum and the intended transition
// graph between statuses.
//
// The graph is the *intended* path; the UI historically allowed arbitrary
// status writes from a free select. That escape hatch is preserved as an
// explicit ForceSet distinct from Transition, so call sites must opt in to
// bypassing validation rather than doing it by accident.
package lifecycle

import (
	"errors"
	"fmt"
)

// Status is a task lifecycle status.
type Status string

const (
	PendingProduction     Status = "pending-production"
	Approved              Status = "approved"
	AssignedToDepartment  Status = "assigned-to-department"
	InProgress            Status = "in-progress"
	PendingClientApproval Status = "pending-client-approval"
	RevisionRequired      Status = "revision-required"
	Completed             Status = "completed"
	Posted                Status = "posted"

	// ContactClient is a parallel state entered only via the bulk
	// "send calendar to strategy" operation, outside the department flow.
	ContactClient Status = "contact-client"
)

// ErrUnknownStatus is returned for values outside the closed enum.
var ErrUnknownStatus = errors.New("unknown task status")

// all enumerates every valid status.
var all = map[Status]bool{
	PendingProduction:     true,
	Approved:              true,
	AssignedToDepartment:  true,
	InProgress:            true,
	PendingClientApproval: true,
	RevisionRequired:      true,
	Completed:             true,
	Posted:                true,
	ContactClient:         true,
}

// transitions holds the allowed next statuses for each status.
var transitions = map[Status][]Status{
	PendingProduction:     {Approved},
	Approved:              {AssignedToDepartment, ContactClient},
	AssignedToDepartment:  {InProgress},
	InProgress:            {PendingClientApproval, Completed},
	PendingClientApproval: {RevisionRequired, Completed},
	RevisionRequired:      {InProgress},
	Completed:             {Posted},
	Posted:                {},
	ContactClient:         {},
}

// IsValid reports whether s is a member of the closed status enum.
func IsValid(s Status) bool { return all[s] }

// Parse validates a raw status string and returns it as a Status.
func Parse(raw string) (Status, error) {
	s := Status(raw)
	if !all[s] {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// CanTransition reports whether moving from → to follows the intended graph.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status change against the graph. It returns the new
// status on success, or an error naming both endpoints when the move is not
// part of the intended path.
func Transition(from, to Status) (Status, error) {
	if !all[from] {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, from)
	}
	if !all[to] {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if !CanTransition(from, to) {
		return "", fmt.Errorf("cannot move task from %q to %q", from, to)
	}
	return to, nil
}

// ForceSet is the explicit escape hatch for manual correction: it accepts any
// member of the enum regardless of the current status. Callers are expected
// to log the actor and both statuses.
func ForceSet(to Status) (Status, error) {
	if !all[to] {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	return to, nil
}

// Department values for tasks.
const (
	DeptVideo       = "video"
	DeptGraphics    = "graphics"
	DeptSocialMedia = "social-media"
	DeptProduction  = "production"
	DeptStrategy    = "strategy"
)

// ValidDepartment reports whether d is one of the known departments.
func ValidDepartment(d string) bool {
	switch d {
	case DeptVideo, DeptGraphics, DeptSocialMedia, DeptProduction, DeptStrategy:
		return true
	}
	return false
}
