// Package grouping derives the per-client task groups shown on the production
// board: time-window membership, category filtering, strategy-gated client
// grouping, free-text search, and page slicing.
//
// Derivation is pure: the same client and task snapshots always produce the
// same groups in the same order.
package grouping

import (
	"strings"

	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/match"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/incharge/internal/domain/window"
)

// Category is the status-category filter applied to tasks.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryAssigned    Category = "assigned"
	CategoryPending     Category = "pending"
	CategoryVideo       Category = "video"
	CategoryGraphics    Category = "graphics"
	CategorySocialMedia Category = "social-media"
)

// Filter holds every input of a grouping derivation.
type Filter struct {
	Window   window.Window
	Category Category
	// Search is a case-insensitive substring match on client name.
	Search string
	// Department and Status refine each group's task list after grouping.
	// They must agree with Category where both are set; both are applied
	// because different screens drive different controls.
	Department string
	Status     string
}

// Group is one client's slice of the filtered task set.
type Group struct {
	ClientName string        `json:"client_name"`
	ClientID   string        `json:"client_id"`
	Tasks      []models.Task `json:"tasks"`
}

// matchesCategory applies the category filter to a single task.
func matchesCategory(t models.Task, c Category) bool {
	switch c {
	case "", CategoryAll:
		return true
	case CategoryAssigned:
		return t.Status == string(lifecycle.AssignedToDepartment) || t.Status == string(lifecycle.InProgress)
	case CategoryPending:
		return t.Status == string(lifecycle.Approved) || t.Status == string(lifecycle.PendingProduction)
	case CategoryVideo, CategoryGraphics, CategorySocialMedia:
		return t.Department == string(c)
	}
	return false
}

// matchesRefinement applies the secondary department/status refinement.
func matchesRefinement(t models.Task, f Filter) bool {
	if f.Department != "" && f.Department != "all" && t.Department != f.Department {
		return false
	}
	if f.Status != "" && f.Status != "all" && t.Status != f.Status {
		return false
	}
	return true
}

// Derive computes the ordered group list for one snapshot.
//
// Only clients that have cleared the strategy hand-off gate
// (SentToStrategyHead and not deleted) seed a group; they appear even with
// zero matching tasks. Tasks whose client has no seeded group are dropped —
// the board shows production work only for handed-off clients, never ad-hoc
// groups. Group order is client collection order, not sorted.
func Derive(tasks []models.Task, clients []models.Client, f Filter) []Group {
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	groups := make([]Group, 0, len(clients))
	seeded := make([]*models.Client, 0, len(clients))
	for i := range clients {
		c := &clients[i]
		if !c.SentToStrategyHead || c.Deleted {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(c.ClientName), needle) {
			continue
		}
		seeded = append(seeded, c)
		groups = append(groups, Group{ClientName: c.ClientName, ClientID: c.ClientID})
	}

	for _, t := range tasks {
		if t.Deleted {
			continue
		}
		if !f.Window.Contains(t.PostDate) {
			continue
		}
		if !matchesCategory(t, f.Category) {
			continue
		}
		if !matchesRefinement(t, f) {
			continue
		}
		for i, c := range seeded {
			if match.TaskBelongsTo(t, *c) {
				groups[i].Tasks = append(groups[i].Tasks, t)
				break
			}
		}
		// No seeded group: the task is dropped.
	}

	return groups
}

// FlattenTasks returns every task in the groups, preserving group order.
func FlattenTasks(groups []Group) []models.Task {
	var out []models.Task
	for _, g := range groups {
		out = append(out, g.Tasks...)
	}
	return out
}
