// Package match resolves the client a task belongs to.
//
// Tasks carry both a client id and a client name, and the two ingestion paths
// fill them in inconsistently: the manual form always sets the id, bulk
// imports sometimes only agree on the name. Every piece of grouping and
// hand-off logic therefore matches on id OR name. Keeping the rule in one
// resolver keeps the inconsistency contained and testable.
package match

import "github.com/dalemusser/incharge/internal/domain/models"

// TaskBelongsTo reports whether the task references the client, by client id
// or by client name. Empty keys never match.
func TaskBelongsTo(t models.Task, c models.Client) bool {
	if t.ClientID != "" && t.ClientID == c.ClientID {
		return true
	}
	if t.ClientName != "" && t.ClientName == c.ClientName {
		return true
	}
	return false
}

// Client returns the first client in clients the task belongs to, or nil.
// Iteration order is the caller's collection order, so the first match wins
// the same way it does in every listing.
func Client(t models.Task, clients []models.Client) *models.Client {
	for i := range clients {
		if TaskBelongsTo(t, clients[i]) {
			return &clients[i]
		}
	}
	return nil
}

// TasksFor returns every non-deleted task belonging to the client,
// preserving task order.
func TasksFor(c models.Client, tasks []models.Task) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Deleted {
			continue
		}
		if TaskBelongsTo(t, c) {
			out = append(out, t)
		}
	}
	return out
}
