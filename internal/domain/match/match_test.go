package match

import (
	"testing"

	"github.com/dalemusser/incharge/internal/domain/models"
)

func TestTaskBelongsTo(t *testing.T) {
	client := models.Client{ClientID: "C-014", ClientName: "Acme Foods"}

	tests := []struct {
		name string
		task models.Task
		want bool
	}{
		{"matches by id", models.Task{ClientID: "C-014", ClientName: "Acme foods ltd"}, true},
		{"matches by name", models.Task{ClientID: "C-999", ClientName: "Acme Foods"}, true},
		{"matches by name only", models.Task{ClientName: "Acme Foods"}, true},
		{"no match", models.Task{ClientID: "C-999", ClientName: "Other"}, false},
		{"empty keys never match", models.Task{}, false},
		{"name is exact, not folded", models.Task{ClientName: "acme foods"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaskBelongsTo(tt.task, client); got != tt.want {
				t.Errorf("TaskBelongsTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskBelongsTo_EmptyClientKeys(t *testing.T) {
	// A client with empty keys must not absorb tasks with empty fields.
	client := models.Client{}
	task := models.Task{ClientID: "", ClientName: ""}
	if TaskBelongsTo(task, client) {
		t.Error("empty-keyed task must not match empty-keyed client")
	}
}

func TestClient_FirstMatchWins(t *testing.T) {
	clients := []models.Client{
		{ClientID: "C-1", ClientName: "Acme"},
		{ClientID: "C-2", ClientName: "Acme"}, // duplicate name from bulk import
	}
	task := models.Task{ClientName: "Acme"}

	got := Client(task, clients)
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.ClientID != "C-1" {
		t.Errorf("first match should win, got %q", got.ClientID)
	}
}

func TestClient_NoMatch(t *testing.T) {
	clients := []models.Client{{ClientID: "C-1", ClientName: "Acme"}}
	if got := Client(models.Task{ClientID: "C-9", ClientName: "Nope"}, clients); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestTasksFor(t *testing.T) {
	client := models.Client{ClientID: "C-1", ClientName: "Acme"}
	tasks := []models.Task{
		{TaskName: "a", ClientID: "C-1"},
		{TaskName: "b", ClientName: "Acme"},
		{TaskName: "c", ClientID: "C-2", ClientName: "Other"},
		{TaskName: "d", ClientID: "C-1", Deleted: true},
	}

	got := TasksFor(client, tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].TaskName != "a" || got[1].TaskName != "b" {
		t.Errorf("order not preserved: %q, %q", got[0].TaskName, got[1].TaskName)
	}
}
