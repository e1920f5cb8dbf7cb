package taskstore

import (
	"testing"

	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/incharge/internal/testutil"
)

func TestCreate_DefaultsAndValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	task, err := store.Create(ctx, models.Task{
		TaskName:   "March reel",
		ClientID:   "C-001",
		Department: "Video",
		PostDate:   "2024-03-15",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.Status != string(lifecycle.PendingProduction) {
		t.Errorf("Status = %q, want %q", task.Status, lifecycle.PendingProduction)
	}
	if task.Department != "video" {
		t.Errorf("Department = %q, want %q", task.Department, "video")
	}

	if _, err := store.Create(ctx, models.Task{ClientID: "C-001"}); err != ErrNameRequired {
		t.Errorf("Create() without name error = %v, want ErrNameRequired", err)
	}
	if _, err := store.Create(ctx, models.Task{TaskName: "orphan"}); err != ErrNoClientKey {
		t.Errorf("Create() without client key error = %v, want ErrNoClientKey", err)
	}
}

func TestListForMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)
	fx := testutil.NewFixtures(t, db)

	fx.CreateTask(ctx, "C-001", "Acme", "in march", "2024-03-01")
	fx.CreateTask(ctx, "C-001", "Acme", "late march", "2024-03-31")
	fx.CreateTask(ctx, "C-001", "Acme", "in april", "2024-04-01")
	fx.CreateTask(ctx, "C-001", "Acme", "no date", "")

	tasks, err := store.ListForMonth(ctx, "2024-03")
	if err != nil {
		t.Fatalf("ListForMonth() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("ListForMonth() got %d tasks, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.PostDate[:7] != "2024-03" {
			t.Errorf("task %q has post date %q outside the month", task.TaskName, task.PostDate)
		}
	}
}

func TestListForClientKeys_DualKeyMatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)
	fx := testutil.NewFixtures(t, db)

	// Import path fills the id, the manual form fills the name; both must match.
	fx.CreateTask(ctx, "C-001", "", "by id", "2024-03-01")
	fx.CreateTask(ctx, "", "Acme", "by name", "2024-03-02")
	fx.CreateTask(ctx, "C-999", "Other", "unrelated", "2024-03-03")

	tasks, err := store.ListForClientKeys(ctx, "C-001", "Acme")
	if err != nil {
		t.Fatalf("ListForClientKeys() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("ListForClientKeys() got %d tasks, want 2", len(tasks))
	}

	// Both keys blank matches nothing rather than everything.
	tasks, err = store.ListForClientKeys(ctx, "", "")
	if err != nil {
		t.Fatalf("ListForClientKeys() blank keys error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("ListForClientKeys() blank keys got %d tasks, want 0", len(tasks))
	}
}

func TestResetStatusesForEmployee_BeforeClear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)
	fx := testutil.NewFixtures(t, db)

	emp := fx.CreateEmployee(ctx, "Jane Doe", "jane@example.com", "employee")

	inProgress := fx.CreateTask(ctx, "C-001", "Acme", "editing", "2024-03-01")
	if err := store.AssignToDepartment(ctx, inProgress.ID, "video", &emp, "Head"); err != nil {
		t.Fatalf("AssignToDepartment() error = %v", err)
	}
	if err := store.SetStatus(ctx, inProgress.ID, lifecycle.InProgress); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	done := fx.CreateTask(ctx, "C-001", "Acme", "posted", "2024-03-02")
	if err := store.AssignToDepartment(ctx, done.ID, "video", &emp, "Head"); err != nil {
		t.Fatalf("AssignToDepartment() error = %v", err)
	}
	if err := store.SetStatus(ctx, done.ID, lifecycle.Posted); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	reset, err := store.ResetStatusesForEmployee(ctx, &emp)
	if err != nil {
		t.Fatalf("ResetStatusesForEmployee() error = %v", err)
	}
	if reset != 1 {
		t.Errorf("ResetStatusesForEmployee() = %d, want 1 (posted task untouched)", reset)
	}

	cleared, err := store.ClearEmployeeAssignments(ctx, &emp)
	if err != nil {
		t.Fatalf("ClearEmployeeAssignments() error = %v", err)
	}
	if cleared != 2 {
		t.Errorf("ClearEmployeeAssignments() = %d, want 2", cleared)
	}

	got, err := store.GetByID(ctx, inProgress.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != string(lifecycle.PendingProduction) {
		t.Errorf("in-flight task status = %q, want %q", got.Status, lifecycle.PendingProduction)
	}
	if got.AssignedEmployeeID != nil {
		t.Error("assignment fields not cleared")
	}

	gotDone, err := store.GetByID(ctx, done.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if gotDone.Status != string(lifecycle.Posted) {
		t.Errorf("finished task status = %q, want %q (never reset)", gotDone.Status, lifecycle.Posted)
	}
}

func TestApproveForCalendarAndSendToStrategy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)
	fx := testutil.NewFixtures(t, db)

	task := fx.CreateTask(ctx, "C-001", "Acme", "March reel", "2024-03-15")

	if err := store.ApproveForCalendar(ctx, task.ID, "Head"); err != nil {
		t.Fatalf("ApproveForCalendar() error = %v", err)
	}
	got, err := store.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.ApprovedForCalendar || !got.AddedToCalendar {
		t.Error("calendar flags not set after approval")
	}
	if got.Status != string(lifecycle.Approved) {
		t.Errorf("Status = %q, want %q", got.Status, lifecycle.Approved)
	}
	if got.ApprovedBy != "Head" {
		t.Errorf("ApprovedBy = %q, want %q", got.ApprovedBy, "Head")
	}

	if err := store.MarkSentToStrategy(ctx, task.ID, "Head"); err != nil {
		t.Fatalf("MarkSentToStrategy() error = %v", err)
	}
	got, err = store.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.SentToStrategy {
		t.Error("SentToStrategy = false after mark")
	}
	if got.SentToStrategyAt == nil {
		t.Error("SentToStrategyAt not stamped")
	}
	if got.SentToStrategyBy != "Head" {
		t.Errorf("SentToStrategyBy = %q, want %q", got.SentToStrategyBy, "Head")
	}
	if got.Status != string(lifecycle.ContactClient) {
		t.Errorf("Status = %q, want %q", got.Status, lifecycle.ContactClient)
	}
}
