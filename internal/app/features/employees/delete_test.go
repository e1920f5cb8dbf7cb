package employees

import (
	"testing"

	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func TestHandleDelete_Cascade(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(db, zap.NewNop())

	emp := fx.CreateEmployee(ctx, "Jane Doe", "jane@example.com", "employee")

	// An in-flight task assigned to Jane, a finished one, and an assigned client.
	inFlight := fx.CreateTask(ctx, "C-001", "Acme", "editing", "2024-03-01")
	if err := h.Tasks.AssignToDepartment(ctx, inFlight.ID, "video", &emp, "Head"); err != nil {
		t.Fatalf("AssignToDepartment() error = %v", err)
	}
	if err := h.Tasks.SetStatus(ctx, inFlight.ID, lifecycle.InProgress); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	finished := fx.CreateTask(ctx, "C-001", "Acme", "posted", "2024-03-02")
	if err := h.Tasks.AssignToDepartment(ctx, finished.ID, "video", &emp, "Head"); err != nil {
		t.Fatalf("AssignToDepartment() error = %v", err)
	}
	if err := h.Tasks.SetStatus(ctx, finished.ID, lifecycle.Posted); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	c := fx.CreateClient(ctx, "C-001", "Acme")
	if err := h.Clients.AssignEmployee(ctx, c.ID, &emp); err != nil {
		t.Fatalf("AssignEmployee() error = %v", err)
	}

	req := testutil.NewAuthenticatedRequest("DELETE", "/employees/"+emp.ID.Hex(), testutil.HeadUser())
	req = testutil.WithChiURLParam(req, "id", emp.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDelete(rec.ResponseRecorder, req)
	rec.AssertStatus(t, 200)

	// Employee document is gone, not soft-deleted.
	if _, err := h.Employees.GetByID(ctx, emp.ID); err != mongo.ErrNoDocuments {
		t.Errorf("GetByID() after delete error = %v, want ErrNoDocuments", err)
	}

	// In-flight work went back to the pool; finished work kept its status.
	got, err := h.Tasks.GetByID(ctx, inFlight.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != string(lifecycle.PendingProduction) {
		t.Errorf("in-flight task status = %q, want %q", got.Status, lifecycle.PendingProduction)
	}
	if got.AssignedEmployeeID != nil || got.AssignedEmployeeName != "" {
		t.Error("task assignment fields not cleared")
	}

	gotDone, err := h.Tasks.GetByID(ctx, finished.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if gotDone.Status != string(lifecycle.Posted) {
		t.Errorf("finished task status = %q, want %q", gotDone.Status, lifecycle.Posted)
	}
	if gotDone.AssignedEmployeeID != nil {
		t.Error("finished task assignment fields not cleared")
	}

	gotClient, err := h.Clients.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if gotClient.AssignedEmployeeID != nil || gotClient.AssignedEmployeeName != "" {
		t.Error("client assignment fields not cleared")
	}
}

func TestHandleDelete_MissingEmployee(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	id := "65f000000000000000000000"
	req := testutil.NewAuthenticatedRequest("DELETE", "/employees/"+id, testutil.HeadUser())
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()
	h.HandleDelete(rec.ResponseRecorder, req)
	rec.AssertStatus(t, 404)
}
