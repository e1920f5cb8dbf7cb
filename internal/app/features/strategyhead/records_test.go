package strategyhead

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/incharge/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleTasks_DualKeyMatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(db, zap.NewNop())

	c := fx.CreateHandedOffClient(ctx, "C-001", "Acme")
	rec := fx.CreateHandoffRecord(ctx, c)

	fx.CreateTask(ctx, "C-001", "", "by id", "2024-03-01")
	fx.CreateTask(ctx, "", "Acme", "by name", "2024-03-02")
	fx.CreateTask(ctx, "C-999", "Other", "unrelated", "2024-03-03")

	req := testutil.NewAuthenticatedRequest("GET", "/strategy-head/"+rec.ID.Hex()+"/tasks", testutil.HeadUser())
	req = testutil.WithChiURLParam(req, "id", rec.ID.Hex())
	w := testutil.NewRecorder()
	h.HandleTasks(w.ResponseRecorder, req)
	w.AssertStatus(t, 200)

	var resp tasksResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(resp.Tasks))
	}
	if resp.Record.ClientName != "Acme" {
		t.Errorf("record client name = %q, want %q", resp.Record.ClientName, "Acme")
	}
}

func TestHandleStage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(db, zap.NewNop())

	c := fx.CreateHandedOffClient(ctx, "C-001", "Acme")
	rec := fx.CreateHandoffRecord(ctx, c)

	req := httptest.NewRequest("PUT", "/strategy-head/"+rec.ID.Hex()+"/stage",
		strings.NewReader(`{"stage":"proposal-sent"}`))
	req = testutil.WithUser(req, testutil.HeadUser())
	req = testutil.WithChiURLParam(req, "id", rec.ID.Hex())
	w := testutil.NewRecorder()
	h.HandleStage(w.ResponseRecorder, req)
	w.AssertStatus(t, 200)

	got, err := h.StrategyHead.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Stage != "proposal-sent" {
		t.Errorf("Stage = %q, want %q", got.Stage, "proposal-sent")
	}
}

func TestHandleStage_RejectsBlank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(db, zap.NewNop())

	c := fx.CreateHandedOffClient(ctx, "C-001", "Acme")
	rec := fx.CreateHandoffRecord(ctx, c)

	req := httptest.NewRequest("PUT", "/strategy-head/"+rec.ID.Hex()+"/stage",
		strings.NewReader(`{"stage":"   "}`))
	req = testutil.WithUser(req, testutil.HeadUser())
	req = testutil.WithChiURLParam(req, "id", rec.ID.Hex())
	w := testutil.NewRecorder()
	h.HandleStage(w.ResponseRecorder, req)
	w.AssertStatus(t, 400)
}
