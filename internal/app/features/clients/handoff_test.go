package clients

import (
	"encoding/json"
	"testing"

	"github.com/dalemusser/incharge/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestHandleHandoff_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(db, zap.NewNop())

	c := fx.CreateClient(ctx, "C-001", "Acme")
	fx.CreateTask(ctx, "C-001", "Acme", "March reel", "2024-03-15")

	send := func() map[string]string {
		t.Helper()
		req := testutil.NewAuthenticatedRequest("POST", "/clients/"+c.ID.Hex()+"/handoff", testutil.HeadUser())
		req = testutil.WithChiURLParam(req, "id", c.ID.Hex())
		rec := testutil.NewRecorder()
		h.HandleHandoff(rec.ResponseRecorder, req)
		rec.AssertStatus(t, 200)

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return body
	}

	if got := send()["result"]; got != "sent" {
		t.Errorf("first hand-off result = %q, want %q", got, "sent")
	}
	if got := send()["result"]; got != "already_sent" {
		t.Errorf("second hand-off result = %q, want %q", got, "already_sent")
	}

	// Exactly one snapshot record, regardless of how many times the button
	// was clicked.
	n, err := db.Collection("strategy_head_clients").CountDocuments(ctx, bson.M{"client_ref": c.ID})
	if err != nil {
		t.Fatalf("count records: %v", err)
	}
	if n != 1 {
		t.Errorf("hand-off records = %d, want 1", n)
	}

	got, err := h.Clients.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.SentToStrategyHead {
		t.Error("client flag not set after hand-off")
	}

	rec, err := h.StrategyHead.GetByClientRef(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByClientRef() error = %v", err)
	}
	if rec.TaskCount != 1 {
		t.Errorf("snapshot TaskCount = %d, want 1", rec.TaskCount)
	}
	if rec.Stage != "information-gathering" {
		t.Errorf("snapshot Stage = %q, want %q", rec.Stage, "information-gathering")
	}
}

func TestHandleHandoff_MissingClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	id := "65f000000000000000000000"
	req := testutil.NewAuthenticatedRequest("POST", "/clients/"+id+"/handoff", testutil.HeadUser())
	req = testutil.WithChiURLParam(req, "id", id)
	rec := testutil.NewRecorder()
	h.HandleHandoff(rec.ResponseRecorder, req)
	rec.AssertStatus(t, 404)
}
