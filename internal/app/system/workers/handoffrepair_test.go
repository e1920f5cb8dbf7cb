package workers

import (
	"testing"
	"time"

	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	strategyheadstore "github.com/dalemusser/incharge/internal/app/store/strategyhead"
	"github.com/dalemusser/incharge/internal/testutil"
	"go.uber.org/zap"
)

func TestHandoffRepair_SetsMissingFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	clients := clientstore.New(db)
	strategyHead := strategyheadstore.New(db)

	// A record whose flag write never landed, and one already consistent.
	drifted := fx.CreateClient(ctx, "C-001", "Acme")
	rec := fx.CreateHandoffRecord(ctx, drifted)

	consistent := fx.CreateHandedOffClient(ctx, "C-002", "Globex")
	fx.CreateHandoffRecord(ctx, consistent)

	w := NewHandoffRepair(clients, strategyHead, zap.NewNop(), time.Minute)
	w.repair()

	got, err := clients.GetByID(ctx, drifted.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.SentToStrategyHead {
		t.Error("drifted client flag not repaired")
	}
	// The repair carries the record's stamp over rather than inventing one.
	if got.SentToStrategyHeadBy != rec.SentBy {
		t.Errorf("SentToStrategyHeadBy = %q, want %q", got.SentToStrategyHeadBy, rec.SentBy)
	}
	if got.SentToStrategyHeadAt == nil {
		t.Fatal("SentToStrategyHeadAt not stamped")
	}
	if !got.SentToStrategyHeadAt.Truncate(time.Millisecond).Equal(rec.SentAt.Truncate(time.Millisecond)) {
		t.Errorf("SentToStrategyHeadAt = %v, want the record's SentAt %v", got.SentToStrategyHeadAt, rec.SentAt)
	}
}

func TestHandoffRepair_SkipsDeletedClients(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	clients := clientstore.New(db)
	strategyHead := strategyheadstore.New(db)

	c := fx.CreateClient(ctx, "C-001", "Acme")
	fx.CreateHandoffRecord(ctx, c)
	if _, err := clients.SoftDelete(ctx, c.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	w := NewHandoffRepair(clients, strategyHead, zap.NewNop(), time.Minute)
	w.repair()

	got, err := clients.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.SentToStrategyHead {
		t.Error("deleted client was repaired; should be skipped")
	}
}
