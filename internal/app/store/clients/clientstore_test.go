package clientstore

import (
	"testing"

	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/incharge/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_NormalizesAndDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	c, err := store.Create(ctx, models.Client{
		ClientID:   "  C-001 ",
		ClientName: "  Acme Media  ",
		Email:      "Hello@Acme.COM",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if c.ClientName != "Acme Media" {
		t.Errorf("ClientName = %q, want %q", c.ClientName, "Acme Media")
	}
	if c.ClientNameCI != "acme media" {
		t.Errorf("ClientNameCI = %q, want %q", c.ClientNameCI, "acme media")
	}
	if c.Email != "hello@acme.com" {
		t.Errorf("Email = %q, want %q", c.Email, "hello@acme.com")
	}
	if c.Status != "active" {
		t.Errorf("Status = %q, want %q", c.Status, "active")
	}
	if c.SentToStrategyHead {
		t.Error("SentToStrategyHead = true on a fresh client")
	}
}

func TestCreate_RequiresName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	if _, err := store.Create(ctx, models.Client{ClientID: "C-001"}); err != ErrNameRequired {
		t.Errorf("Create() error = %v, want ErrNameRequired", err)
	}
}

func TestSoftDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	c, err := store.Create(ctx, models.Client{ClientID: "C-001", ClientName: "Acme"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	n, err := store.SoftDelete(ctx, c.ID)
	if err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	if n != 1 {
		t.Errorf("SoftDelete() modified = %d, want 1", n)
	}

	// Second delete is a no-op.
	n, err = store.SoftDelete(ctx, c.ID)
	if err != nil {
		t.Fatalf("SoftDelete() second call error = %v", err)
	}
	if n != 0 {
		t.Errorf("SoftDelete() second call modified = %d, want 0", n)
	}

	// The document survives but drops out of lists and lookups.
	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.Deleted {
		t.Error("Deleted = false after soft delete")
	}
	if _, err := store.GetByClientID(ctx, "C-001"); err != mongo.ErrNoDocuments {
		t.Errorf("GetByClientID() error = %v, want ErrNoDocuments", err)
	}
}

func TestMarkSentToStrategyHead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)

	c, err := store.Create(ctx, models.Client{ClientID: "C-001", ClientName: "Acme"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.MarkSentToStrategyHead(ctx, c.ID, "Head"); err != nil {
		t.Fatalf("MarkSentToStrategyHead() error = %v", err)
	}

	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.SentToStrategyHead {
		t.Error("SentToStrategyHead = false after mark")
	}
	if got.SentToStrategyHeadBy != "Head" {
		t.Errorf("SentToStrategyHeadBy = %q, want %q", got.SentToStrategyHeadBy, "Head")
	}
	if got.SentToStrategyHeadAt == nil {
		t.Error("SentToStrategyHeadAt is nil after mark")
	}
}

func TestClearEmployeeAssignments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := New(db)
	fx := testutil.NewFixtures(t, db)

	emp := fx.CreateEmployee(ctx, "Jane Doe", "jane@example.com", "employee")

	c, err := store.Create(ctx, models.Client{ClientID: "C-001", ClientName: "Acme"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.AssignEmployee(ctx, c.ID, &emp); err != nil {
		t.Fatalf("AssignEmployee() error = %v", err)
	}

	n, err := store.ClearEmployeeAssignments(ctx, &emp)
	if err != nil {
		t.Fatalf("ClearEmployeeAssignments() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ClearEmployeeAssignments() modified = %d, want 1", n)
	}

	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.AssignedEmployeeID != nil || got.AssignedEmployeeName != "" || got.AssignedEmployeeEmail != "" {
		t.Errorf("assignment fields not cleared: %+v", got)
	}
}
