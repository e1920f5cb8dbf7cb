package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateClient creates a test client with the given id and name.
func (f *Fixtures) CreateClient(ctx context.Context, clientID, clientName string) models.Client {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Client{
		ID:           primitive.NewObjectID(),
		ClientID:     clientID,
		ClientName:   clientName,
		ClientNameCI: text.Fold(clientName),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("clients").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test client: %v", err)
	}
	return c
}

// CreateHandedOffClient creates a test client already sent to the strategy head.
func (f *Fixtures) CreateHandedOffClient(ctx context.Context, clientID, clientName string) models.Client {
	f.t.Helper()

	c := f.CreateClient(ctx, clientID, clientName)
	now := time.Now().UTC()
	_, err := f.db.Collection("clients").UpdateOne(ctx,
		map[string]any{"_id": c.ID},
		map[string]any{"$set": map[string]any{
			"sent_to_strategy_head":    true,
			"sent_to_strategy_head_at": now,
		}})
	if err != nil {
		f.t.Fatalf("failed to mark test client handed off: %v", err)
	}
	c.SentToStrategyHead = true
	c.SentToStrategyHeadAt = &now
	return c
}

// CreateTask creates a test task for the given client keys with the given
// post date.
func (f *Fixtures) CreateTask(ctx context.Context, clientID, clientName, taskName, postDate string) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.Task{
		ID:         primitive.NewObjectID(),
		TaskName:   taskName,
		ClientID:   clientID,
		ClientName: clientName,
		Department: lifecycle.DeptGraphics,
		PostDate:   postDate,
		Status:     string(lifecycle.PendingProduction),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateEmployee creates a test employee with the given role.
func (f *Fixtures) CreateEmployee(ctx context.Context, name, email, role string) models.Employee {
	f.t.Helper()

	now := time.Now().UTC()
	e := models.Employee{
		ID:             primitive.NewObjectID(),
		EmployeeName:   name,
		EmployeeNameCI: text.Fold(name),
		Email:          email,
		Role:           role,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("employees").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test employee: %v", err)
	}
	return e
}

// CreateHandoffRecord creates a strategy-head record referencing the client.
func (f *Fixtures) CreateHandoffRecord(ctx context.Context, c models.Client) models.StrategyHeadClient {
	f.t.Helper()

	rec := models.StrategyHeadClient{
		ID:         primitive.NewObjectID(),
		ClientRef:  c.ID,
		ClientID:   c.ClientID,
		ClientName: c.ClientName,
		Stage:      "information-gathering",
		SentAt:     time.Now().UTC(),
		SentBy:     "Test Head",
	}

	if _, err := f.db.Collection("strategy_head_clients").InsertOne(ctx, rec); err != nil {
		f.t.Fatalf("failed to create test hand-off record: %v", err)
	}
	return rec
}
