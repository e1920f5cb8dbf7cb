package employeestore

import (
	"context"

	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/dalemusser/incharge/internal/app/system/status"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fetcher adapts the employee store to auth.Fetcher so sessions are
// re-validated against the live employee record on every request.
type Fetcher struct {
	store *Store
}

// NewFetcher builds a session fetcher backed by the employees collection.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{store: New(db)}
}

// FetchSessionEmployee loads the employee for the session id. It returns
// ok=false when the employee is missing, deleted, or disabled, which signs
// the session out immediately.
func (f *Fetcher) FetchSessionEmployee(ctx context.Context, idHex string) (*auth.SessionUser, bool, error) {
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, false, nil
	}

	e, err := f.store.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if e.Deleted || e.Status != status.Active {
		return nil, false, nil
	}

	return &auth.SessionUser{
		ID:    e.ID.Hex(),
		Name:  e.EmployeeName,
		Email: e.Email,
		Role:  e.Role,
	}, true, nil
}
