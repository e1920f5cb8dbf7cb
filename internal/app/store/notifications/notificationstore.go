package notificationstore

import (
	"context"
	"time"

	"github.com/dalemusser/incharge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notifications")}
}

// Notification types written by the mutating features.
const (
	TypeAssignment   = "assignment"
	TypeHandOff      = "hand-off"
	TypeCalendarSend = "calendar-send"
	TypeImport       = "import"
)

// Add inserts a notification. Failures here must never fail the operation
// that produced the notice, so callers log and continue on error.
func (s *Store) Add(ctx context.Context, n models.Notification) error {
	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now()
	_, err := s.c.InsertOne(ctx, n)
	return err
}

// List returns up to limit notifications, unread first, newest first within
// each read state.
func (s *Store) List(ctx context.Context, limit int64) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "read", Value: 1}, {Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ns []models.Notification
	if err := cur.All(ctx, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

// MarkRead flags a single notification read.
func (s *Store) MarkRead(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "read": false},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// MarkAllRead flags every unread notification read.
func (s *Store) MarkAllRead(ctx context.Context) (int64, error) {
	res, err := s.c.UpdateMany(ctx, bson.M{"read": false},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// CountUnread returns the number of unread notifications.
func (s *Store) CountUnread(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"read": false})
}
