package strategyheadstore

import (
	"context"
	"errors"
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
	return &Store{c: db.Collection("strategy_head_clients")}
}

// StageInitial is the stage stamped on every new hand-off record.
const StageInitial = "information-gathering"

var errStageRequired = errors.New("stage is required")

// GetByID loads a hand-off record by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.StrategyHeadClient, error) {
	var rec models.StrategyHeadClient
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByClientRef loads the hand-off record for the given source client.
// Returns mongo.ErrNoDocuments when the client has never been handed off.
func (s *Store) GetByClientRef(ctx context.Context, clientRef primitive.ObjectID) (*models.StrategyHeadClient, error) {
	var rec models.StrategyHeadClient
	filter := bson.M{"client_ref": clientRef, "deleted": false}
	if err := s.c.FindOne(ctx, filter).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListAll returns every non-deleted hand-off record, most recent first.
func (s *Store) ListAll(ctx context.Context) ([]models.StrategyHeadClient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"deleted": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []models.StrategyHeadClient
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// CreateFromClient inserts a hand-off record snapshotting the client as it
// stands now. taskCount is the client's live task count at hand-off time and
// is never updated afterwards.
func (s *Store) CreateFromClient(ctx context.Context, c *models.Client, taskCount int, by string) (models.StrategyHeadClient, error) {
	rec := models.StrategyHeadClient{
		ID:                   primitive.NewObjectID(),
		ClientRef:            c.ID,
		ClientID:             c.ClientID,
		ClientName:           c.ClientName,
		ContactNumber:        c.ContactNumber,
		Email:                c.Email,
		VideoInstructions:    c.VideoInstructions,
		GraphicsInstructions: c.GraphicsInstructions,
		Stage:                StageInitial,
		TaskCount:            taskCount,
		SentAt:               time.Now(),
		SentBy:               by,
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return models.StrategyHeadClient{}, err
	}
	return rec, nil
}

// SetStage updates the free-text workflow stage.
func (s *Store) SetStage(ctx context.Context, id primitive.ObjectID, stage string) error {
	if stage == "" {
		return errStageRequired
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"stage": stage}})
	return err
}

// SoftDelete marks a hand-off record deleted.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// CountActive returns the number of non-deleted hand-off records.
func (s *Store) CountActive(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"deleted": false})
}
