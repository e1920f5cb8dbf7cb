package clientstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/status"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("clients")}
}

var (
	// ErrNameRequired is returned when creating a client without a name.
	ErrNameRequired = errors.New("client name is required")
	errBadStatus    = errors.New(`status must be "active"|"disabled"`)
)

// GetByID loads a client by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var c models.Client
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByClientID loads a client by its human-facing client id. Deleted clients
// are excluded; callers resolving import rows must never resurrect one.
func (s *Store) GetByClientID(ctx context.Context, clientID string) (*models.Client, error) {
	var c models.Client
	filter := bson.M{"client_id": normalize.ClientID(clientID), "deleted": false}
	if err := s.c.FindOne(ctx, filter).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll returns every non-deleted client in collection order. This is the
// seed list for the grouping board, so order must be stable.
func (s *Store) ListAll(ctx context.Context) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"deleted": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var clients []models.Client
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Create inserts a new client after normalizing fields.
func (s *Store) Create(ctx context.Context, c models.Client) (models.Client, error) {
	c.ID = primitive.NewObjectID()
	c.ClientName = normalize.Name(c.ClientName)
	c.ClientNameCI = text.Fold(c.ClientName)
	c.ClientID = normalize.ClientID(c.ClientID)
	c.Email = normalize.Email(c.Email)
	c.ContactNumber = normalize.ContactNumber(c.ContactNumber)

	if c.ClientName == "" {
		return models.Client{}, ErrNameRequired
	}
	if c.Status == "" {
		c.Status = status.Active
	}
	if !status.IsValid(c.Status) {
		return models.Client{}, errBadStatus
	}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// Update holds the editable client fields.
type Update struct {
	ClientName           string
	ClientID             string
	ContactNumber        string
	Email                string
	VideoInstructions    string
	GraphicsInstructions string
	Status               string
}

// UpdateFields updates a client's editable fields.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, upd Update) error {
	name := normalize.Name(upd.ClientName)
	if name == "" {
		return ErrNameRequired
	}
	if !status.IsValid(upd.Status) {
		return errBadStatus
	}
	set := bson.M{
		"client_name":           name,
		"client_name_ci":        text.Fold(name),
		"client_id":             normalize.ClientID(upd.ClientID),
		"contact_number":        normalize.ContactNumber(upd.ContactNumber),
		"email":                 normalize.Email(upd.Email),
		"video_instructions":    upd.VideoInstructions,
		"graphics_instructions": upd.GraphicsInstructions,
		"status":                upd.Status,
		"updated_at":            time.Now(),
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// SetStatus flips a client's active/disabled status.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, st string) error {
	if !status.IsValid(st) {
		return errBadStatus
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": st, "updated_at": time.Now()}})
	return err
}

// SoftDelete marks a client deleted. The document stays in the collection;
// the grouping board and imports filter on the flag.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// MarkSentToStrategyHead sets the hand-off flag on a client, stamped now. It
// is the second write of the hand-off pair; the repair worker reconciles
// records where the first write landed and this one did not.
func (s *Store) MarkSentToStrategyHead(ctx context.Context, id primitive.ObjectID, by string) error {
	return s.MarkSentToStrategyHeadAt(ctx, id, time.Now(), by)
}

// MarkSentToStrategyHeadAt sets the hand-off flag with an explicit stamp. The
// repair worker uses it to carry the snapshot record's time and actor onto
// the client rather than inventing a new stamp.
func (s *Store) MarkSentToStrategyHeadAt(ctx context.Context, id primitive.ObjectID, at time.Time, by string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"sent_to_strategy_head":    true,
		"sent_to_strategy_head_at": at,
		"sent_to_strategy_head_by": by,
		"updated_at":               time.Now(),
	}})
	return err
}

// AssignEmployee stamps the assigned employee onto a client.
func (s *Store) AssignEmployee(ctx context.Context, id primitive.ObjectID, emp *models.Employee) error {
	set := bson.M{"updated_at": time.Now()}
	if emp == nil {
		_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
			"$set": set,
			"$unset": bson.M{
				"assigned_employee_id":    "",
				"assigned_employee_name":  "",
				"assigned_employee_email": "",
			},
		})
		return err
	}
	set["assigned_employee_id"] = emp.ID
	set["assigned_employee_name"] = emp.EmployeeName
	set["assigned_employee_email"] = emp.Email
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// ClearEmployeeAssignments removes every reference to the given employee,
// matched by id, email, or name. Used by the employee-deletion cascade.
func (s *Store) ClearEmployeeAssignments(ctx context.Context, emp *models.Employee) (int64, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"assigned_employee_id": emp.ID},
		bson.M{"assigned_employee_email": emp.Email},
		bson.M{"assigned_employee_name": emp.EmployeeName},
	}}
	res, err := s.c.UpdateMany(ctx, filter, bson.M{
		"$set": bson.M{"updated_at": time.Now()},
		"$unset": bson.M{
			"assigned_employee_id":    "",
			"assigned_employee_name":  "",
			"assigned_employee_email": "",
		},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// CountActive returns the number of non-deleted clients.
func (s *Store) CountActive(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"deleted": false})
}

// CountSentToStrategyHead returns the number of non-deleted clients that have
// been handed off.
func (s *Store) CountSentToStrategyHead(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"deleted": false, "sent_to_strategy_head": true})
}
