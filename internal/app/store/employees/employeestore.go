package employeestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/status"
	"github.com/dalemusser/incharge/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
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
	return &Store{c: db.Collection("employees")}
}

var (
	// ErrDuplicateEmail is returned when creating an employee with an email that already exists.
	ErrDuplicateEmail = errors.New("an employee with this email already exists")
	errBadRole        = errors.New(`role must be "employee"|"head"`)
	errBadStatus      = errors.New(`status must be "active"|"disabled"`)
	errEmailRequired  = errors.New("email is required")
)

// GetByID loads an employee by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var e models.Employee
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByEmail looks up an employee by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var e models.Employee
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListAll returns every non-deleted employee ordered by name.
func (s *Store) ListAll(ctx context.Context) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"deleted": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var emps []models.Employee
	if err := cur.All(ctx, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

// Create inserts a new employee. The caller supplies PasswordHash already
// bcrypt-hashed; the store never sees plaintext.
func (s *Store) Create(ctx context.Context, e models.Employee) (models.Employee, error) {
	e.ID = primitive.NewObjectID()
	e.EmployeeName = normalize.Name(e.EmployeeName)
	e.EmployeeNameCI = text.Fold(e.EmployeeName)
	e.Email = normalize.Email(e.Email)

	if e.Email == "" {
		return models.Employee{}, errEmailRequired
	}
	switch e.Role {
	case "employee", "head":
		// ok
	default:
		return models.Employee{}, errBadRole
	}
	if e.Status == "" {
		e.Status = status.Active
	}
	if !status.IsValid(e.Status) {
		return models.Employee{}, errBadStatus
	}

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Employee{}, ErrDuplicateEmail
		}
		return models.Employee{}, err
	}
	return e, nil
}

// Update holds the editable employee fields. PasswordHash is applied only
// when non-empty.
type Update struct {
	EmployeeName string
	Email        string
	Role         string
	Status       string
	PasswordHash string
}

// UpdateFields updates an employee. Returns ErrDuplicateEmail if the email
// already belongs to another employee.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, upd Update) error {
	switch upd.Role {
	case "employee", "head":
	default:
		return errBadRole
	}
	if !status.IsValid(upd.Status) {
		return errBadStatus
	}

	name := normalize.Name(upd.EmployeeName)
	set := bson.M{
		"employee_name":    name,
		"employee_name_ci": text.Fold(name),
		"email":            normalize.Email(upd.Email),
		"role":             upd.Role,
		"status":           upd.Status,
		"updated_at":       time.Now(),
	}
	if upd.PasswordHash != "" {
		set["password_hash"] = upd.PasswordHash
	}

	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// SetStatus flips an employee's active/disabled status.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, st string) error {
	if !status.IsValid(st) {
		return errBadStatus
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": st, "updated_at": time.Now()}})
	return err
}

// Delete removes an employee document permanently. Unlike clients and tasks,
// deletion is hard: the cascade has already nulled every reference, and a
// stale employee record would keep satisfying the unique email index.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EmailExistsForOther checks if an email already exists for an employee other
// than the given ID.
func (s *Store) EmailExistsForOther(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"email": normalize.Email(email),
		"_id":   bson.M{"$ne": excludeID},
	}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// CountActive returns the number of non-deleted employees.
func (s *Store) CountActive(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"deleted": false})
}
