package taskstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
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
	return &Store{c: db.Collection("tasks")}
}

var (
	// ErrNameRequired is returned when creating a task without a name.
	ErrNameRequired = errors.New("task name is required")
	// ErrNoClientKey is returned when a task carries neither client id nor
	// client name; such a task could never be matched to a client group.
	ErrNoClientKey = errors.New("task must carry a client id or client name")
)

// GetByID loads a task by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var t models.Task
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListAll returns every non-deleted task in creation order.
func (s *Store) ListAll(ctx context.Context) ([]models.Task, error) {
	return s.list(ctx, bson.M{"deleted": false})
}

// ListForMonth returns non-deleted tasks whose post date falls in the given
// "YYYY-MM" month. Dates are plain strings so the window is a prefix match,
// pushed down as a range so the post_date index applies.
func (s *Store) ListForMonth(ctx context.Context, monthKey string) ([]models.Task, error) {
	filter := bson.M{
		"deleted":   false,
		"post_date": bson.M{"$gte": monthKey, "$lt": monthKey + "\uffff"},
	}
	return s.list(ctx, filter)
}

// ListForClientKeys returns non-deleted tasks matched to the given client by
// id or name, mirroring the dual-key matching rule.
func (s *Store) ListForClientKeys(ctx context.Context, clientID, clientName string) ([]models.Task, error) {
	or := clientKeyFilter(clientID, clientName)
	if or == nil {
		return nil, nil
	}
	return s.list(ctx, bson.M{"deleted": false, "$or": or})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tasks []models.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func clientKeyFilter(clientID, clientName string) bson.A {
	var or bson.A
	if clientID != "" {
		or = append(or, bson.M{"client_id": clientID})
	}
	if clientName != "" {
		or = append(or, bson.M{"client_name": clientName})
	}
	return or
}

// Create inserts a new task after normalizing fields. Status defaults to
// pending-production; Deadline is expected to be pre-computed by the caller.
func (s *Store) Create(ctx context.Context, t models.Task) (models.Task, error) {
	t.ID = primitive.NewObjectID()
	t.TaskName = normalize.Name(t.TaskName)
	t.ClientID = normalize.ClientID(t.ClientID)
	t.ClientName = normalize.Name(t.ClientName)
	t.Department = normalize.Department(t.Department)

	if t.TaskName == "" {
		return models.Task{}, ErrNameRequired
	}
	if t.ClientID == "" && t.ClientName == "" {
		return models.Task{}, ErrNoClientKey
	}
	if t.Status == "" {
		t.Status = string(lifecycle.PendingProduction)
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Update holds the editable task fields. PostDate edits do not touch Deadline.
type Update struct {
	TaskName      string
	Department    string
	TaskType      string
	Description   string
	ReferenceLink string
	PostDate      string
}

// UpdateFields updates a task's editable fields.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, upd Update) error {
	name := normalize.Name(upd.TaskName)
	if name == "" {
		return ErrNameRequired
	}
	set := bson.M{
		"task_name":      name,
		"department":     normalize.Department(upd.Department),
		"task_type":      upd.TaskType,
		"description":    upd.Description,
		"reference_link": upd.ReferenceLink,
		"post_date":      upd.PostDate,
		"updated_at":     time.Now(),
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// SetStatus writes a task status. Transition legality is the caller's
// responsibility (lifecycle.Transition or ForceSet); the store just persists.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, st lifecycle.Status) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(st), "updated_at": time.Now()}})
	return err
}

// AssignToDepartment stamps assignment fields and moves the task to
// assigned-to-department in one write.
func (s *Store) AssignToDepartment(ctx context.Context, id primitive.ObjectID, dept string, emp *models.Employee, by string) error {
	now := time.Now()
	set := bson.M{
		"status":      string(lifecycle.AssignedToDepartment),
		"department":  normalize.Department(dept),
		"assigned_at": now,
		"assigned_by": by,
		"updated_at":  now,
	}
	if emp != nil {
		set["assigned_employee_id"] = emp.ID
		set["assigned_employee_name"] = emp.EmployeeName
		set["assigned_employee_email"] = emp.Email
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// ApproveForCalendar marks the task approved for the content calendar. This
// is the only write that admits a task to the calendar view.
func (s *Store) ApproveForCalendar(ctx context.Context, id primitive.ObjectID, by string) error {
	now := time.Now()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"approved_for_calendar": true,
		"added_to_calendar":     true,
		"approved_at":           now,
		"approved_by":           by,
		"status":                string(lifecycle.Approved),
		"updated_at":            now,
	}})
	return err
}

// MarkSentToStrategy flags the task as sent to strategy, stamps the time and
// actor, and moves it to contact-client, the terminal hand-back status.
func (s *Store) MarkSentToStrategy(ctx context.Context, id primitive.ObjectID, by string) error {
	now := time.Now()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"sent_to_strategy":    true,
		"sent_to_strategy_at": now,
		"sent_to_strategy_by": by,
		"status":              string(lifecycle.ContactClient),
		"updated_at":          now,
	}})
	return err
}

// SoftDelete marks a task deleted.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SoftDeleteForClientKeys soft-deletes every task matched to the given client
// by id or name. Used by the client soft-delete cascade.
func (s *Store) SoftDeleteForClientKeys(ctx context.Context, clientID, clientName string) (int64, error) {
	or := clientKeyFilter(clientID, clientName)
	if or == nil {
		return 0, nil
	}
	res, err := s.c.UpdateMany(ctx, bson.M{"deleted": false, "$or": or},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ClearEmployeeAssignments removes every reference to the given employee,
// matched by id, email, or name. Run ResetStatusesForEmployee first: once the
// assignment fields are unset the employee keys no longer match.
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
			"assigned_at":             "",
			"assigned_by":             "",
		},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ResetStatusesForEmployee moves the employee's in-flight tasks back to
// pending-production. Run this before ClearEmployeeAssignments so the
// employee keys still match.
func (s *Store) ResetStatusesForEmployee(ctx context.Context, emp *models.Employee) (int64, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"assigned_employee_id": emp.ID},
			bson.M{"assigned_employee_email": emp.Email},
			bson.M{"assigned_employee_name": emp.EmployeeName},
		},
		"status": bson.M{"$in": bson.A{
			string(lifecycle.InProgress),
			string(lifecycle.AssignedToDepartment),
		}},
	}
	res, err := s.c.UpdateMany(ctx, filter,
		bson.M{"$set": bson.M{"status": string(lifecycle.PendingProduction), "updated_at": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// CountForClientKeys counts non-deleted tasks matched to a client by id or
// name. Used for the hand-off snapshot's task count.
func (s *Store) CountForClientKeys(ctx context.Context, clientID, clientName string) (int64, error) {
	or := clientKeyFilter(clientID, clientName)
	if or == nil {
		return 0, nil
	}
	return s.c.CountDocuments(ctx, bson.M{"deleted": false, "$or": or})
}

// CountByStatus counts non-deleted tasks in the given status.
func (s *Store) CountByStatus(ctx context.Context, st lifecycle.Status) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"deleted": false, "status": string(st)})
}

// CountActive returns the number of non-deleted tasks.
func (s *Store) CountActive(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"deleted": false})
}
