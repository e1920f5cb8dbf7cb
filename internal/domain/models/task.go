// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a unit of production work for a client.
//
// PostDate and Deadline are stored as "YYYY-MM-DD" strings. Month filtering is
// a string-prefix test on PostDate, which avoids timezone conversion entirely.
// Deadline is derived as PostDate minus two calendar days at creation and is
// never recomputed if PostDate is edited afterwards.
type Task struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaskName string             `bson:"task_name" json:"task_name"`

	ClientID   string `bson:"client_id" json:"client_id"`
	ClientName string `bson:"client_name" json:"client_name"`

	Department string `bson:"department,omitempty" json:"department,omitempty"` // video | graphics | social-media | production | strategy
	TaskType   string `bson:"task_type,omitempty" json:"task_type,omitempty"`

	Description        string `bson:"description,omitempty" json:"description,omitempty"`
	ClientInstructions string `bson:"client_instructions,omitempty" json:"client_instructions,omitempty"`
	ReferenceLink      string `bson:"reference_link,omitempty" json:"reference_link,omitempty"`

	PostDate string `bson:"post_date" json:"post_date"`
	Deadline string `bson:"deadline,omitempty" json:"deadline,omitempty"`

	Status  string `bson:"status" json:"status"`
	Deleted bool   `bson:"deleted" json:"deleted"`

	ApprovedForCalendar bool       `bson:"approved_for_calendar" json:"approved_for_calendar"`
	AddedToCalendar     bool       `bson:"added_to_calendar" json:"added_to_calendar"`
	ApprovedAt          *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	ApprovedBy          string     `bson:"approved_by,omitempty" json:"approved_by,omitempty"`

	SentToStrategy   bool       `bson:"sent_to_strategy" json:"sent_to_strategy"`
	SentToStrategyAt *time.Time `bson:"sent_to_strategy_at,omitempty" json:"sent_to_strategy_at,omitempty"`
	SentToStrategyBy string     `bson:"sent_to_strategy_by,omitempty" json:"sent_to_strategy_by,omitempty"`

	AssignedEmployeeID    *primitive.ObjectID `bson:"assigned_employee_id,omitempty" json:"assigned_employee_id,omitempty"`
	AssignedEmployeeName  string              `bson:"assigned_employee_name,omitempty" json:"assigned_employee_name,omitempty"`
	AssignedEmployeeEmail string              `bson:"assigned_employee_email,omitempty" json:"assigned_employee_email,omitempty"`
	AssignedAt            *time.Time          `bson:"assigned_at,omitempty" json:"assigned_at,omitempty"`
	AssignedBy            string              `bson:"assigned_by,omitempty" json:"assigned_by,omitempty"`

	ImportBatchID string `bson:"import_batch_id,omitempty" json:"import_batch_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
