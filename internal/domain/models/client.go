// internal/domain/models/client.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is an agency client moving through the production workflow.
//
// NOTE:
//   - ClientID is the human-facing id shown in forms and spreadsheets. It is
//     sequential-looking but not guaranteed unique; the ObjectID is the true
//     identity. Tasks are matched to clients by ClientID OR ClientName because
//     the two ingestion paths (manual form, bulk import) populate them
//     inconsistently. See the match package.
//   - Deleted is a soft-delete flag; client documents are never removed.
type Client struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID      string             `bson:"client_id" json:"client_id"`
	ClientName    string             `bson:"client_name" json:"client_name"`
	ClientNameCI  string             `bson:"client_name_ci" json:"client_name_ci"` // lowercase, diacritics-stripped
	ContactNumber string             `bson:"contact_number,omitempty" json:"contact_number,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`

	// Department briefs copied onto tasks at creation time.
	VideoInstructions    string `bson:"video_instructions,omitempty" json:"video_instructions,omitempty"`
	GraphicsInstructions string `bson:"graphics_instructions,omitempty" json:"graphics_instructions,omitempty"`

	Status  string `bson:"status" json:"status"` // active | disabled
	Deleted bool   `bson:"deleted" json:"deleted"`

	SentToStrategyHead   bool       `bson:"sent_to_strategy_head" json:"sent_to_strategy_head"`
	SentToStrategyHeadAt *time.Time `bson:"sent_to_strategy_head_at,omitempty" json:"sent_to_strategy_head_at,omitempty"`
	SentToStrategyHeadBy string     `bson:"sent_to_strategy_head_by,omitempty" json:"sent_to_strategy_head_by,omitempty"`

	AssignedEmployeeID    *primitive.ObjectID `bson:"assigned_employee_id,omitempty" json:"assigned_employee_id,omitempty"`
	AssignedEmployeeName  string              `bson:"assigned_employee_name,omitempty" json:"assigned_employee_name,omitempty"`
	AssignedEmployeeEmail string              `bson:"assigned_employee_email,omitempty" json:"assigned_employee_email,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
