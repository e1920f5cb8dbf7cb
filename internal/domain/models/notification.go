// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an in-app notice written by mutating operations
// (assignment, hand-off, calendar send).
type Notification struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type    string             `bson:"type" json:"type"`
	Message string             `bson:"message" json:"message"`

	ClientID  string              `bson:"client_id,omitempty" json:"client_id,omitempty"`
	TaskID    *primitive.ObjectID `bson:"task_id,omitempty" json:"task_id,omitempty"`
	ActorName string              `bson:"actor_name,omitempty" json:"actor_name,omitempty"`

	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
