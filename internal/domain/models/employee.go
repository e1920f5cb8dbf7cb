// internal/domain/models/employee.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee represents production staff and strategy heads.
//
// Sessions are re-validated against this record on every request: a missing,
// inactive, or deleted employee is signed out immediately, not just at login.
type Employee struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeName   string             `bson:"employee_name" json:"employee_name"`
	EmployeeNameCI string             `bson:"employee_name_ci" json:"employee_name_ci"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password_hash" json:"-"`
	Role           string             `bson:"role" json:"role"`     // employee | head
	Status         string             `bson:"status" json:"status"` // active | disabled
	Deleted        bool               `bson:"deleted" json:"deleted"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
