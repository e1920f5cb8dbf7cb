// internal/app/features/production/handler.go
package production

import (
	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	employeestore "github.com/dalemusser/incharge/internal/app/store/employees"
	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for the production board: the grouped
// task list, task creation, department assignment, and lifecycle moves.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Tasks         *taskstore.Store
	Clients       *clientstore.Store
	Employees     *employeestore.Store
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Tasks:         taskstore.New(db),
		Clients:       clientstore.New(db),
		Employees:     employeestore.New(db),
		Notifications: notificationstore.New(db),
	}
}
