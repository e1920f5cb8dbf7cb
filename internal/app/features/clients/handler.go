// internal/app/features/clients/handler.go
package clients

import (
	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	employeestore "github.com/dalemusser/incharge/internal/app/store/employees"
	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	strategyheadstore "github.com/dalemusser/incharge/internal/app/store/strategyhead"
	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for client management: CRUD, status
// toggle, soft delete with task cascade, employee assignment, and the
// hand-off to the strategy head.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Clients       *clientstore.Store
	Tasks         *taskstore.Store
	Employees     *employeestore.Store
	StrategyHead  *strategyheadstore.Store
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Clients:       clientstore.New(db),
		Tasks:         taskstore.New(db),
		Employees:     employeestore.New(db),
		StrategyHead:  strategyheadstore.New(db),
		Notifications: notificationstore.New(db),
	}
}
