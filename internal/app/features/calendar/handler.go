// internal/app/features/calendar/handler.go
package calendar

import (
	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for the content calendar: the monthly
// view of approved tasks, the approval that admits a task, and the bulk
// hand-back of an approved month to strategy.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Tasks         *taskstore.Store
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Tasks:         taskstore.New(db),
		Notifications: notificationstore.New(db),
	}
}
