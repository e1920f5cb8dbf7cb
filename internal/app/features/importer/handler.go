// internal/app/features/importer/handler.go
package importer

import (
	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for bulk spreadsheet imports.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Clients       *clientstore.Store
	Tasks         *taskstore.Store
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Clients:       clientstore.New(db),
		Tasks:         taskstore.New(db),
		Notifications: notificationstore.New(db),
	}
}
