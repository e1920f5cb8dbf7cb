// internal/app/features/notifications/handler.go
package notifications

import (
	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for the notification feed.
type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		Notifications: notificationstore.New(db),
	}
}
