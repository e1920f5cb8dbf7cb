// internal/app/features/reports/handler.go
package reports

import (
	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for report exports.
type Handler struct {
	DB      *mongo.Database
	Log     *zap.Logger
	Clients *clientstore.Store
	Tasks   *taskstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Log:     logger,
		Clients: clientstore.New(db),
		Tasks:   taskstore.New(db),
	}
}
