// internal/app/features/strategyhead/handler.go
package strategyhead

import (
	strategyheadstore "github.com/dalemusser/incharge/internal/app/store/strategyhead"
	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for the strategy head's view: the
// hand-off records, their workflow stage, and the tasks behind each record.
type Handler struct {
	DB           *mongo.Database
	Log          *zap.Logger
	StrategyHead *strategyheadstore.Store
	Tasks        *taskstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		StrategyHead: strategyheadstore.New(db),
		Tasks:        taskstore.New(db),
	}
}
