// internal/app/features/employees/handler.go
package employees

import (
	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	employeestore "github.com/dalemusser/incharge/internal/app/store/employees"
	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for employee management. Deletion
// cascades across tasks and clients, so the handler carries those stores too.
type Handler struct {
	DB        *mongo.Database
	Log       *zap.Logger
	Employees *employeestore.Store
	Tasks     *taskstore.Store
	Clients   *clientstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Employees: employeestore.New(db),
		Tasks:     taskstore.New(db),
		Clients:   clientstore.New(db),
	}
}
