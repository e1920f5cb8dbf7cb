// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	employeestore "github.com/dalemusser/incharge/internal/app/store/employees"
	strategyheadstore "github.com/dalemusser/incharge/internal/app/store/strategyhead"
	"github.com/dalemusser/incharge/internal/app/system/workers"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// repairWorker is started here and stopped in Shutdown.
var repairWorker *workers.HandoffRepair

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. InCharge
// seeds the initial head account when configured and starts the hand-off
// repair worker.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := ensureSuperAdmin(ctx, appCfg, deps, logger); err != nil {
		return err
	}

	repairWorker = workers.NewHandoffRepair(
		clientstore.New(deps.MongoDatabase),
		strategyheadstore.New(deps.MongoDatabase),
		logger,
		appCfg.HandoffRepairInterval,
	)
	repairWorker.Start()

	return nil
}

// ensureSuperAdmin creates the configured head account if no employee with
// that email exists yet. Without it a fresh deployment has no way to sign in.
func ensureSuperAdmin(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail == "" {
		return nil
	}

	emps := employeestore.New(deps.MongoDatabase)
	if _, err := emps.GetByEmail(ctx, appCfg.SuperAdminEmail); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(appCfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = emps.Create(ctx, models.Employee{
		EmployeeName: "Super Admin",
		Email:        appCfg.SuperAdminEmail,
		PasswordHash: string(hash),
		Role:         "head",
	})
	if err == employeestore.ErrDuplicateEmail {
		// Raced another instance; the account exists.
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("superadmin account created", zap.String("email", appCfg.SuperAdminEmail))
	return nil
}
