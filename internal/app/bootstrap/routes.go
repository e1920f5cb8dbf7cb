// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	calendarfeature "github.com/dalemusser/incharge/internal/app/features/calendar"
	clientsfeature "github.com/dalemusser/incharge/internal/app/features/clients"
	dashboardfeature "github.com/dalemusser/incharge/internal/app/features/dashboard"
	employeesfeature "github.com/dalemusser/incharge/internal/app/features/employees"
	healthfeature "github.com/dalemusser/incharge/internal/app/features/health"
	importerfeature "github.com/dalemusser/incharge/internal/app/features/importer"
	loginfeature "github.com/dalemusser/incharge/internal/app/features/login"
	logoutfeature "github.com/dalemusser/incharge/internal/app/features/logout"
	notificationsfeature "github.com/dalemusser/incharge/internal/app/features/notifications"
	productionfeature "github.com/dalemusser/incharge/internal/app/features/production"
	reportsfeature "github.com/dalemusser/incharge/internal/app/features/reports"
	strategyheadfeature "github.com/dalemusser/incharge/internal/app/features/strategyhead"
	employeestore "github.com/dalemusser/incharge/internal/app/store/employees"
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It creates the session manager, applies
// the session-loading middleware globally, and mounts each feature router
// under its path.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Sessions are re-validated against the employee record on every request,
	// so disabled or deleted employees are signed out immediately.
	sessionMgr.SetFetcher(employeestore.NewFetcher(deps.MongoDatabase))

	db := deps.MongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads the session user into context if signed in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(db, sessionMgr, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Dashboard counters
	dashboardHandler := dashboardfeature.NewHandler(db, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Client management and hand-off
	clientsHandler := clientsfeature.NewHandler(db, logger)
	r.Mount("/clients", clientsfeature.Routes(clientsHandler))

	// Production board and task lifecycle
	productionHandler := productionfeature.NewHandler(db, logger)
	r.Mount("/production", productionfeature.Routes(productionHandler))

	// Content calendar
	calendarHandler := calendarfeature.NewHandler(db, logger)
	r.Mount("/calendar", calendarfeature.Routes(calendarHandler))

	// Strategy head view
	strategyHeadHandler := strategyheadfeature.NewHandler(db, logger)
	r.Mount("/strategy-head", strategyheadfeature.Routes(strategyHeadHandler))

	// Employee management
	employeesHandler := employeesfeature.NewHandler(db, logger)
	r.Mount("/employees", employeesfeature.Routes(employeesHandler))

	// Bulk spreadsheet import
	importerHandler := importerfeature.NewHandler(db, logger)
	r.Mount("/import", importerfeature.Routes(importerHandler))

	// Report exports
	reportsHandler := reportsfeature.NewHandler(db, logger)
	r.Mount("/reports", reportsfeature.Routes(reportsHandler))

	// Notification feed
	notificationsHandler := notificationsfeature.NewHandler(db, logger)
	r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

	return r, nil
}
