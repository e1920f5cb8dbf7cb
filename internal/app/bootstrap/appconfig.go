// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS, body limits). AppConfig is everything specific to this application:
// the Mongo connection, session cookies, the repair worker cadence, and the
// superadmin bootstrap.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: incharge-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Hand-off reconciler
	HandoffRepairInterval time.Duration // How often the repair worker scans for drift

	// SuperAdmin bootstrap: an initial head account created on startup when
	// the roster is empty.
	SuperAdminEmail    string
	SuperAdminPassword string
}
