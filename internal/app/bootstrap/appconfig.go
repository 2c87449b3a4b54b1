// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging); everything the dashboard
// API itself needs lives here and is passed to every lifecycle hook.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database holding the academic collections
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Origins allowed to call the dashboard API from a browser.
	// "*" allows any origin.
	CORSAllowedOrigins []string

	// Per-request database timeouts
	TimeoutPing  time.Duration // health check ping
	TimeoutQuery time.Duration // single aggregation
	TimeoutScan  time.Duration // full schedule scan
}
