// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for academicdash.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, cors_allowed_origins, etc.
//   - Environment variables: ACADEMICDASH_MONGO_URI, ACADEMICDASH_TIMEOUT_SCAN, etc.
//   - Command-line flags: --mongo_uri, --timeout_scan, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "academic", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated origins allowed to call the API ('*' for any)"},

	{Name: "timeout_ping", Default: "2s", Desc: "Timeout for the health check ping"},
	{Name: "timeout_query", Default: "10s", Desc: "Timeout for one aggregation query"},
	{Name: "timeout_scan", Default: "30s", Desc: "Timeout for scans of the schedules collection"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig reads .env and config files,
// environment variables (WAFFLE_* for core, ACADEMICDASH_* for the app)
// and flags, with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ACADEMICDASH", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),

		TimeoutPing:  appValues.Duration("timeout_ping", timeouts.DefaultPing),
		TimeoutQuery: appValues.Duration("timeout_query", timeouts.DefaultQuery),
		TimeoutScan:  appValues.Duration("timeout_scan", timeouts.DefaultScan),
	}

	return coreCfg, appCfg, nil
}

// splitOrigins parses a comma-separated origin list, dropping blanks.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked here so a bad value fails before we
// attempt to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	return validateAppConfig(appCfg, logger)
}

func validateAppConfig(appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	for name, d := range map[string]time.Duration{
		"timeout_ping":  appCfg.TimeoutPing,
		"timeout_query": appCfg.TimeoutQuery,
		"timeout_scan":  appCfg.TimeoutScan,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	return nil
}
