// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:  appCfg.TimeoutPing,
		Query: appCfg.TimeoutQuery,
		Scan:  appCfg.TimeoutScan,
	})
	cur := timeouts.Current()
	logger.Info("database timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("query", cur.Query),
		zap.Duration("scan", cur.Scan))
	return nil
}
