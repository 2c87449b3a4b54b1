// Package timeouts provides centralized timeout values for handler operations.
//
// Handlers derive a context from the request with one of these values
// before talking to MongoDB:
//   - Ping: health checks and connectivity verification
//   - Query: a single aggregation pipeline
//   - Scan: full collection reads, such as loading every schedule
//
// Timeouts can be configured at startup using Configure(). If not
// configured, the defaults are used.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 2 * time.Second
	DefaultQuery = 10 * time.Second
	DefaultScan  = 30 * time.Second
)

var mu sync.RWMutex

var (
	ping  = DefaultPing
	query = DefaultQuery
	scan  = DefaultScan
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Query returns the timeout for a single aggregation.
func Query() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return query
}

// Scan returns the timeout for operations that read a whole collection.
func Scan() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return scan
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Ping  time.Duration
	Query time.Duration
	Scan  time.Duration
}

// Configure sets custom timeout values. It should be called during
// startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Query > 0 {
		query = cfg.Query
	}
	if cfg.Scan > 0 {
		scan = cfg.Scan
	}
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	query = DefaultQuery
	scan = DefaultScan
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Query: query, Scan: scan}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context ended because the deadline passed.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.Log, "course summary")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
