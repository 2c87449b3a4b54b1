// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/academicdash/internal/app/features/dashboard"
	healthfeature "github.com/dalemusser/academicdash/internal/app/features/health"
	"github.com/dalemusser/academicdash/internal/app/system/jsonresp"
	"github.com/dalemusser/academicdash/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. The dashboard API is public and JSON
// only: requests get an ID and an access log line, browsers are admitted
// per the configured CORS origins, and panics become 500s.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(appCfg, deps, logger), nil
}

func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestlog.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(appCfg.CORSAllowedOrigins)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonresp.Error(w, http.StatusNotFound, "not found")
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Chart data
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestlog.Header},
		ExposedHeaders: []string{requestlog.Header},
		MaxAge:         300,
	}
}
