package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/academicdash/internal/app/system/requestlog"
	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"github.com/dalemusser/academicdash/internal/testutil"
	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "academic",
		MongoMaxPoolSize: 100,
		MongoMinPoolSize: 10,
		TimeoutPing:      2 * time.Second,
		TimeoutQuery:     10 * time.Second,
		TimeoutScan:      30 * time.Second,
	}
}

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", func(*AppConfig) {}, false},
		{"bad uri", func(c *AppConfig) { c.MongoURI = "" }, true},
		{"empty database", func(c *AppConfig) { c.MongoDatabase = " " }, true},
		{"min above max pool", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, true},
		{"zero scan timeout", func(c *AppConfig) { c.TimeoutScan = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validateAppConfig(cfg, zap.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAppConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" https://a.example.com, ,https://b.example.com ")
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Errorf("splitOrigins: got %q", got)
	}
	if got := splitOrigins(""); len(got) != 0 {
		t.Errorf("splitOrigins(\"\"): got %q, want empty", got)
	}
}

func TestStartup_ConfiguresTimeouts(t *testing.T) {
	defer timeouts.Reset()

	cfg := validConfig()
	cfg.TimeoutQuery = 3 * time.Second
	if err := Startup(t.Context(), nil, cfg, DBDeps{}, zap.NewNop()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}
	if got := timeouts.Query(); got != 3*time.Second {
		t.Errorf("Query timeout: got %v, want 3s", got)
	}
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	r := newRouter(validConfig(), deps, zap.NewNop())

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/nope"))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, `"error":"not found"`)
	if rec.Header().Get(requestlog.Header) == "" {
		t.Error("expected a request ID header")
	}
}

func TestRouter_ServesDashboardAndHealth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	r := newRouter(validConfig(), deps, zap.NewNop())

	for _, target := range []string{"/health", "/dashboard/get-major"} {
		rec := testutil.NewRecorder()
		r.ServeHTTP(rec, testutil.NewRequest("GET", target))
		rec.AssertStatus(t, http.StatusOK)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	cfg := validConfig()
	cfg.CORSAllowedOrigins = []string{"https://dash.example.com"}
	r := newRouter(cfg, deps, zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/dashboard/course/summary", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example.com" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}
}
