package requestlog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/academicdash/internal/app/system/requestlog"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	h := requestlog.Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestlog.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard/course", nil))

	id := rec.Header().Get(requestlog.Header)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid request id, got %q", id)
	}
	if seen != id {
		t.Errorf("context id = %q, header id = %q", seen, id)
	}

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("status field = %v", fields["status"])
	}
	if fields["path"] != "/dashboard/course" {
		t.Errorf("path field = %v", fields["path"])
	}
}

func TestMiddleware_ReusesIncomingID(t *testing.T) {
	h := requestlog.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestlog.Header, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestlog.Header); got != "abc-123" {
		t.Errorf("request id = %q, want %q", got, "abc-123")
	}
}
