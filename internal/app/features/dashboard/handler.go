// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	classstore "github.com/dalemusser/academicdash/internal/app/store/classes"
	coursestore "github.com/dalemusser/academicdash/internal/app/store/courses"
	majorstore "github.com/dalemusser/academicdash/internal/app/store/majors"
	reportstore "github.com/dalemusser/academicdash/internal/app/store/reports"
	schedulestore "github.com/dalemusser/academicdash/internal/app/store/schedules"
	"github.com/dalemusser/academicdash/internal/app/system/jsonresp"
	"github.com/dalemusser/academicdash/internal/app/system/requestlog"
	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the chart data for the academic dashboard.
type Handler struct {
	DB        *mongo.Database
	Courses   *coursestore.Store
	Classes   *classstore.Store
	Majors    *majorstore.Store
	Reports   *reportstore.Store
	Schedules *schedulestore.Store
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Courses:   coursestore.New(db),
		Classes:   classstore.New(db),
		Majors:    majorstore.New(db),
		Reports:   reportstore.New(db),
		Schedules: schedulestore.New(db),
		Log:       logger,
	}
}

// serveQuery runs fn under a timeout and writes its result as JSON.
// Store errors are logged and reported as a generic 500.
func serveQuery[T any](h *Handler, w http.ResponseWriter, r *http.Request, op string, timeout time.Duration, fn func(context.Context) (T, error)) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeout, h.Log, op)
	defer cancel()

	out, err := fn(ctx)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	jsonresp.OK(w, out)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.Log.Error("dashboard query failed",
		zap.String("operation", op),
		zap.String("request_id", requestlog.FromContext(r.Context())),
		zap.Error(err))
	jsonresp.Error(w, http.StatusInternalServerError, "database error")
}
