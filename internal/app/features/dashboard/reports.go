// internal/app/features/dashboard/reports.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"github.com/dalemusser/academicdash/internal/domain/models"
)

// ReportChart handles GET /dashboard/get-report-chart?version=.
// Returns [{_id: year, count}] for the report lines of that version.
func (h *Handler) ReportChart(w http.ResponseWriter, r *http.Request) {
	version := r.URL.Query().Get("version")
	serveQuery(h, w, r, "report chart", timeouts.Query(), func(ctx context.Context) ([]models.GroupCount, error) {
		return h.Reports.CountByYear(ctx, version)
	})
}

// Versions handles GET /dashboard/get-version.
func (h *Handler) Versions(w http.ResponseWriter, r *http.Request) {
	serveQuery(h, w, r, "report versions", timeouts.Query(), h.Reports.Versions)
}
