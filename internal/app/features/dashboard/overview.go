// internal/app/features/dashboard/overview.go
package dashboard

import (
	"context"
	"net/http"

	metricsstore "github.com/dalemusser/academicdash/internal/app/store/metrics"
	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
)

// Overview handles GET /dashboard/overview: document totals per collection.
// A collection that cannot be counted reports 0.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	serveQuery(h, w, r, "overview", timeouts.Query(), func(ctx context.Context) (metricsstore.Counts, error) {
		return metricsstore.FetchDashboardCounts(ctx, h.DB), nil
	})
}
