// internal/app/features/dashboard/classes.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"github.com/dalemusser/academicdash/internal/domain/models"
)

// EnglishLevels handles GET /dashboard/get-english-level.
func (h *Handler) EnglishLevels(w http.ResponseWriter, r *http.Request) {
	serveQuery(h, w, r, "english levels", timeouts.Query(), h.Classes.EnglishLevels)
}

// Batches handles GET /dashboard/get-batch.
func (h *Handler) Batches(w http.ResponseWriter, r *http.Request) {
	serveQuery(h, w, r, "batches", timeouts.Query(), h.Classes.Batches)
}

// ClassesByEnglishLevel handles GET /dashboard/count-class-by-english-level?major=.
func (h *Handler) ClassesByEnglishLevel(w http.ResponseWriter, r *http.Request) {
	major := r.URL.Query().Get("major")
	serveQuery(h, w, r, "classes by english level", timeouts.Query(), func(ctx context.Context) ([]models.GroupCount, error) {
		return h.Classes.CountByEnglishLevel(ctx, major)
	})
}

// ClassesByBatch handles GET /dashboard/count-class-by-batch?major=.
func (h *Handler) ClassesByBatch(w http.ResponseWriter, r *http.Request) {
	major := r.URL.Query().Get("major")
	serveQuery(h, w, r, "classes by batch", timeouts.Query(), func(ctx context.Context) ([]models.GroupCount, error) {
		return h.Classes.CountByBatch(ctx, major)
	})
}
