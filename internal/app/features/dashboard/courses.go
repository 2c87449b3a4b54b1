// internal/app/features/dashboard/courses.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/academicdash/internal/app/system/jsonresp"
	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"github.com/dalemusser/academicdash/internal/domain/models"
)

// CourseSummary handles POST /dashboard/course/summary.
// Body {major, enrollment}; returns [{_id: course name, count}].
func (h *Handler) CourseSummary(w http.ResponseWriter, r *http.Request) {
	req, fields := decodeCohort(w, r)
	if fields != nil {
		jsonresp.Invalid(w, fields)
		return
	}
	serveQuery(h, w, r, "course summary", timeouts.Query(), func(ctx context.Context) ([]models.GroupCount, error) {
		return h.Courses.CountByName(ctx, req.Major, req.enrollment())
	})
}

// CourseAvg handles POST /dashboard/course/avg.
// Body {major, enrollment}; returns [{_id: course name, avg}].
func (h *Handler) CourseAvg(w http.ResponseWriter, r *http.Request) {
	req, fields := decodeCohort(w, r)
	if fields != nil {
		jsonresp.Invalid(w, fields)
		return
	}
	serveQuery(h, w, r, "course average", timeouts.Query(), func(ctx context.Context) ([]models.GroupAvg, error) {
		return h.Courses.AvgScoreByName(ctx, req.Major, req.enrollment())
	})
}

// CourseNames handles GET /dashboard/course.
func (h *Handler) CourseNames(w http.ResponseWriter, r *http.Request) {
	serveQuery(h, w, r, "course names", timeouts.Query(), h.Courses.Names)
}

// ScoreByMajor handles GET /dashboard/course-score-by-major?name=.
func (h *Handler) ScoreByMajor(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	serveQuery(h, w, r, "course score by major", timeouts.Query(), func(ctx context.Context) ([]models.GroupAvg, error) {
		return h.Courses.AvgScoreByMajor(ctx, name)
	})
}

// ScoreByEnrollment handles GET /dashboard/course-score-by-enrollment?name=.
func (h *Handler) ScoreByEnrollment(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	serveQuery(h, w, r, "course score by enrollment", timeouts.Query(), func(ctx context.Context) ([]models.GroupAvg, error) {
		return h.Courses.AvgScoreByEnrollment(ctx, name)
	})
}

// Enrollments handles GET /dashboard/get-enroll.
func (h *Handler) Enrollments(w http.ResponseWriter, r *http.Request) {
	serveQuery(h, w, r, "enrollments", timeouts.Query(), h.Courses.Enrollments)
}

// MajorNames handles GET /dashboard/get-major.
func (h *Handler) MajorNames(w http.ResponseWriter, r *http.Request) {
	serveQuery(h, w, r, "majors", timeouts.Query(), h.Majors.Names)
}
