// internal/app/features/dashboard/routes.go
package dashboard

import "github.com/go-chi/chi/v5"

// Routes returns the dashboard chart API, mounted at /dashboard.
// Every endpoint is public.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/course/summary", h.CourseSummary)
	r.Post("/course/avg", h.CourseAvg)
	r.Post("/get-total-student", h.TotalStudent)

	r.Get("/course", h.CourseNames)
	r.Get("/course-score-by-major", h.ScoreByMajor)
	r.Get("/course-score-by-enrollment", h.ScoreByEnrollment)
	r.Get("/get-enroll", h.Enrollments)
	r.Get("/get-major", h.MajorNames)

	r.Get("/get-english-level", h.EnglishLevels)
	r.Get("/get-batch", h.Batches)
	r.Get("/count-class-by-english-level", h.ClassesByEnglishLevel)
	r.Get("/count-class-by-batch", h.ClassesByBatch)

	r.Get("/get-report-chart", h.ReportChart)
	r.Get("/get-version", h.Versions)
	r.Get("/get-new-chart", h.NewChart)

	r.Get("/overview", h.Overview)

	return r
}
