// internal/app/features/dashboard/students.go
package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/academicdash/internal/app/system/jsonresp"
	"github.com/dalemusser/academicdash/internal/app/system/studentcount"
	"github.com/dalemusser/academicdash/internal/app/system/timeouts"
	"github.com/dalemusser/academicdash/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// TotalStudent handles POST /dashboard/get-total-student.
// Body {major, enrollment}; returns the bare number of schedules whose
// student code carries both codes.
func (h *Handler) TotalStudent(w http.ResponseWriter, r *http.Request) {
	req, fields := decodeCohort(w, r)
	if fields != nil {
		jsonresp.Invalid(w, fields)
		return
	}
	serveQuery(h, w, r, "total student", timeouts.Scan(), func(ctx context.Context) (int, error) {
		schedules, err := h.Schedules.All(ctx)
		if err != nil {
			return 0, err
		}
		return studentcount.Count(schedules, req.Major, req.enrollmentToken()), nil
	})
}

// NewChart handles GET /dashboard/get-new-chart?major=&enroll=&semester=&year=.
//
// For every course reported for the major in that year and semester, it
// returns how many matching students take the course (totalStudentLearned)
// next to the number of matching students overall (totalStudent).
func (h *Handler) NewChart(w http.ResponseWriter, r *http.Request) {
	q, fields := parseChartQuery(r)
	if fields != nil {
		jsonresp.Invalid(w, fields)
		return
	}
	serveQuery(h, w, r, "new chart", timeouts.Scan(), func(ctx context.Context) ([]models.CourseChartRow, error) {
		var (
			courses   []models.GroupKey
			schedules []models.Schedule
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			courses, err = h.Reports.Courses(gctx, q.Major, q.Year, q.Semester)
			return err
		})
		g.Go(func() error {
			var err error
			schedules, err = h.Schedules.All(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return buildChart(courses, schedules, q.Major, q.Enroll), nil
	})
}

func buildChart(courses []models.GroupKey, schedules []models.Schedule, major, enroll string) []models.CourseChartRow {
	m := studentcount.NewMatcher(major, enroll)
	total := m.Count(schedules)

	rows := make([]models.CourseChartRow, 0, len(courses))
	for _, c := range courses {
		learned := 0
		if c.ID != nil {
			learned = m.CountCourse(schedules, courseToken(c.ID))
		}
		rows = append(rows, models.CourseChartRow{
			Group:               c.ID,
			TotalStudentLearned: learned,
			TotalStudent:        total,
		})
	}
	return rows
}

func courseToken(id any) string {
	if s, ok := id.(string); ok {
		return s
	}
	return fmt.Sprint(id)
}
