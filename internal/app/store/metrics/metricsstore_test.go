package metricsstore_test

import (
	"testing"

	metricsstore "github.com/dalemusser/academicdash/internal/app/store/metrics"
	"github.com/dalemusser/academicdash/internal/testutil"
)

func TestFetchDashboardCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, db)
	if counts != (metricsstore.Counts{}) {
		t.Errorf("expected all zero counts, got %+v", counts)
	}
}

func TestFetchDashboardCounts_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCourse(ctx, "PRF192", "SE", 15, 8)
	fx.CreateCourse(ctx, "MAE101", "SE", 15, 6)
	fx.CreateClass(ctx, "SE", "Level 1", "K15")
	fx.CreateMajor(ctx, "SE")
	fx.CreateSchedule(ctx, "SE150001", "PRF192")
	fx.CreateSchedule(ctx, "SE150002", "PRF192")
	fx.CreateSchedule(ctx, "SE150003", "MAE101")
	fx.CreateReport(ctx, "v1", "2023", "SE", "Fall", "PRF192")

	counts := metricsstore.FetchDashboardCounts(ctx, db)
	want := metricsstore.Counts{Courses: 2, Classes: 1, Majors: 1, Schedules: 3, Reports: 1}
	if counts != want {
		t.Errorf("got %+v, want %+v", counts, want)
	}
}
