// internal/app/store/reports/reportstore.go
package reportstore

import (
	"context"

	"github.com/dalemusser/academicdash/internal/app/store/queries/chartqueries"
	"github.com/dalemusser/academicdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reports")}
}

// CountByYear counts the report lines of one import version per year.
func (s *Store) CountByYear(ctx context.Context, version string) ([]models.GroupCount, error) {
	return chartqueries.Run[models.GroupCount](ctx, s.c,
		chartqueries.CountPipeline(chartqueries.Filter{}.Str("version", version), "year"))
}

// Versions returns every distinct import version.
func (s *Store) Versions(ctx context.Context) ([]models.GroupKey, error) {
	return chartqueries.Run[models.GroupKey](ctx, s.c,
		chartqueries.DistinctPipeline(chartqueries.Filter{}, "version"))
}

// Courses returns the distinct courses reported for a major in one
// year and semester.
func (s *Store) Courses(ctx context.Context, major, year, semester string) ([]models.GroupKey, error) {
	match := chartqueries.Filter{}.
		Str("major", major).
		Str("year", year).
		Str("semester", semester)
	return chartqueries.Run[models.GroupKey](ctx, s.c,
		chartqueries.DistinctPipeline(match, "course"))
}
