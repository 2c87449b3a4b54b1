// internal/app/store/courses/coursestore.go
package coursestore

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
	return &Store{c: db.Collection("courses")}
}

func cohort(major string, enrollment *int) chartqueries.Filter {
	return chartqueries.Filter{}.Str("major", major).Int("enrollment", enrollment)
}

// CountByName counts course results per course name within a major and cohort.
func (s *Store) CountByName(ctx context.Context, major string, enrollment *int) ([]models.GroupCount, error) {
	return chartqueries.Run[models.GroupCount](ctx, s.c,
		chartqueries.CountPipeline(cohort(major, enrollment), "name"))
}

// AvgScoreByName averages scores per course name within a major and cohort.
func (s *Store) AvgScoreByName(ctx context.Context, major string, enrollment *int) ([]models.GroupAvg, error) {
	return chartqueries.Run[models.GroupAvg](ctx, s.c,
		chartqueries.AvgPipeline(cohort(major, enrollment), "name", "score"))
}

// Names returns every distinct course name.
func (s *Store) Names(ctx context.Context) ([]models.GroupKey, error) {
	return chartqueries.Run[models.GroupKey](ctx, s.c,
		chartqueries.DistinctPipeline(chartqueries.Filter{}, "name"))
}

// AvgScoreByMajor averages the scores of one course per major.
func (s *Store) AvgScoreByMajor(ctx context.Context, name string) ([]models.GroupAvg, error) {
	return chartqueries.Run[models.GroupAvg](ctx, s.c,
		chartqueries.AvgPipeline(chartqueries.Filter{}.Str("name", name), "major", "score"))
}

// AvgScoreByEnrollment averages the scores of one course per cohort.
func (s *Store) AvgScoreByEnrollment(ctx context.Context, name string) ([]models.GroupAvg, error) {
	return chartqueries.Run[models.GroupAvg](ctx, s.c,
		chartqueries.AvgPipeline(chartqueries.Filter{}.Str("name", name), "enrollment", "score"))
}

// Enrollments returns every distinct cohort.
func (s *Store) Enrollments(ctx context.Context) ([]models.GroupKey, error) {
	return chartqueries.Run[models.GroupKey](ctx, s.c,
		chartqueries.DistinctPipeline(chartqueries.Filter{}, "enrollment"))
}
