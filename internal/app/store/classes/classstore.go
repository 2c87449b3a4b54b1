// internal/app/store/classes/classstore.go
package classstore

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
	return &Store{c: db.Collection("classes")}
}

func (s *Store) EnglishLevels(ctx context.Context) ([]models.GroupKey, error) {
	return chartqueries.Run[models.GroupKey](ctx, s.c,
		chartqueries.DistinctPipeline(chartqueries.Filter{}, "englishLevel"))
}

func (s *Store) Batches(ctx context.Context) ([]models.GroupKey, error) {
	return chartqueries.Run[models.GroupKey](ctx, s.c,
		chartqueries.DistinctPipeline(chartqueries.Filter{}, "batch"))
}

// CountByEnglishLevel counts the classes of a major per English level.
func (s *Store) CountByEnglishLevel(ctx context.Context, major string) ([]models.GroupCount, error) {
	return chartqueries.Run[models.GroupCount](ctx, s.c,
		chartqueries.CountPipeline(chartqueries.Filter{}.Str("major", major), "englishLevel"))
}

// CountByBatch counts the classes of a major per batch.
func (s *Store) CountByBatch(ctx context.Context, major string) ([]models.GroupCount, error) {
	return chartqueries.Run[models.GroupCount](ctx, s.c,
		chartqueries.CountPipeline(chartqueries.Filter{}.Str("major", major), "batch"))
}
