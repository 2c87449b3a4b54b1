// internal/app/store/majors/majorstore.go
package majorstore

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
	return &Store{c: db.Collection("majors")}
}

// Names returns every distinct major name.
func (s *Store) Names(ctx context.Context) ([]models.GroupKey, error) {
	return chartqueries.Run[models.GroupKey](ctx, s.c,
		chartqueries.DistinctPipeline(chartqueries.Filter{}, "name"))
}
