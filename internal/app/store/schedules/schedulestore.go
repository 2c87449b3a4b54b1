// internal/app/store/schedules/schedulestore.go
package schedulestore

import (
	"context"
	"fmt"

	"github.com/dalemusser/academicdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("schedules")}
}

// All loads every schedule. Only the fields the student counters read
// are fetched.
func (s *Store) All(ctx context.Context) ([]models.Schedule, error) {
	opts := options.Find().SetProjection(bson.M{"studentCode": 1, "course": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find schedules: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.Schedule, 0)
	for cur.Next(ctx) {
		var sc models.Schedule
		if err := cur.Decode(&sc); err != nil {
			return nil, fmt.Errorf("decode schedule: %w", err)
		}
		out = append(out, sc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}
	return out, nil
}
