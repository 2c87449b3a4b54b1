// Package chartqueries builds and runs the single-$group aggregation
// pipelines behind the dashboard charts.
//
// Every chart is the same shape: an optional $match on request
// parameters, a $group on one field (with a count, an average, or
// nothing), and a $sort on the group key so charts render in a stable
// order.
package chartqueries

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter collects $match conditions. Values that were not supplied are
// skipped so an empty parameter means "any".
type Filter bson.M

// Str adds key == value when value is non-empty.
func (f Filter) Str(key, value string) Filter {
	if value != "" {
		f[key] = value
	}
	return f
}

// Int adds key == *value when value is non-nil.
func (f Filter) Int(key string, value *int) Filter {
	if value != nil {
		f[key] = *value
	}
	return f
}

func stages(match Filter, group bson.M) mongo.Pipeline {
	p := mongo.Pipeline{}
	if len(match) > 0 {
		p = append(p, bson.D{{Key: "$match", Value: bson.M(match)}})
	}
	p = append(p,
		bson.D{{Key: "$group", Value: group}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)
	return p
}

// DistinctPipeline groups documents by field.
func DistinctPipeline(match Filter, field string) mongo.Pipeline {
	return stages(match, bson.M{"_id": "$" + field})
}

// CountPipeline groups documents by field and counts each group.
func CountPipeline(match Filter, field string) mongo.Pipeline {
	return stages(match, bson.M{
		"_id":   "$" + field,
		"count": bson.M{"$sum": 1},
	})
}

// AvgPipeline groups documents by field and averages valueField per group.
func AvgPipeline(match Filter, field, valueField string) mongo.Pipeline {
	return stages(match, bson.M{
		"_id": "$" + field,
		"avg": bson.M{"$avg": "$" + valueField},
	})
}

// Run executes pipeline on coll and decodes every row into T. The result
// is never nil so it encodes as [] when empty.
func Run[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	for cur.Next(ctx) {
		var row T
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", coll.Name(), err)
		}
		out = append(out, row)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", coll.Name(), err)
	}
	return out, nil
}
