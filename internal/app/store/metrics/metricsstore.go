package metricsstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts is the set of collection totals shown on the dashboard header.
type Counts struct {
	Courses   int64 `json:"courses"`
	Classes   int64 `json:"classes"`
	Majors    int64 `json:"majors"`
	Schedules int64 `json:"schedules"`
	Reports   int64 `json:"reports"`
}

// FetchDashboardCounts returns the document count of each academic
// collection. Tolerant: on error it returns 0 for that counter.
func FetchDashboardCounts(ctx context.Context, db *mongo.Database) Counts {
	var out Counts
	for coll, dst := range map[string]*int64{
		"courses":   &out.Courses,
		"classes":   &out.Classes,
		"majors":    &out.Majors,
		"schedules": &out.Schedules,
		"reports":   &out.Reports,
	} {
		if n, err := db.Collection(coll).CountDocuments(ctx, bson.M{}); err == nil {
			*dst = n
		}
	}
	return out
}
