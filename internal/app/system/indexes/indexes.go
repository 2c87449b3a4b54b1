// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. It reconciles the indexes that back the
dashboard $match stages. Each collection is reconciled independently and
the problems are joined so startup can fail fast with the full picture.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	for _, coll := range []string{"courses", "classes", "reports"} {
		if err := ensureIndexSet(ctx, db.Collection(coll), Desired[coll], logger); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Desired lists the indexes per collection, keyed by collection name.
var Desired = map[string][]mongo.IndexModel{
	"courses": {
		{
			// course summary/avg match on major+enrollment
			Keys:    bson.D{{Key: "major", Value: 1}, {Key: "enrollment", Value: 1}},
			Options: options.Index().SetName("idx_courses_major_enrollment"),
		},
		{
			// course-score-by-* match on name
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_courses_name"),
		},
	},
	"classes": {
		{
			Keys:    bson.D{{Key: "major", Value: 1}},
			Options: options.Index().SetName("idx_classes_major"),
		},
	},
	"reports": {
		{
			Keys:    bson.D{{Key: "version", Value: 1}},
			Options: options.Index().SetName("idx_reports_version"),
		},
		{
			// new chart: major + year + semester
			Keys:    bson.D{{Key: "major", Value: 1}, {Key: "year", Value: 1}, {Key: "semester", Value: 1}},
			Options: options.Index().SetName("idx_reports_major_year_semester"),
		},
	},
}

type existingIndex struct {
	Name string `bson:"name"`
	Key  bson.D `bson:"key"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

// namespaceNotFound is the server code for a missing collection.
const namespaceNotFound = 26

func isNamespaceNotFound(err error) bool {
	var ce mongo.CommandError
	return errors.As(err, &ce) && (ce.Code == namespaceNotFound || ce.Name == "NamespaceNotFound")
}

func listIndexes(ctx context.Context, coll *mongo.Collection, logger *zap.Logger) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	existing := map[string]existingIndex{} // sig -> index
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			logger.Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing, cur.Err()
}

// ensureIndexSet creates missing indexes, reuses ones with the same keys
// and name, and renames (drop + create) ones whose keys match but whose
// name differs.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel, logger *zap.Logger) error {
	existing, err := listIndexes(ctx, coll, logger)
	switch {
	case err == nil:
	case isNamespaceNotFound(err):
		// A collection that does not exist yet has no indexes to reconcile.
		existing = map[string]existingIndex{}
	default:
		return fmt.Errorf("list indexes: %w", err)
	}

	var errs []string
	for _, m := range models {
		var desiredName string
		if m.Options != nil && m.Options.Name != nil {
			desiredName = *m.Options.Name
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok {
			if desiredName == "" || ex.Name == desiredName {
				logger.Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig))
				continue
			}

			logger.Info("renaming index to align with desired name",
				zap.String("collection", coll.Name()),
				zap.String("from", ex.Name),
				zap.String("to", desiredName),
				zap.String("keys", desiredSig))
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): rename drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			logger.Warn("create index failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		logger.Info("index created",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
