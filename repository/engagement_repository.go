package repository

import (
	"context"
	"fmt"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type engagementRepository struct {
	db         mongo.Database
	collection string
}

func NewEngagementRepository(db mongo.Database, collection string) domain.EngagementRepository {
	return &engagementRepository{
		db:         db,
		collection: collection,
	}
}

// MetricsFor fetches the engagement rows for the given refs in one query.
// Refs without a stored row are absent from the result map; the caller
// decides what that means (the pipeline drops such posts from the pool).
func (r *engagementRepository) MetricsFor(ctx context.Context, refs []domain.PostRef) (map[domain.PostRef]domain.EngagementMetrics, error) {
	metrics := make(map[domain.PostRef]domain.EngagementMetrics, len(refs))
	if len(refs) == 0 {
		return metrics, nil
	}

	pairs := make([]bson.M, 0, len(refs))
	for _, ref := range refs {
		pairs = append(pairs, bson.M{"post_id": ref.PostID, "post_type": ref.PostType})
	}

	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, bson.M{"$or": pairs})
	if err != nil {
		return nil, fmt.Errorf("%w: load engagement metrics: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	for cursor.Next(ctx) {
		var row domain.EngagementMetrics
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("%w: decode engagement row: %v", domain.ErrUpstreamUnavailable, err)
		}
		metrics[row.Ref()] = row
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate engagement rows: %v", domain.ErrUpstreamUnavailable, err)
	}
	return metrics, nil
}
