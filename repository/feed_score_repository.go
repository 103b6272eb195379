package repository

import (
	"context"
	"fmt"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type feedScoreRepository struct {
	db         mongo.Database
	collection string
}

func NewFeedScoreRepository(db mongo.Database, collection string) domain.FeedScoreRepository {
	return &feedScoreRepository{
		db:         db,
		collection: collection,
	}
}

// UpsertScores writes all rows in a single bulk call. Each row replaces any
// prior row with the same (user_id, post_id, post_type), so rerunning the
// pipeline with identical rows leaves the collection unchanged. Rows that
// fell out of the top K on a rerun are not deleted here.
func (r *feedScoreRepository) UpsertScores(ctx context.Context, rows []domain.ScoredPost) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	bulk := r.db.Collection(r.collection).BulkWrite()
	for _, row := range rows {
		filter := bson.M{
			"user_id":   row.UserID,
			"post_id":   row.PostID,
			"post_type": row.PostType,
		}
		model := driver.NewReplaceOneModel().
			SetFilter(filter).
			SetReplacement(row).
			SetUpsert(true)
		bulk.AddModel(model)
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: upsert feed scores: %v", domain.ErrUpstreamUnavailable, err)
	}
	return result.MatchedCount() + result.UpsertedCount(), nil
}

// TopScores reads the materialized rows for a user, highest score first.
func (r *feedScoreRepository) TopScores(ctx context.Context, userID string, limit int) ([]domain.ScoredPost, error) {
	if limit <= 0 || limit > domain.FeedTopK {
		limit = domain.FeedTopK
	}

	coll := r.db.Collection(r.collection)
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}, {Key: "post_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: load feed scores for %s: %v", domain.ErrUpstreamUnavailable, userID, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var rows []domain.ScoredPost
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode feed scores: %v", domain.ErrUpstreamUnavailable, err)
	}
	return rows, nil
}
