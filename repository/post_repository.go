package repository

import (
	"context"
	"fmt"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postRepository struct {
	db         mongo.Database
	collection string
}

func NewPostRepository(db mongo.Database, collection string) domain.PostRepository {
	return &postRepository{
		db:         db,
		collection: collection,
	}
}

// RecentPosts returns the candidate window: at most limit posts ordered by
// created_at descending. _id is the secondary sort key so two runs over the
// same data see the same window even when timestamps collide.
func (r *postRepository) RecentPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit <= 0 || limit > domain.MaxCandidatePosts {
		limit = domain.MaxCandidatePosts
	}

	coll := r.db.Collection(r.collection)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: load candidate posts: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var posts []domain.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%w: decode candidate posts: %v", domain.ErrUpstreamUnavailable, err)
	}
	return posts, nil
}
