package repository

import (
	"context"
	"fmt"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type graphRepository struct {
	db         mongo.Database
	collection string
}

func NewGraphRepository(db mongo.Database, collection string) domain.GraphRepository {
	return &graphRepository{
		db:         db,
		collection: collection,
	}
}

type followRow struct {
	UserID     string `bson:"user_id"`
	FollowedID string `bson:"followed_id"`
}

// Following returns every account the user follows. A user with no follow
// rows gets an empty set.
func (r *graphRepository) Following(ctx context.Context, userID string) (domain.StringSet, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: load following for %s: %v", domain.ErrUpstreamUnavailable, userID, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	following := domain.NewStringSet()
	for cursor.Next(ctx) {
		var row followRow
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("%w: decode follow row: %v", domain.ErrUpstreamUnavailable, err)
		}
		following.Add(row.FollowedID)
	}
	// A driver failure mid-iteration ends the loop with a pending error.
	// A partial follow set must never pass for a complete one.
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate follow rows: %v", domain.ErrUpstreamUnavailable, err)
	}
	return following, nil
}
