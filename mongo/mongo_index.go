package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/bingelog/bingelog-backend/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes ensures the indexes the feed pipeline depends on. Safe to
// call on every startup; existing indexes are left alone.
func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Follow graph: membership lookups by follower.
	followsCollection := db.Collection(domain.CollectionSocialFollows)
	createIndex(ctx, followsCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id", false)
	createIndex(ctx, followsCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "followed_id", Value: 1}}, "user_id_followed_id_unique", true)

	// Preferences: one document per user.
	preferencesCollection := db.Collection(domain.CollectionUserPreferences)
	createIndex(ctx, preferencesCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id_unique", true)

	// Posts: the candidate window scans created_at descending.
	postsCollection := db.Collection(domain.CollectionPosts)
	createIndex(ctx, postsCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at", false)
	createIndex(ctx, postsCollection, bson.D{{Key: "author_id", Value: 1}}, "author_id", false)

	// Engagement: keyed by (post_id, post_type).
	engagementCollection := db.Collection(domain.CollectionPostEngagement)
	createIndex(ctx, engagementCollection, bson.D{
		{Key: "post_id", Value: 1},
		{Key: "post_type", Value: 1}}, "post_id_type_unique", true)

	// Scored feed: upsert key plus the read path's score ordering.
	feedScoresCollection := db.Collection(domain.CollectionFeedScores)
	createIndex(ctx, feedScoresCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "post_id", Value: 1},
		{Key: "post_type", Value: 1}}, "user_post_type_unique", true)
	createIndex(ctx, feedScoresCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "score", Value: -1}}, "user_score", false)
}

func createIndex(ctx context.Context, coll Collection, keys bson.D, name string, unique bool) {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		fmt.Printf("index %s: %v\n", name, err)
	}
}
