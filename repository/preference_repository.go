package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type preferenceRepository struct {
	db         mongo.Database
	collection string
}

func NewPreferenceRepository(db mongo.Database, collection string) domain.PreferenceRepository {
	return &preferenceRepository{
		db:         db,
		collection: collection,
	}
}

type preferenceRow struct {
	UserID  string   `bson:"user_id"`
	Genres  []string `bson:"genres"`
	ShowIDs []string `bson:"show_ids"`
}

// Preferences returns the stored preference signals for the user. A user
// with no preference document gets empty sets.
func (r *preferenceRepository) Preferences(ctx context.Context, userID string) (domain.Preferences, error) {
	coll := r.db.Collection(r.collection)

	var row preferenceRow
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&row)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return domain.Preferences{
				Genres:  domain.NewStringSet(),
				ShowIDs: domain.NewStringSet(),
			}, nil
		}
		return domain.Preferences{}, fmt.Errorf("%w: load preferences for %s: %v", domain.ErrUpstreamUnavailable, userID, err)
	}

	return domain.Preferences{
		Genres:  domain.NewStringSet(row.Genres...),
		ShowIDs: domain.NewStringSet(row.ShowIDs...),
	}, nil
}
