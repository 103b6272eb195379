package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bingelog/bingelog-backend/domain"
)

func TestFollowing_BuildsSet(t *testing.T) {
	coll := &fakeCollection{docs: []interface{}{
		bson.M{"user_id": "u1", "followed_id": "a1"},
		bson.M{"user_id": "u1", "followed_id": "a2"},
	}}
	repo := NewGraphRepository(&fakeDatabase{collection: coll}, domain.CollectionSocialFollows)

	following, err := repo.Following(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.NewStringSet("a1", "a2"), following)
	assert.Equal(t, bson.M{"user_id": "u1"}, coll.lastFilter)
}

func TestFollowing_NoRowsIsEmptySet(t *testing.T) {
	repo := NewGraphRepository(&fakeDatabase{collection: &fakeCollection{}}, domain.CollectionSocialFollows)

	following, err := repo.Following(context.Background(), "brand-new")
	require.NoError(t, err)
	assert.NotNil(t, following)
	assert.Empty(t, following)
}

func TestFollowing_CursorFailureMidIterationAborts(t *testing.T) {
	coll := &fakeCollection{
		docs: []interface{}{
			bson.M{"user_id": "u1", "followed_id": "a1"},
			bson.M{"user_id": "u1", "followed_id": "a2"},
		},
		cursorErr:       errors.New("connection reset"),
		cursorFailAfter: 1,
	}
	repo := NewGraphRepository(&fakeDatabase{collection: coll}, domain.CollectionSocialFollows)

	following, err := repo.Following(context.Background(), "u1")
	// A truncated follow set must surface as a failure, never as a
	// smaller-but-valid result.
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Nil(t, following)
}

func TestFollowing_FindFailureWrapped(t *testing.T) {
	coll := &fakeCollection{findErr: errors.New("no reachable servers")}
	repo := NewGraphRepository(&fakeDatabase{collection: coll}, domain.CollectionSocialFollows)

	_, err := repo.Following(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
