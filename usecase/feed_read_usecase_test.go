package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/domain/mocks"
)

func TestFeedRead_TopScores(t *testing.T) {
	scores := new(mocks.FeedScoreRepository)
	uc := NewFeedReadUsecase(scores, 5*time.Second)

	rows := []domain.ScoredPost{
		{UserID: "u1", PostID: "p1", PostType: domain.PostTypeReview, Score: 12.5},
	}
	scores.On("TopScores", mock.Anything, "u1", 10).Return(rows, nil)

	got, err := uc.TopScores(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestFeedRead_EmptyFeedIsNotAnError(t *testing.T) {
	scores := new(mocks.FeedScoreRepository)
	uc := NewFeedReadUsecase(scores, 5*time.Second)

	scores.On("TopScores", mock.Anything, "new-user", 50).Return(nil, nil)

	got, err := uc.TopScores(context.Background(), "new-user", 50)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeedRead_StoreErrorPropagates(t *testing.T) {
	scores := new(mocks.FeedScoreRepository)
	uc := NewFeedReadUsecase(scores, 5*time.Second)

	scores.On("TopScores", mock.Anything, "u1", 50).
		Return(nil, fmt.Errorf("%w: find failed", domain.ErrUpstreamUnavailable))

	_, err := uc.TopScores(context.Background(), "u1", 50)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
