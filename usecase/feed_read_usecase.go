package usecase

import (
	"context"
	"time"

	"github.com/bingelog/bingelog-backend/domain"
)

type feedReadUsecase struct {
	scores  domain.FeedScoreRepository
	timeout time.Duration
}

func NewFeedReadUsecase(scores domain.FeedScoreRepository, timeout time.Duration) domain.FeedReadUsecase {
	return &feedReadUsecase{
		scores:  scores,
		timeout: timeout,
	}
}

// TopScores returns a user's materialized rows for inspection. An empty
// result is a valid outcome; new users simply have no scored feed yet.
func (uc *feedReadUsecase) TopScores(ctx context.Context, userID string, limit int) ([]domain.ScoredPost, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.scores.TopScores(ctx, userID, limit)
}
