package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bingelog/bingelog-backend/domain"
)

type FeedRefreshUsecase struct {
	mock.Mock
}

func (m *FeedRefreshUsecase) Refresh(ctx context.Context, userID string) (domain.RefreshResult, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(domain.RefreshResult), ret.Error(1)
}

type FeedReadUsecase struct {
	mock.Mock
}

func (m *FeedReadUsecase) TopScores(ctx context.Context, userID string, limit int) ([]domain.ScoredPost, error) {
	ret := m.Called(ctx, userID, limit)

	var r0 []domain.ScoredPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ScoredPost)
	}
	return r0, ret.Error(1)
}
