// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bingelog/bingelog-backend/domain"
)

type GraphRepository struct {
	mock.Mock
}

func (m *GraphRepository) Following(ctx context.Context, userID string) (domain.StringSet, error) {
	ret := m.Called(ctx, userID)

	var r0 domain.StringSet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.StringSet)
	}
	return r0, ret.Error(1)
}

type PreferenceRepository struct {
	mock.Mock
}

func (m *PreferenceRepository) Preferences(ctx context.Context, userID string) (domain.Preferences, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(domain.Preferences), ret.Error(1)
}

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) RecentPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	ret := m.Called(ctx, limit)

	var r0 []domain.Post
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}
	return r0, ret.Error(1)
}

type EngagementRepository struct {
	mock.Mock
}

func (m *EngagementRepository) MetricsFor(ctx context.Context, refs []domain.PostRef) (map[domain.PostRef]domain.EngagementMetrics, error) {
	ret := m.Called(ctx, refs)

	var r0 map[domain.PostRef]domain.EngagementMetrics
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[domain.PostRef]domain.EngagementMetrics)
	}
	return r0, ret.Error(1)
}

type FeedScoreRepository struct {
	mock.Mock
}

func (m *FeedScoreRepository) UpsertScores(ctx context.Context, rows []domain.ScoredPost) (int64, error) {
	ret := m.Called(ctx, rows)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *FeedScoreRepository) TopScores(ctx context.Context, userID string, limit int) ([]domain.ScoredPost, error) {
	ret := m.Called(ctx, userID, limit)

	var r0 []domain.ScoredPost
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ScoredPost)
	}
	return r0, ret.Error(1)
}
