package domain

import "context"

const (
	// MaxCandidatePosts bounds the recency window a single run considers.
	MaxCandidatePosts = 500

	// FeedTopK is how many scored rows are materialized per user.
	FeedTopK = 200
)

// GraphRepository reads the requesting user's follow set.
type GraphRepository interface {
	// Following returns the set of user IDs the given user follows. An
	// unknown user yields an empty set, not an error.
	Following(ctx context.Context, userID string) (StringSet, error)
}

// PreferenceRepository reads the stored content-preference signals.
type PreferenceRepository interface {
	// Preferences returns favored genres and show IDs. Missing preference
	// rows yield empty sets, not an error.
	Preferences(ctx context.Context, userID string) (Preferences, error)
}

// PostRepository reads the candidate pool.
type PostRepository interface {
	// RecentPosts returns at most limit posts, most recent first, ties
	// broken by ID so repeated runs see the same window.
	RecentPosts(ctx context.Context, limit int) ([]Post, error)
}

// EngagementRepository reads aggregate engagement counters.
type EngagementRepository interface {
	// MetricsFor returns the metrics rows for the given refs. Refs with no
	// stored row are simply absent from the result.
	MetricsFor(ctx context.Context, refs []PostRef) (map[PostRef]EngagementMetrics, error)
}

// FeedScoreRepository owns the materialized scored-feed collection.
type FeedScoreRepository interface {
	// UpsertScores writes the rows in one batch, replacing any prior row
	// with the same (user, post, type) key. Returns the number of rows
	// written. An empty batch is a zero-count success with no store call.
	UpsertScores(ctx context.Context, rows []ScoredPost) (int64, error)

	// TopScores reads a user's materialized rows, highest score first.
	TopScores(ctx context.Context, userID string, limit int) ([]ScoredPost, error)
}

// RefreshResult is the outcome of one scoring run.
type RefreshResult struct {
	UserID         string `json:"user_id"`
	ScoresComputed int    `json:"scores_computed"`
}

// FeedRefreshUsecase runs the full pipeline for one user: load context and
// candidates, score, re-rank, persist the top K.
type FeedRefreshUsecase interface {
	Refresh(ctx context.Context, userID string) (RefreshResult, error)
}

// FeedReadUsecase serves the inspection read of materialized rows.
type FeedReadUsecase interface {
	TopScores(ctx context.Context, userID string, limit int) ([]ScoredPost, error)
}
