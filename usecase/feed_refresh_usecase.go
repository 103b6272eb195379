package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bingelog/bingelog-backend/domain"
	"github.com/bingelog/bingelog-backend/monitoring"
	"github.com/bingelog/bingelog-backend/usecase/ranking"
)

type feedRefreshUsecase struct {
	graph       domain.GraphRepository
	preferences domain.PreferenceRepository
	posts       domain.PostRepository
	engagement  domain.EngagementRepository
	scores      domain.FeedScoreRepository
	logger      *logrus.Logger
	metrics     *monitoring.Metrics
	timeout     time.Duration
	now         func() time.Time
}

func NewFeedRefreshUsecase(
	graph domain.GraphRepository,
	preferences domain.PreferenceRepository,
	posts domain.PostRepository,
	engagement domain.EngagementRepository,
	scores domain.FeedScoreRepository,
	logger *logrus.Logger,
	metrics *monitoring.Metrics,
	timeout time.Duration,
) domain.FeedRefreshUsecase {
	return &feedRefreshUsecase{
		graph:       graph,
		preferences: preferences,
		posts:       posts,
		engagement:  engagement,
		scores:      scores,
		logger:      logger,
		metrics:     metrics,
		timeout:     timeout,
		now:         time.Now,
	}
}

// Refresh runs the whole pipeline for one user. The user context and the
// candidate pool are independent reads and load concurrently; scoring,
// re-ranking, selection and the single batch upsert run sequentially after
// both complete. Nothing is persisted if any step fails, so a failed run
// leaves the stored feed untouched.
func (uc *feedRefreshUsecase) Refresh(ctx context.Context, userID string) (domain.RefreshResult, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.RefreshResult{}, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	started := time.Now()
	log := uc.logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"user_id": userID,
	})

	var (
		userCtx      domain.UserContext
		posts        []domain.Post
		metricsByRef map[domain.PostRef]domain.EngagementMetrics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		following, err := uc.graph.Following(gctx, userID)
		if err != nil {
			return err
		}
		prefs, err := uc.preferences.Preferences(gctx, userID)
		if err != nil {
			return err
		}
		userCtx = domain.UserContext{
			UserID:           userID,
			FollowingIDs:     following,
			PreferredGenres:  prefs.Genres,
			PreferredShowIDs: prefs.ShowIDs,
		}
		return nil
	})
	g.Go(func() error {
		recent, err := uc.posts.RecentPosts(gctx, domain.MaxCandidatePosts)
		if err != nil {
			return err
		}
		refs := make([]domain.PostRef, 0, len(recent))
		for _, p := range recent {
			refs = append(refs, p.Ref())
		}
		byRef, err := uc.engagement.MetricsFor(gctx, refs)
		if err != nil {
			return err
		}
		posts = recent
		metricsByRef = byRef
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.metrics.ObserveRun("error", 0, 0, time.Since(started))
		log.WithError(err).Error("feed refresh: loading failed")
		return domain.RefreshResult{}, err
	}

	candidates := buildCandidates(posts, metricsByRef)

	now := uc.now()
	scored := ranking.Score(userCtx, candidates, now)
	ranked := ranking.ApplyDiversityPenalties(scored)
	top := ranking.TopK(ranked, domain.FeedTopK)

	rows := make([]domain.ScoredPost, 0, len(top))
	for _, c := range top {
		rows = append(rows, domain.ScoredPost{
			UserID:   userID,
			PostID:   c.Post.ID,
			PostType: c.Post.Type,
			AuthorID: c.Post.AuthorID,
			ShowID:   c.Post.ShowID,
			Score:    c.Score,
			Reason:   c.Reason,
			ScoredAt: now,
		})
	}

	written, err := uc.scores.UpsertScores(ctx, rows)
	if err != nil {
		uc.metrics.ObserveRun("error", len(candidates), 0, time.Since(started))
		log.WithError(err).Error("feed refresh: persisting scores failed")
		return domain.RefreshResult{}, err
	}

	uc.metrics.ObserveRun("success", len(candidates), len(rows), time.Since(started))
	log.WithFields(logrus.Fields{
		"candidates":  len(candidates),
		"scores":      len(rows),
		"upserted":    written,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("feed refresh complete")

	return domain.RefreshResult{UserID: userID, ScoresComputed: len(rows)}, nil
}

// buildCandidates pairs posts with their engagement rows. Posts with no
// engagement row are dropped, and a duplicate (post, type) in the window is
// kept only once.
func buildCandidates(posts []domain.Post, metricsByRef map[domain.PostRef]domain.EngagementMetrics) []ranking.Candidate {
	candidates := make([]ranking.Candidate, 0, len(posts))
	seen := make(map[domain.PostRef]struct{}, len(posts))
	for _, p := range posts {
		ref := p.Ref()
		if _, dup := seen[ref]; dup {
			continue
		}
		m, ok := metricsByRef[ref]
		if !ok {
			continue
		}
		seen[ref] = struct{}{}
		candidates = append(candidates, ranking.Candidate{Post: p, Metrics: m})
	}
	return candidates
}
