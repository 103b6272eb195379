// Package ranking holds the pure scoring pipeline: candidates in, ranked
// rows out. Nothing here touches the store or the clock; the caller injects
// the user context, the candidate pool, and the reference time, so the same
// inputs always produce the same output.
package ranking

import (
	"math"
	"time"

	"github.com/bingelog/bingelog-backend/domain"
)

// Engagement weights. A reshare is a stronger positive signal than a view,
// and a dislike costs more than a like earns.
const (
	likeWeight    = 3.0
	commentWeight = 4.0
	reshareWeight = 5.0
	viewWeight    = 0.25
	dislikeWeight = 6.0
)

// decayHours controls the exponential age decay of the engagement base.
// exp(-age/36) halves a post's popularity signal roughly every 25 hours.
const decayHours = 36.0

// Flat bonuses. None of these decay with age.
const (
	socialBonus      = 8.0
	similarityBonus  = 6.0
	explorationBonus = 2.0
)

// Candidate pairs a post with its engagement snapshot. Posts without an
// engagement row never become candidates.
type Candidate struct {
	Post    domain.Post
	Metrics domain.EngagementMetrics
}

// ScoredCandidate is a candidate with its computed score and breakdown.
type ScoredCandidate struct {
	Post   domain.Post
	Score  float64
	Reason domain.ScoreReason
}

// Score computes a relevance score for every candidate. Candidates are
// scored independently in pool order; the result carries no ordering
// guarantee until the diversity pass and selection run.
func Score(userCtx domain.UserContext, candidates []Candidate, now time.Time) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, scoreOne(userCtx, c, now))
	}
	return scored
}

func scoreOne(userCtx domain.UserContext, c Candidate, now time.Time) ScoredCandidate {
	m := c.Metrics
	base := likeWeight*float64(m.Likes) +
		commentWeight*float64(m.Comments) +
		reshareWeight*float64(m.Reshares) +
		viewWeight*float64(m.Views) -
		dislikeWeight*float64(m.Dislikes)

	// A future created_at is a data anomaly; treat it as a brand-new post.
	ageHours := now.Sub(c.Post.CreatedAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	decay := math.Exp(-ageHours / decayHours)

	followed := userCtx.FollowingIDs.Has(c.Post.AuthorID)
	similarShow := c.Post.ShowID != "" && userCtx.PreferredShowIDs.Has(c.Post.ShowID)

	var social, similarity, exploration float64
	if followed {
		social = socialBonus
	} else {
		exploration = explorationBonus
	}
	if similarShow {
		similarity = similarityBonus
	}

	// Decay applies to the engagement base only. An old post from a
	// followed account keeps its full +8; only its popularity fades.
	score := base*decay + social + similarity + exploration

	return ScoredCandidate{
		Post:  c.Post,
		Score: score,
		Reason: domain.ScoreReason{
			Followed:    followed,
			SimilarShow: similarShow,
			Base:        base,
			Decay:       decay,
			Social:      social,
			Similarity:  similarity,
			Exploration: exploration,
		},
	}
}
