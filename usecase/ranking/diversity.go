package ranking

import "sort"

// Repetition caps and the soft penalty applied beyond them.
const (
	authorRepeatLimit = 2
	showRepeatLimit   = 3
	repeatPenalty     = 2.0
)

// ApplyDiversityPenalties dampens feeds dominated by one author or one show.
// Candidates are walked once in descending original-score order; once an
// author already holds authorRepeatLimit earlier slots, each further post of
// theirs loses repeatPenalty, and likewise per show at showRepeatLimit.
//
// This is a greedy single pass, not a global re-ranking: scores are adjusted
// in place and the walk order is never revisited, so a penalty changes the
// final ordering only where selection finds the adjusted scores now tip a
// near-tie.
func ApplyDiversityPenalties(scored []ScoredCandidate) []ScoredCandidate {
	out := make([]ScoredCandidate, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return lessRef(out[i], out[j])
	})

	authorSeen := make(map[string]int)
	showSeen := make(map[string]int)
	for i := range out {
		c := &out[i]
		if authorSeen[c.Post.AuthorID] >= authorRepeatLimit {
			c.Score -= repeatPenalty
		}
		if c.Post.ShowID != "" && showSeen[c.Post.ShowID] >= showRepeatLimit {
			c.Score -= repeatPenalty
		}
		authorSeen[c.Post.AuthorID]++
		if c.Post.ShowID != "" {
			showSeen[c.Post.ShowID]++
		}
	}
	return out
}

// lessRef is the deterministic tie-break: (post ID, post type) ascending.
func lessRef(a, b ScoredCandidate) bool {
	if a.Post.ID != b.Post.ID {
		return a.Post.ID < b.Post.ID
	}
	return a.Post.Type < b.Post.Type
}
