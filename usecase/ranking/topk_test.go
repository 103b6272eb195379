package ranking

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopK_SelectsHighestByAdjustedScore(t *testing.T) {
	in := []ScoredCandidate{
		scoredFrom("p1", "a1", "", 10),
		scoredFrom("p2", "a2", "", 50),
		scoredFrom("p3", "a3", "", 30),
		scoredFrom("p4", "a4", "", 40),
	}

	out := TopK(in, 2)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"p2", "p4"}, postIDs(out))
}

func TestTopK_BoundedOutput(t *testing.T) {
	in := make([]ScoredCandidate, 0, 500)
	for i := 0; i < 500; i++ {
		in = append(in, scoredFrom(fmt.Sprintf("p%03d", i), "a", "", rand.Float64()*100))
	}

	out := TopK(in, 200)
	assert.Len(t, out, 200)
	assert.True(t, sort.SliceIsSorted(out, func(i, j int) bool {
		return out[i].Score >= out[j].Score
	}))
}

func TestTopK_FewerCandidatesThanK(t *testing.T) {
	in := []ScoredCandidate{
		scoredFrom("p1", "a1", "", 1),
		scoredFrom("p2", "a2", "", 2),
	}

	out := TopK(in, 200)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"p2", "p1"}, postIDs(out))
}

func TestTopK_TieBreakDeterministic(t *testing.T) {
	in := []ScoredCandidate{
		scoredFrom("p3", "a", "", 10),
		scoredFrom("p1", "a", "", 10),
		scoredFrom("p2", "a", "", 10),
	}

	first := TopK(in, 2)
	second := TopK([]ScoredCandidate{in[2], in[0], in[1]}, 2)

	// Ties resolve by post ref regardless of input order.
	assert.Equal(t, []string{"p1", "p2"}, postIDs(first))
	assert.Equal(t, first, second)
}

func TestTopK_Empty(t *testing.T) {
	assert.Empty(t, TopK(nil, 200))
	assert.Empty(t, TopK([]ScoredCandidate{scoredFrom("p1", "a", "", 1)}, 0))
}

func TestTopK_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := make([]ScoredCandidate, 0, 300)
	for i := 0; i < 300; i++ {
		in = append(in, scoredFrom(fmt.Sprintf("p%03d", i), "a", "", float64(rng.Intn(40))))
	}

	expected := make([]ScoredCandidate, len(in))
	copy(expected, in)
	sort.Slice(expected, func(i, j int) bool {
		if expected[i].Score != expected[j].Score {
			return expected[i].Score > expected[j].Score
		}
		return lessRef(expected[i], expected[j])
	})

	assert.Equal(t, expected[:50], TopK(in, 50))
}
