package ranking

import (
	"container/heap"
	"sort"
)

// TopK selects the k highest-scoring candidates by adjusted score, returned
// in descending order with ties broken by (post ID, post type) so selection
// is deterministic. A bounded min-heap keeps the pass O(n log k).
func TopK(scored []ScoredCandidate, k int) []ScoredCandidate {
	if k <= 0 || len(scored) == 0 {
		return nil
	}

	h := make(candidateHeap, 0, k+1)
	heap.Init(&h)
	for _, c := range scored {
		heap.Push(&h, c)
		if h.Len() > k {
			heap.Pop(&h)
		}
	}

	out := make([]ScoredCandidate, h.Len())
	copy(out, h)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return lessRef(out[i], out[j])
	})
	return out
}

// candidateHeap is a min-heap by score; the root is the weakest candidate
// still in range. Among equal scores the later tie-break ref sits at the
// root so it is evicted first.
type candidateHeap []ScoredCandidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return lessRef(h[j], h[i])
}
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(ScoredCandidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
