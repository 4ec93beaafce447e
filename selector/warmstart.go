// Warm-start construction: the three activation-vector policies seeding
// the solver. All of them index the round's ordered candidate slice; the
// returned vector's i-th entry speaks about edges[i].
package selector

import (
	"sort"

	"github.com/amine-chaabouni/cslam/core"
)

// greedyActivation activates the k heaviest candidates (all of them when
// k exceeds the pool). Ties resolve toward the earlier position, so the
// result is deterministic for a given edge order.
// Complexity: O(m log m).
func greedyActivation(k int, edges []core.FlatEdge) []float64 {
	w := make([]float64, len(edges))
	if k <= 0 {
		return w
	}
	if k > len(edges) {
		k = len(edges)
	}

	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edges[order[a]].Weight > edges[order[b]].Weight
	})
	for _, idx := range order[:k] {
		w[idx] = 1.0
	}

	return w
}

// randomActivation draws a fresh uniform weight for every candidate and
// runs the greedy policy over the redrawn weights - a uniformly random
// size-k subset. The redraw happens in place: later retries of the same
// round intentionally see the randomized weights, not the similarity
// scores.
func (s *Selector) randomActivation(k int, edges []core.FlatEdge) []float64 {
	for i := range edges {
		edges[i].Weight = s.rng.Float64()
	}

	return greedyActivation(k, edges)
}

// pseudoGreedyActivation fills k-nbRandom slots greedily, then activates
// nbRandom further candidates drawn uniformly, rejecting already active
// picks. Used as the perturbation policy between solver retries, with
// nbRandom growing each trial so every retry changes the guess.
//
// The rejection loop stops early once no inactive slot remains, so a
// budget beyond the pool cannot spin forever.
func (s *Selector) pseudoGreedyActivation(k, nbRandom int, edges []core.FlatEdge) []float64 {
	w := greedyActivation(k-nbRandom, edges)

	inactive := 0
	for _, v := range w {
		if v < 0.5 {
			inactive++
		}
	}
	if nbRandom > inactive {
		nbRandom = inactive
	}

	for drawn := 0; drawn < nbRandom; {
		j := int(s.rng.Float64() * float64(len(edges)))
		if w[j] < 0.5 {
			w[j] = 1.0
			drawn++
		}
	}

	return w
}
