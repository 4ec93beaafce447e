// Mutation operations of the Graph aggregate. All of them are total:
// they cannot fail, and they are safe to call from an asynchronous
// inbound-measurement path concurrently with Snapshot.
package posegraph

import "github.com/amine-chaabouni/cslam/core"

// SetGraph replaces the fixed edges and the candidate table wholesale and
// recomputes the pose counts from the union of both inputs. Within the
// candidate batch the last writer of a key wins, unlike AddMatch which
// keeps the heavier edge.
// Complexity: O(F + C + R).
func (g *Graph) SetGraph(fixed, candidates []core.InterRobotEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.fixed = make([]core.InterRobotEdge, len(fixed))
	copy(g.fixed, fixed)

	g.candidates = make(map[core.CandidateKey]core.InterRobotEdge, len(candidates))
	g.poseCounts = make([]int, g.nbRobots)

	for _, e := range g.fixed {
		g.touch(e)
	}
	for _, e := range candidates {
		g.candidates[e.Key()] = e
		g.touch(e)
	}
}

// AddFixedEdge appends an already verified measurement.
func (g *Graph) AddFixedEdge(e core.InterRobotEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.fixed = append(g.fixed, e)
	g.touch(e)
}

// AddCandidateEdge inserts e into the candidate table, unconditionally
// overwriting any candidate occupying the same key.
func (g *Graph) AddCandidateEdge(e core.InterRobotEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.candidates[e.Key()] = e
	g.touch(e)
}

// RemoveCandidateEdges drops every candidate whose endpoints match any
// edge of the input (weights are ignored, per the identity contract).
// Unknown edges are silently skipped.
// Complexity: O(C * len(edges)).
func (g *Graph) RemoveCandidateEdges(edges []core.InterRobotEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeByValue(edges)
}

// removeByValue is RemoveCandidateEdges without the lock.
// Must be called with g.mu held.
func (g *Graph) removeByValue(edges []core.InterRobotEdge) {
	for k, c := range g.candidates {
		for _, e := range edges {
			if c.SameEndpoints(e) {
				delete(g.candidates, k)
				break
			}
		}
	}
}

// PromoteToFixed moves verified candidates into the fixed set: each edge
// is reweighted to the fixed weight, appended to the fixed sequence, and
// the matching entries (by endpoints) are removed from the candidate
// table. Typically fed with the verified subset of a previous round's
// selection.
func (g *Graph) PromoteToFixed(edges []core.InterRobotEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range edges {
		g.fixed = append(g.fixed, e.WithWeight(g.fixedWeight))
		g.touch(e)
	}
	g.removeByValue(edges)
}

// AddMatch offers a freshly detected potential match. The match is kept
// iff its slot is vacant or its weight strictly exceeds the incumbent's;
// otherwise it is discarded. This is the write path driven by the
// continuous detection stream, so near-duplicate offers are the common
// case, not an anomaly.
func (g *Graph) AddMatch(e core.InterRobotEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cur, ok := g.candidates[e.Key()]; ok && e.Weight <= cur.Weight {
		return
	}
	g.candidates[e.Key()] = e
	g.touch(e)
}
