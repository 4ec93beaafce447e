package selector

import "github.com/amine-chaabouni/cslam/posegraph"

// includedRobots gates which robots participate in the current round.
// The local robot is always in; any other robot is in iff it appears as
// an endpoint of at least one live candidate edge. This is a one-hop
// test over the candidate table only - fixed edges never gate inclusion,
// and it deliberately stops short of a full connectivity computation.
//
// TODO: also require peers to be within communication range before
// admitting them to the round.
func (s *Selector) includedRobots(snap posegraph.Snapshot) []bool {
	included := make([]bool, s.graph.NbRobots())
	included[s.robotID] = true
	for _, e := range snap.Candidates {
		included[e.Robot0] = true
		included[e.Robot1] = true
	}

	return included
}
