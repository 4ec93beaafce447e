// The selection driver and the mutation facade collaborators call.
package selector

import (
	"errors"

	"github.com/amine-chaabouni/cslam/core"
	"github.com/amine-chaabouni/cslam/rekey"
)

// ------------------------------------------------------------------------
// Mutation facade - thin delegation to the bookkeeping aggregate. Safe to
// call from an asynchronous inbound-measurement path at any time,
// including while a round is in flight.
// ------------------------------------------------------------------------

// SetGraph bulk-(re)initializes the fixed edges and the candidate pool.
func (s *Selector) SetGraph(fixed, candidates []core.InterRobotEdge) {
	s.graph.SetGraph(fixed, candidates)
}

// AddFixedEdge records an already verified measurement.
func (s *Selector) AddFixedEdge(e core.InterRobotEdge) { s.graph.AddFixedEdge(e) }

// AddCandidateEdge inserts a candidate, replacing any same-key incumbent.
func (s *Selector) AddCandidateEdge(e core.InterRobotEdge) { s.graph.AddCandidateEdge(e) }

// RemoveCandidateEdges drops candidates by endpoint value, typically the
// rejected part of a previous selection.
func (s *Selector) RemoveCandidateEdges(edges []core.InterRobotEdge) {
	s.graph.RemoveCandidateEdges(edges)
}

// PromoteToFixed moves successfully verified candidates into the fixed
// set at the fixed weight.
func (s *Selector) PromoteToFixed(edges []core.InterRobotEdge) { s.graph.PromoteToFixed(edges) }

// AddMatch offers a detection-stream match; it survives only if its slot
// is vacant or it is strictly heavier than the incumbent.
func (s *Selector) AddMatch(e core.InterRobotEdge) { s.graph.AddMatch(e) }

// ------------------------------------------------------------------------
// Selection driver.
// ------------------------------------------------------------------------

// SelectCandidates runs one selection round and returns at most k
// candidate edges, in robot-local addressing, chosen to maximize the
// algebraic connectivity of the combined pose graph. The round does not
// mutate the bookkeeping state; callers feed verification outcomes back
// through PromoteToFixed and RemoveCandidateEdges.
//
// greedyStart selects the warm-start policy: the k heaviest candidates
// when true, a uniformly random subset when false.
//
// An empty result is a legitimate outcome, produced when the budget or
// the rekeyed candidate pool is empty, or when the solver exhausted its
// k retry trials on singular configurations. Solver failures other than
// the singular-configuration signal are returned as errors.
func (s *Selector) SelectCandidates(k int, greedyStart bool) ([]core.InterRobotEdge, error) {
	if k <= 0 {
		return nil, nil
	}

	// One consistent snapshot per round; the inbound stream keeps writing
	// to the aggregate while we work on the copy.
	snap := s.graph.Snapshot()

	// 1) Gate and offsets.
	offsets := rekey.ComputeOffsets(snap.PoseCounts, s.includedRobots(snap))

	// 2) Flatten: fixed edges, synthesized odometry chains, candidates.
	fixedFlat := offsets.Apply(snap.Fixed)
	fixedFlat = append(fixedFlat, offsets.Odometry(s.fixedWeight)...)
	candFlat := offsets.Apply(snap.Candidates)
	if len(candFlat) == 0 {
		return nil, nil
	}

	// 3) Warm start.
	var w []float64
	if greedyStart {
		w = greedyActivation(k, candFlat)
	} else {
		w = s.randomActivation(k, candFlat)
	}

	// 4) Solve, retrying singular configurations with an increasingly
	//    randomized warm start; give up after k trials.
	solver := s.factory(fixedFlat, candFlat, offsets.TotalPoses())
	var result []float64
	for trial := 0; ; {
		res, err := solver.Subset(w, k, s.maxIters)
		if err == nil {
			result = res
			break
		}
		if !errors.Is(err, core.ErrSingularConfiguration) {
			return nil, err
		}
		trial++
		if trial >= k {
			// Designed give-up: no selection this round.
			return nil, nil
		}
		w = s.pseudoGreedyActivation(k, trial, candFlat)
	}

	// 5) Decode the activation vector and translate back to robot-local
	//    addressing.
	selected := make([]core.FlatEdge, 0, k)
	for i, v := range result {
		if int(v) != 0 {
			selected = append(selected, candFlat[i])
		}
	}

	return offsets.Recover(selected), nil
}
