// Offsets computation, forward/inverse edge translation and odometry
// synthesis.
//
// Caller contract for the whole file: poseCounts and included are indexed
// by robot id and have identical length (the team size); every edge
// references robot ids within that range and non-negative image indices.
package rekey

import "github.com/amine-chaabouni/cslam/core"

// Offsets maps every robot to its base index in the flat node space for
// one round. It also remembers which robots the round included, because
// the inverse translation must skip excluded robots: their offsets stay
// zero and would otherwise shadow the real owner of low indices.
type Offsets struct {
	base       []int
	included   []bool
	poseCounts []int
}

// ComputeOffsets packs the included robots' pose ranges contiguously in
// robot-id order: the first included robot starts at 0, each subsequent
// included robot starts where the previous one ended. Excluded robots
// keep offset zero and contribute no width.
// Complexity: O(R).
func ComputeOffsets(poseCounts []int, included []bool) *Offsets {
	o := &Offsets{
		base:       make([]int, len(poseCounts)),
		included:   included,
		poseCounts: poseCounts,
	}

	prevOffset, prevPoses := 0, 0
	for id, in := range included {
		if !in {
			continue
		}
		o.base[id] = prevOffset + prevPoses
		prevOffset = o.base[id]
		prevPoses = poseCounts[id]
	}

	return o
}

// Of returns robot's base index into the flat node space.
func (o *Offsets) Of(robot int) int { return o.base[robot] }

// Apply maps every edge whose both endpoints belong to included robots to
// a FlatEdge, preserving weight. Edges touching an excluded robot are
// silently dropped from the round; that is gating, not an error.
// Complexity: O(len(edges)).
func (o *Offsets) Apply(edges []core.InterRobotEdge) []core.FlatEdge {
	flat := make([]core.FlatEdge, 0, len(edges))
	for _, e := range edges {
		if !o.included[e.Robot0] || !o.included[e.Robot1] {
			continue
		}
		flat = append(flat, core.FlatEdge{
			I:      o.base[e.Robot0] + e.Image0,
			J:      o.base[e.Robot1] + e.Image1,
			Weight: e.Weight,
		})
	}

	return flat
}

// Odometry synthesizes the per-robot pose chains: for every robot r it
// emits poseCounts[r]-1 edges linking consecutive flat indices at weight
// fixedWeight (none when the robot has at most one pose). The chains are
// emitted for every robot, excluded ones included at their zero offset,
// mirroring the gate-independent pose accounting of the round.
// Complexity: O(total poses).
func (o *Offsets) Odometry(fixedWeight float64) []core.FlatEdge {
	var chain []core.FlatEdge
	for r, n := range o.poseCounts {
		for k := 0; k < n-1; k++ {
			chain = append(chain, core.FlatEdge{
				I:      o.base[r] + k,
				J:      o.base[r] + k + 1,
				Weight: fixedWeight,
			})
		}
	}

	return chain
}

// owner returns the included robot whose flat index range covers idx:
// the last included robot, in id order, whose offset idx has reached.
// Included robots without poses share their successor's offset and are
// skipped by the >= comparison.
func (o *Offsets) owner(idx int) int {
	owner := -1
	for id, in := range o.included {
		if !in {
			continue
		}
		if owner < 0 || idx >= o.base[id] {
			owner = id
		}
	}

	return owner
}

// Recover inverts Apply: each flat endpoint's owning robot is found by
// walking the included robots' ascending offsets, then the owner's
// offset is subtracted to restore the local image index. Recover must
// reproduce Apply's mapping exactly; excluded robots never own an index.
// Complexity: O(len(edges) * R).
func (o *Offsets) Recover(edges []core.FlatEdge) []core.InterRobotEdge {
	recovered := make([]core.InterRobotEdge, 0, len(edges))
	for _, e := range edges {
		r0 := o.owner(e.I)
		r1 := o.owner(e.J)
		recovered = append(recovered, core.InterRobotEdge{
			Robot0: r0,
			Image0: e.I - o.base[r0],
			Robot1: r1,
			Image1: e.J - o.base[r1],
			Weight: e.Weight,
		})
	}

	return recovered
}

// TotalPoses returns the flat node count: the sum of every robot's pose
// count, excluded robots included.
func (o *Offsets) TotalPoses() int {
	total := 0
	for _, n := range o.poseCounts {
		total += n
	}

	return total
}
