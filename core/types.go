// This file declares InterRobotEdge, FlatEdge, CandidateKey, the Solver
// contract and the package sentinel errors.
package core

import "errors"

// Sentinel errors shared across the selection subsystem.
var (
	// ErrSingularConfiguration indicates that a solver iterate corresponds
	// to a disconnected graph, so the Fiedler pair is undefined. Callers
	// recover by retrying with a perturbed initial activation vector.
	ErrSingularConfiguration = errors.New("core: singular configuration (disconnected graph)")
)

// InterRobotEdge is a loop-closure measurement between two robots in
// robot-local addressing. Robot0/Image0 identify the keyframe on the robot
// that produced the match, Robot1/Image1 the keyframe it matched against.
// Weight carries the similarity or confidence score of the match.
//
// InterRobotEdge is a value type: copy freely, never mutate in place.
type InterRobotEdge struct {
	// Robot0 is the id of the robot owning the source keyframe.
	Robot0 int

	// Image0 is the source keyframe index on Robot0.
	Image0 int

	// Robot1 is the id of the robot owning the target keyframe.
	Robot1 int

	// Image1 is the target keyframe index on Robot1.
	Image1 int

	// Weight is the similarity score; it never participates in identity.
	Weight float64
}

// SameEndpoints reports whether e and o denote the same measurement.
// Weights are deliberately ignored: the same candidate may be re-detected
// with a different score and must still be recognized as a duplicate.
func (e InterRobotEdge) SameEndpoints(o InterRobotEdge) bool {
	return e.Robot0 == o.Robot0 &&
		e.Image0 == o.Image0 &&
		e.Robot1 == o.Robot1 &&
		e.Image1 == o.Image1
}

// WithWeight returns a copy of e carrying weight w.
func (e InterRobotEdge) WithWeight(w float64) InterRobotEdge {
	e.Weight = w
	return e
}

// CandidateKey addresses the candidate table: one live candidate is kept
// per (source image index, target robot) pair.
//
// The source robot id is intentionally absent. Two robots proposing a
// match with the same source image index toward the same target robot
// therefore compete for one slot, and only the heavier proposal survives.
type CandidateKey struct {
	Image0 int
	Robot1 int
}

// Key returns the candidate-table key of e.
func (e InterRobotEdge) Key() CandidateKey {
	return CandidateKey{Image0: e.Image0, Robot1: e.Robot1}
}

// FlatEdge is an edge of the flattened single graph: two node indices and
// a weight. FlatEdges exist only for the duration of one selection round;
// they are produced by rekeying and consumed by the solver.
type FlatEdge struct {
	I      int
	J      int
	Weight float64
}

// Solver is the algebraic-connectivity maximization contract. A Solver is
// constructed for one selection round over a fixed problem (fixed edges,
// candidate edges, node count) and queried with initial guesses.
type Solver interface {
	// Subset selects at most k candidate edges maximizing the algebraic
	// connectivity of the combined graph, starting from the activation
	// vector initial (one entry per candidate edge, in candidate order)
	// and iterating at most maxIters times.
	//
	// It returns an activation vector over the same candidate order, or
	// ErrSingularConfiguration when an iterate describes a disconnected
	// graph. Budgets k exceeding the candidate count are a tolerated
	// degenerate case: every candidate is selected.
	Subset(initial []float64, k, maxIters int) ([]float64, error)
}

// SolverFactory builds a Solver for one round. fixed and candidates are
// flat edges; totalPoses is the number of nodes of the flat graph.
type SolverFactory func(fixed, candidates []FlatEdge, totalPoses int) Solver
