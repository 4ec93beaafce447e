// This file declares the Solver type, its sentinel errors and the
// Frank-Wolfe subset-selection loop.
package mac

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/amine-chaabouni/cslam/core"
)

// Sentinel errors of the mac solver. Disconnected-iterate failures are
// reported as core.ErrSingularConfiguration, the shared retry signal.
var (
	// ErrDimensionMismatch indicates an initial activation vector whose
	// length differs from the candidate count.
	ErrDimensionMismatch = errors.New("mac: initial activation length does not match candidate count")

	// ErrEigenFailed indicates the symmetric eigendecomposition did not
	// converge; this is a numerical fault, never a retry signal.
	ErrEigenFailed = errors.New("mac: eigendecomposition failed to converge")
)

// gapTol stops the Frank-Wolfe loop once the duality gap g·(s−w) falls
// below it; further steps cannot improve the relaxation meaningfully.
const gapTol = 1e-6

// Solver maximizes algebraic connectivity for one selection round.
// It implements core.Solver; build one per round via New or Factory.
type Solver struct {
	candidates []core.FlatEdge
	n          int
	base       *mat.SymDense // Laplacian of the fixed edges
}

// New constructs a Solver over n = totalPoses flat nodes. The fixed-edge
// Laplacian is assembled once; every Subset call layers candidate
// activations on top of it.
//
// Caller contract: all edge endpoints lie in [0, totalPoses).
func New(fixed, candidates []core.FlatEdge, totalPoses int) *Solver {
	return &Solver{
		candidates: candidates,
		n:          totalPoses,
		base:       laplacian(fixed, totalPoses),
	}
}

// Factory adapts New to the core.SolverFactory signature.
func Factory(fixed, candidates []core.FlatEdge, totalPoses int) core.Solver {
	return New(fixed, candidates, totalPoses)
}

// Subset runs the Frank-Wolfe relaxation from the given initial
// activation vector and rounds the result to a binary selection of at
// most k candidates. See the package documentation for the algorithm.
//
// A budget k of at least the candidate count degenerates to selecting
// every candidate. Returns core.ErrSingularConfiguration when any
// iterate, the initial one included, describes a disconnected graph.
// Complexity: O(maxIters · n³).
func (s *Solver) Subset(initial []float64, k, maxIters int) ([]float64, error) {
	m := len(s.candidates)
	if len(initial) != m {
		return nil, ErrDimensionMismatch
	}
	if k > m {
		k = m
	}

	w := make([]float64, m)
	copy(w, initial)

	for t := 0; t < maxIters; t++ {
		_, f, err := fiedler(s.laplacianAt(w))
		if err != nil {
			return nil, err
		}

		// Supergradient of λ₂ with respect to each activation.
		g := make([]float64, m)
		for idx, e := range s.candidates {
			d := f[e.I] - f[e.J]
			g[idx] = e.Weight * d * d
		}

		// Linear maximization over the budget polytope: the indicator of
		// the k largest gradient entries.
		step := indicatorTopK(g, k)

		gap := 0.0
		for i := range g {
			gap += g[i] * (step[i] - w[i])
		}
		if gap <= gapTol {
			break
		}

		alpha := 2.0 / float64(t+2)
		for i := range w {
			w[i] += alpha * (step[i] - w[i])
		}
	}

	// Round to the k heaviest activations and insist the rounded graph is
	// still connected; a disconnected rounding is the retry signal.
	rounded := indicatorTopK(w, k)
	if _, _, err := fiedler(s.laplacianAt(rounded)); err != nil {
		return nil, err
	}

	return rounded, nil
}

// indicatorTopK returns the 0/1 vector activating the k largest entries
// of vals; ties resolve toward the lower index. k <= 0 yields all zeros.
func indicatorTopK(vals []float64, k int) []float64 {
	out := make([]float64, len(vals))
	if k <= 0 {
		return out
	}
	if k > len(vals) {
		k = len(vals)
	}

	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return vals[order[a]] > vals[order[b]]
	})
	for _, idx := range order[:k] {
		out[idx] = 1.0
	}

	return out
}
