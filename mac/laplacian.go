// Weighted graph Laplacian assembly over the flat node space.
package mac

import (
	"gonum.org/v1/gonum/mat"

	"github.com/amine-chaabouni/cslam/core"
)

// addWeighted accumulates one edge of weight w into the Laplacian:
// degree on both diagonal entries, -w off-diagonal. Self-loops carry no
// Laplacian mass and are skipped.
func addWeighted(l *mat.SymDense, i, j int, w float64) {
	if i == j {
		return
	}
	l.SetSym(i, i, l.At(i, i)+w)
	l.SetSym(j, j, l.At(j, j)+w)
	l.SetSym(i, j, l.At(i, j)-w)
}

// laplacian builds the weighted Laplacian of edges over n nodes.
// Complexity: O(n² allocation + len(edges)).
func laplacian(edges []core.FlatEdge, n int) *mat.SymDense {
	l := mat.NewSymDense(n, nil)
	for _, e := range edges {
		addWeighted(l, e.I, e.J, e.Weight)
	}

	return l
}

// laplacianAt layers the activation-scaled candidate edges on top of the
// fixed-edge Laplacian base: L(w) = L_fixed + Σ wₑ·weightₑ·Lₑ.
func (s *Solver) laplacianAt(w []float64) *mat.SymDense {
	l := mat.NewSymDense(s.n, nil)
	l.CopySym(s.base)
	for idx, e := range s.candidates {
		if w[idx] == 0 {
			continue
		}
		addWeighted(l, e.I, e.J, w[idx]*e.Weight)
	}

	return l
}
