// Fiedler pair extraction: algebraic connectivity and its eigenvector.
package mac

import (
	"gonum.org/v1/gonum/mat"

	"github.com/amine-chaabouni/cslam/core"
)

// connTol is the threshold below which λ₂ is treated as zero, i.e. the
// graph described by the current activation is disconnected.
const connTol = 1e-8

// fiedler returns (λ₂, f): the second-smallest eigenvalue of l and its
// eigenvector. It fails with core.ErrSingularConfiguration when λ₂ is
// numerically zero (disconnected graph, undefined Fiedler vector) and
// with ErrEigenFailed when the factorization does not converge.
// Complexity: O(n³).
func fiedler(l *mat.SymDense) (float64, []float64, error) {
	n, _ := l.Dims()
	if n < 2 {
		// A graph without at least two nodes has no second eigenvalue to
		// speak of; treat it like the disconnected case.
		return 0, nil, core.ErrSingularConfiguration
	}

	var es mat.EigenSym
	if !es.Factorize(l, true) {
		return 0, nil, ErrEigenFailed
	}

	// gonum reports eigenvalues in ascending order; index 1 is λ₂.
	lambda2 := es.Values(nil)[1]
	if lambda2 <= connTol {
		return 0, nil, core.ErrSingularConfiguration
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		f[i] = vecs.At(i, 1)
	}

	return lambda2, f, nil
}
