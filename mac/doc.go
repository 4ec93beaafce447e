// Package mac maximizes the algebraic connectivity of a pose graph under
// a cardinality budget: given a set of fixed edges and a pool of weighted
// candidate edges over one flat node space, it selects at most k
// candidates so that the second-smallest Laplacian eigenvalue (the
// algebraic connectivity, λ₂) of the combined graph is as large as
// possible.
//
// The relaxation is solved with the Frank-Wolfe method on the activation
// vector w ∈ [0,1]^m:
//
//  1. assemble L(w) = L_fixed + Σ wₑ·Lₑ and compute its Fiedler pair
//     (λ₂ and its eigenvector f);
//  2. the supergradient of λ₂ is gₑ = weightₑ·(fᵢ − fⱼ)² per candidate;
//  3. step toward the best vertex of the budget polytope (the indicator
//     of the k largest gradient entries) with the 2/(t+2) schedule;
//  4. stop on a small duality gap or after the caller's iteration cap,
//     then round w to the indicator of its k largest entries.
//
// The Fiedler pair is undefined on a disconnected graph (λ₂ = 0); any
// iterate or rounding in that state aborts with
// core.ErrSingularConfiguration, which callers treat as a retry signal,
// not a fault.
//
// Eigendecomposition is delegated to gonum (mat.EigenSym); graphs of a
// few thousand poses factorize well within a selection round's budget.
package mac
