// Package selector_test drives the round orchestration against a
// scripted solver (gate, warm starts, retry policy, decode) and against
// the real mac solver for the full multi-robot round.
package selector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amine-chaabouni/cslam/core"
	"github.com/amine-chaabouni/cslam/selector"
)

func edge(r0, i0, r1, i1 int, w float64) core.InterRobotEdge {
	return core.InterRobotEdge{Robot0: r0, Image0: i0, Robot1: r1, Image1: i1, Weight: w}
}

// scriptedSolver fails the first failures calls with the singular signal
// (or with err when set), then echoes back the last initial vector.
type scriptedSolver struct {
	failures int
	err      error
	calls    int
	inits    [][]float64
}

func (f *scriptedSolver) Subset(initial []float64, k, maxIters int) ([]float64, error) {
	f.calls++
	cp := append([]float64(nil), initial...)
	f.inits = append(f.inits, cp)
	if f.calls <= f.failures {
		if f.err != nil {
			return nil, f.err
		}

		return nil, core.ErrSingularConfiguration
	}

	return cp, nil
}

// capture records the problem handed to the solver factory.
type capture struct {
	solver     *scriptedSolver
	built      bool
	fixed      []core.FlatEdge
	candidates []core.FlatEdge
	totalPoses int
}

func (c *capture) factory(fixed, candidates []core.FlatEdge, totalPoses int) core.Solver {
	c.built = true
	c.fixed = fixed
	c.candidates = candidates
	c.totalPoses = totalPoses

	return c.solver
}

// ------------------------------------------------------------------------
// 1. Short circuits: no budget, no candidates.
// ------------------------------------------------------------------------

func TestSelectCandidates_EmptyPoolSkipsSolver(t *testing.T) {
	rec := &capture{solver: &scriptedSolver{}}
	s := selector.New(0, 2, selector.WithSolverFactory(rec.factory))
	s.AddFixedEdge(edge(0, 0, 1, 0, 1.0)) // fixed edges alone never trigger a round

	got, err := s.SelectCandidates(3, true)
	require.NoError(t, err)
	require.Empty(t, got)
	require.False(t, rec.built, "solver must not be constructed for an empty pool")
}

func TestSelectCandidates_NonPositiveBudget(t *testing.T) {
	rec := &capture{solver: &scriptedSolver{}}
	s := selector.New(0, 2, selector.WithSolverFactory(rec.factory))
	s.AddCandidateEdge(edge(0, 0, 1, 0, 0.5))

	got, err := s.SelectCandidates(0, true)
	require.NoError(t, err)
	require.Empty(t, got)
	require.False(t, rec.built)
}

// ------------------------------------------------------------------------
// 2. Gate and flattening.
// ------------------------------------------------------------------------

func TestSelectCandidates_GateExcludesRobotsWithoutCandidates(t *testing.T) {
	rec := &capture{solver: &scriptedSolver{}}
	s := selector.New(0, 3, selector.WithSolverFactory(rec.factory))

	// Robot 2 shows up only in a fixed edge, so it sits out this round:
	// the 0-2 fixed edge is dropped from the flat graph.
	s.AddFixedEdge(edge(0, 0, 2, 1, 1.0))
	s.AddCandidateEdge(edge(0, 1, 1, 0, 0.5))

	got, err := s.SelectCandidates(1, true)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Len(t, rec.candidates, 1)
	// Pose counts are [2,1,2]; only the odometry chains of robots 0 and 2
	// survive flattening (1 edge each), the inter-robot 0-2 edge is gone.
	require.Len(t, rec.fixed, 2)
	// The node count covers every robot's poses, excluded ones included.
	require.Equal(t, 5, rec.totalPoses)
}

func TestSelectCandidates_GreedyWarmStart(t *testing.T) {
	rec := &capture{solver: &scriptedSolver{}}
	s := selector.New(0, 2, selector.WithSolverFactory(rec.factory))

	// Snapshot orders candidates by source image index, so the warm start
	// indexes weights [0.1, 0.9, 0.5, 0.9].
	pool := []core.InterRobotEdge{
		edge(0, 0, 1, 0, 0.1),
		edge(0, 1, 1, 1, 0.9),
		edge(0, 2, 1, 0, 0.5),
		edge(0, 3, 1, 1, 0.9),
	}
	for _, e := range pool {
		s.AddCandidateEdge(e)
	}

	got, err := s.SelectCandidates(2, true)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 1}, rec.solver.inits[0],
		"the two heaviest candidates seed the warm start")

	// The echoed activation decodes back to the two heavy pool edges.
	require.Len(t, got, 2)
	require.True(t, got[0].SameEndpoints(pool[1]), "got %+v", got[0])
	require.True(t, got[1].SameEndpoints(pool[3]), "got %+v", got[1])
}

// ------------------------------------------------------------------------
// 3. Retry policy.
// ------------------------------------------------------------------------

func TestSelectCandidates_RetriesWithFreshWarmStart(t *testing.T) {
	rec := &capture{solver: &scriptedSolver{failures: 2}}
	s := selector.New(0, 2, selector.WithSolverFactory(rec.factory), selector.WithSeed(7))
	for i := 0; i < 5; i++ {
		s.AddCandidateEdge(edge(0, i, 1, i, float64(i+1)/10))
	}

	got, err := s.SelectCandidates(4, true)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	require.Equal(t, 3, rec.solver.calls, "two singular trials, then success")

	// Every warm start, perturbed or not, activates exactly k candidates.
	for trial, init := range rec.solver.inits {
		active := 0
		for _, v := range init {
			active += int(v)
		}
		require.Equalf(t, 4, active, "trial %d warm start is not a size-k activation", trial)
	}
}

func TestSelectCandidates_GivesUpAfterBudgetTrials(t *testing.T) {
	rec := &capture{solver: &scriptedSolver{failures: 1 << 30}}
	s := selector.New(0, 2, selector.WithSolverFactory(rec.factory))
	for i := 0; i < 4; i++ {
		s.AddCandidateEdge(edge(0, i, 1, i, 0.5))
	}

	got, err := s.SelectCandidates(3, true)
	require.NoError(t, err, "retry exhaustion is a designed give-up, not an error")
	require.Empty(t, got)
	require.Equal(t, 3, rec.solver.calls)
}

func TestSelectCandidates_UnrelatedSolverErrorSurfaces(t *testing.T) {
	boom := errors.New("solver exploded")
	rec := &capture{solver: &scriptedSolver{failures: 1 << 30, err: boom}}
	s := selector.New(0, 2, selector.WithSolverFactory(rec.factory))
	s.AddCandidateEdge(edge(0, 0, 1, 0, 0.5))
	s.AddCandidateEdge(edge(0, 1, 1, 1, 0.6))

	_, err := s.SelectCandidates(2, true)
	require.ErrorIs(t, err, boom, "only singular configurations are retried")
	require.Equal(t, 1, rec.solver.calls)
}

// ------------------------------------------------------------------------
// 4. Determinism of the injected RNG.
// ------------------------------------------------------------------------

func TestSelectCandidates_RandomStartReproducible(t *testing.T) {
	build := func() ([]core.InterRobotEdge, error) {
		rec := &capture{solver: &scriptedSolver{}}
		s := selector.New(0, 2, selector.WithSolverFactory(rec.factory), selector.WithSeed(42))
		for i := 0; i < 6; i++ {
			s.AddCandidateEdge(edge(0, i, 1, i, 0.5))
		}

		return s.SelectCandidates(2, false)
	}

	a, errA := build()
	b, errB := build()
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, a, b, "same seed, same round, same selection")
}

// ------------------------------------------------------------------------
// 5. Full round against the real solver.
// ------------------------------------------------------------------------

func TestSelectCandidates_EndToEndThreeRobots(t *testing.T) {
	s := selector.New(0, 3) // default factory: mac

	s.AddFixedEdge(edge(0, 0, 1, 0, 1.0))
	pool := []core.InterRobotEdge{
		edge(0, 0, 2, 0, 0.9),
		edge(0, 1, 2, 1, 0.5),
		edge(0, 2, 1, 1, 0.3),
		edge(1, 1, 2, 3, 0.8),
	}
	for _, e := range pool {
		s.AddCandidateEdge(e)
	}
	// Pose counts are now [3, 2, 4]: offsets pack to {0, 3, 5} and the
	// odometry synthesis contributes 2+1+3 chain edges.

	got, err := s.SelectCandidates(2, true)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, sel := range got {
		found := false
		for _, p := range pool {
			if sel.SameEndpoints(p) {
				found = true
				break
			}
		}
		require.True(t, found, "selected edge %+v is not drawn from the pool", sel)
	}
}

func TestSelectCandidates_DoesNotMutateState(t *testing.T) {
	s := selector.New(0, 3)
	s.AddFixedEdge(edge(0, 0, 1, 0, 1.0))
	s.AddCandidateEdge(edge(0, 1, 2, 0, 0.9))
	s.AddCandidateEdge(edge(1, 2, 2, 1, 0.7))

	first, err := s.SelectCandidates(1, true)
	require.NoError(t, err)
	second, err := s.SelectCandidates(1, true)
	require.NoError(t, err)
	require.Equal(t, first, second, "rounds must not consume candidates")
}
