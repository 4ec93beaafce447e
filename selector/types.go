// This file declares the Selector configuration surface: defaults,
// functional options and the deterministic RNG policy.
package selector

import (
	"math/rand"

	"github.com/amine-chaabouni/cslam/core"
	"github.com/amine-chaabouni/cslam/mac"
	"github.com/amine-chaabouni/cslam/posegraph"
)

// DefaultMaxIters caps the solver's internal iterations per trial.
const DefaultMaxIters = 20

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 => use defaultRNGSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Option configures a Selector before first use.
type Option func(*Selector)

// WithMaxIters overrides the per-trial solver iteration cap.
// Non-positive values fall back to DefaultMaxIters.
func WithMaxIters(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.maxIters = n
		}
	}
}

// WithFixedWeight overrides the weight carried by verified measurements
// and the synthesized odometry chains.
func WithFixedWeight(w float64) Option {
	return func(s *Selector) { s.fixedWeight = w }
}

// WithSeed seeds the injected RNG driving random and pseudo-greedy warm
// starts. Seed 0 selects the stable default stream.
func WithSeed(seed int64) Option {
	return func(s *Selector) { s.rng = rngFromSeed(seed) }
}

// WithSolverFactory swaps the algebraic-connectivity solver constructed
// each round. The default is mac.Factory. Nil factories are ignored.
func WithSolverFactory(f core.SolverFactory) Option {
	return func(s *Selector) {
		if f != nil {
			s.factory = f
		}
	}
}

// Selector is one robot's candidate-selection subsystem. Construct with
// New; the zero value is not usable.
type Selector struct {
	robotID     int
	maxIters    int
	fixedWeight float64
	rng         *rand.Rand
	factory     core.SolverFactory
	graph       *posegraph.Graph
}

// New creates a Selector for robot robotID in a team of nbRobots robots.
//
// Caller contract: 0 <= robotID < nbRobots; every edge handed to the
// mutation methods references robot ids within the team and non-negative
// image indices.
func New(robotID, nbRobots int, opts ...Option) *Selector {
	s := &Selector{
		robotID:     robotID,
		maxIters:    DefaultMaxIters,
		fixedWeight: posegraph.DefaultFixedWeight,
		rng:         rngFromSeed(0),
		factory:     mac.Factory,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.graph = posegraph.New(nbRobots, posegraph.WithFixedWeight(s.fixedWeight))

	return s
}
