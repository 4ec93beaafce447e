// This file declares the Graph aggregate, its construction options and
// the Snapshot type; mutation operations live in mutations.go.
package posegraph

import (
	"sort"
	"sync"

	"github.com/amine-chaabouni/cslam/core"
)

// DefaultFixedWeight is the weight assigned to measurements once they are
// verified: a confirmed edge contributes fully to connectivity, whatever
// similarity score it was proposed with.
const DefaultFixedWeight = 1.0

// Graph aggregates the selection bookkeeping of one robot.
//
// Caller contract: robot ids on every edge must lie in [0, nbRobots);
// image indices must be non-negative. Malformed ids are a contract
// violation, not a handled condition.
type Graph struct {
	mu sync.Mutex // guards every field below

	nbRobots    int
	fixedWeight float64

	fixed      []core.InterRobotEdge
	candidates map[core.CandidateKey]core.InterRobotEdge
	poseCounts []int // poseCounts[r] = max(imageIndex)+1 over endpoints seen on r
}

// Option configures a Graph before first use.
type Option func(*Graph)

// WithFixedWeight overrides the weight assigned to promoted measurements.
func WithFixedWeight(w float64) Option {
	return func(g *Graph) { g.fixedWeight = w }
}

// New creates an empty Graph for a team of nbRobots robots.
// Team sizes below one are clamped to a single-robot team.
// Complexity: O(nbRobots).
func New(nbRobots int, opts ...Option) *Graph {
	if nbRobots < 1 {
		nbRobots = 1
	}
	g := &Graph{
		nbRobots:    nbRobots,
		fixedWeight: DefaultFixedWeight,
		candidates:  make(map[core.CandidateKey]core.InterRobotEdge),
		poseCounts:  make([]int, nbRobots),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NbRobots returns the team size the Graph was built for.
func (g *Graph) NbRobots() int { return g.nbRobots }

// FixedWeight returns the weight assigned to promoted measurements.
func (g *Graph) FixedWeight() float64 { return g.fixedWeight }

// Snapshot is one consistent copy of the Graph state, taken under the
// lock. Candidates are ordered by key (source image index, then target
// robot id); that order defines the index correspondence with activation
// vectors for the round that consumed the snapshot.
type Snapshot struct {
	Fixed      []core.InterRobotEdge
	Candidates []core.InterRobotEdge
	PoseCounts []int
}

// Snapshot returns a deep copy of the current state. Mutations performed
// after Snapshot returns never affect the copy.
// Complexity: O(F + C log C + R) for F fixed edges, C candidates, R robots.
func (g *Graph) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Fixed:      make([]core.InterRobotEdge, len(g.fixed)),
		Candidates: make([]core.InterRobotEdge, 0, len(g.candidates)),
		PoseCounts: make([]int, len(g.poseCounts)),
	}
	copy(s.Fixed, g.fixed)
	copy(s.PoseCounts, g.poseCounts)

	for _, e := range g.candidates {
		s.Candidates = append(s.Candidates, e)
	}
	// Map iteration order is randomized; impose the key order documented
	// on Snapshot so rounds are reproducible.
	sort.Slice(s.Candidates, func(a, b int) bool {
		ka, kb := s.Candidates[a].Key(), s.Candidates[b].Key()
		if ka.Image0 != kb.Image0 {
			return ka.Image0 < kb.Image0
		}

		return ka.Robot1 < kb.Robot1
	})

	return s
}

// touch grows the pose counts to cover both endpoints of e.
// Must be called with g.mu held.
func (g *Graph) touch(e core.InterRobotEdge) {
	if n := e.Image0 + 1; n > g.poseCounts[e.Robot0] {
		g.poseCounts[e.Robot0] = n
	}
	if n := e.Image1 + 1; n > g.poseCounts[e.Robot1] {
		g.poseCounts[e.Robot1] = n
	}
}
