// Package selector orchestrates one candidate-selection round for a
// robot in a collaborative mapping team: out of a pool of unverified
// inter-robot loop-closure candidates, it picks the bounded-size subset
// that best strengthens the combined pose graph, measured by algebraic
// connectivity.
//
// A Selector wraps the posegraph bookkeeping aggregate and is the only
// surface collaborators use. Measurement paths feed it continuously
// (AddMatch, AddFixedEdge, AddCandidateEdge, RemoveCandidateEdges,
// PromoteToFixed, SetGraph); periodically the owner calls
// SelectCandidates, which runs one synchronous round:
//
//	gate -> offsets -> rekey fixed + odometry -> rekey candidates ->
//	warm start -> solver -> decode -> recover robot-local edges
//
// The round consumes one consistent snapshot of the bookkeeping state,
// so the inbound stream may keep mutating concurrently.
//
// The external solver occasionally lands on a singular configuration (an
// iterate describing a disconnected graph). The driver recovers locally:
// each retry rebuilds the warm start with strictly more randomness, and
// after k failed trials the round degrades to an empty selection. That is
// a designed give-up under adverse graph conditions, not an error.
//
// Randomness is deterministic and injected (seed option), so rounds are
// reproducible in tests; nothing reads process-global random state.
package selector
