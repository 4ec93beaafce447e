// Package core defines the central edge value types shared by every
// package of the candidate-selection subsystem, and the contract of the
// algebraic-connectivity solver that consumes them.
//
// Two addressing schemes coexist in a multi-robot pose graph:
//
//   - InterRobotEdge speaks robot-local addressing: each endpoint is a
//     (robot id, image index) pair, the way loop-closure matches are
//     reported and exchanged between robots.
//   - FlatEdge speaks single-graph addressing: each endpoint is one
//     non-negative node index into a flat graph, the only representation
//     spectral solvers understand.
//
// The rekey package translates between the two; everything else in the
// subsystem traffics in InterRobotEdge values.
//
// Identity contract:
//
//	Two InterRobotEdge values denote the same measurement when their four
//	endpoint fields coincide, regardless of weight. Use SameEndpoints (or
//	Key for table lookups); never compare whole structs when deduplicating.
//
// Errors:
//
//	ErrSingularConfiguration - the solver's iterate describes a
//	disconnected graph (zero algebraic connectivity).
package core
