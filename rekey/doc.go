// Package rekey translates edges between robot-local addressing
// (robot id, image index) and the flat single-graph addressing spectral
// solvers require, in both directions.
//
// The translation is anchored on per-robot offsets: walking robot ids in
// increasing order, each robot included in the current round receives the
// previous included robot's offset plus that robot's pose count, packing
// all included pose indices into one contiguous, gap-free index space.
// Excluded robots keep offset zero and contribute no width.
//
// Besides translating communicated edges, the package synthesizes the
// odometry chains: every robot's consecutive poses are linked by inferred
// fixed-weight edges that are never exchanged over the network, so each
// robot's own trajectory is connected inside the flat graph regardless of
// which poses the inter-robot measurements happen to mention.
//
// Offsets are recomputed every round from the current inclusion gate and
// are never persisted between rounds.
package rekey
