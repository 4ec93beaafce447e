// Package cslam is the candidate-selection core of a multi-robot
// collaborative SLAM system: given the inter-robot loop-closure
// measurements already verified and a larger pool of unverified
// candidates, it picks the bounded-size subset of candidates that best
// strengthens the combined pose graph, measured by algebraic
// connectivity.
//
// Why it exists:
//
//	Each robot continuously detects potential matches against its peers'
//	keyframes, but can only afford to verify a handful per cycle. Spending
//	that budget on the matches that most improve the graph's connectivity
//	keeps the joint map observable and robust.
//
// The work is organized under five subpackages:
//
//	core/      — edge value types shared by everything, and the solver contract
//	posegraph/ — thread-safe bookkeeping: fixed edges, candidate table, pose counts
//	rekey/     — robot-local ↔ flat-graph addressing, odometry synthesis
//	mac/       — Frank–Wolfe maximization of algebraic connectivity (gonum)
//	selector/  — the round driver and the facade collaborators call
//
// Quick start:
//
//	s := selector.New(robotID, nbRobots)
//	s.AddMatch(match)          // detection stream, any goroutine
//	chosen, err := s.SelectCandidates(budget, true)
//	s.PromoteToFixed(verified) // feed verification results back
//
// Networking, measurement computation and persistence live outside this
// module; the selector only decides what is worth verifying next.
package cslam
