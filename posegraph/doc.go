// Package posegraph owns the bookkeeping state of the multi-robot
// candidate-selection subsystem: the fixed (already verified) inter-robot
// edges, the table of live candidate edges, and the per-robot pose counts
// derived from every endpoint ever observed.
//
// A Graph is exclusively owned by one robot's selection subsystem.
// Collaborators never touch its internals; they drive it through the
// mutation operations (SetGraph, AddFixedEdge, AddCandidateEdge,
// RemoveCandidateEdges, PromoteToFixed, AddMatch), all of which are total
// functions guarded by a single mutex, so an asynchronous inbound-match
// stream may interleave freely with selection rounds.
//
// A selection round must observe one consistent state; Snapshot returns a
// deep copy of all three collections under the lock for that purpose.
// Candidates appear in deterministic key order, which is also the index
// order of the round's activation vectors.
//
// Candidate table contract: one live candidate per (source image index,
// target robot) key - the source robot id is deliberately not part of the
// key, so proposals from different robots against the same slot compete
// and only the strictly heavier one survives (see AddMatch).
package posegraph
