// Package driver orchestrates one annealing run: it builds the problem
// graph, scheduler and kernel in dependency order, drives the
// init → (update → step → advance)* → finish loop, and flushes the
// result to a string map.
//
// The state machine (Uninitialized → Ready → Running ↔ Stopped →
// Finalized) is enforced by Driver's own method guards rather than by a
// separate type, the same way the teacher repository's graph methods
// guard on a structural invariant (e.g. a missing adjacency entry)
// instead of introducing a parallel state type.
package driver
