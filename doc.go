// Package sqa is a discrete-time path-integral Monte Carlo simulator for
// simulated quantum annealing (SQA) of Ising-like optimization problems
// with arbitrary k-body hyperedge interactions.
//
// A run is driven by a single loop owned by the driver package:
// init → (update → step → advance)* until stop → finish. The pipeline of
// layered components behind that loop is:
//
//	problem/    — hyperedge problem graph: ingestion, label remap, canonicalization
//	schedule/   — piecewise T(t)/Γ(t) annealing schedules
//	trotter/    — bit-packed Trotter-line state and its word-level primitives
//	kernel/     — weight normalization and the Wolff-style cluster-update kernel
//	energy/     — per-slice energy/histogram analysis and best-slice extraction
//	driver/     — orchestrates the run and flushes results to a string map
//
// internal/fastmath and internal/randgen hold the kernel's private
// numerical and RNG primitives; genproblem generates random benchmark
// problems (lattice, random-regular, uniform-random hyperedge) for tests
// and the cmd/sqarun CLI.
package sqa
