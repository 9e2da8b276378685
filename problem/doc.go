// Package problem implements the canonical internal form of a hyperedge
// Ising problem (spec component C1): label remap, intra-edge sort,
// duplicate-edge merge, zero-weight removal, and adjacency.
//
// It is adapted from the teacher repository's core.Graph (pairwise,
// vertex/edge adjacency-list graph) generalized to arbitrary-arity
// hyperedges: an "edge" here is a (weight, ordered vertex list) pair rather
// than a (from, to) pair, and adjacency maps a spin index to the edges that
// contain it rather than to neighboring vertices.
//
// Construction is read-mostly once ingestion finishes (Ingest then
// Canonicalize are called once at init()), so the RWMutex discipline the
// teacher uses for concurrent graph access is kept for Graph's public
// accessors even though the SQA kernel itself runs single-threaded per
// spec §5 — callers may build and canonicalize a Graph off the driver's
// goroutine (e.g. while parsing a large text file) and then hand it to the
// kernel.
package problem
