package genproblem

import (
	"math/rand"

	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
)

// Random generates a random hyperedge problem over n spins: numEdges
// edges (default n), each with an arity drawn uniformly from
// [arityMin, arityMax] (default 2..2, i.e. plain pairwise), distinct
// vertex labels drawn from [0, n), and a weight from weightFn (default
// uniform in [-1, 1]).
//
// Duplicate edges and zero weights are permitted on output; canonicalize
// them with problem.Graph.Canonicalize as usual.
func Random(n int, opts ...Option) []problem.RawEdge {
	if n <= 0 {
		panic("genproblem: Random requires n > 0")
	}
	c := newConfig(n)
	for _, opt := range opts {
		opt(c)
	}

	edges := make([]problem.RawEdge, c.numEdges)
	for i := range edges {
		arity := c.arityMin
		if c.arityMax > c.arityMin {
			arity += c.rng.Intn(c.arityMax - c.arityMin + 1)
		}
		if arity > n {
			arity = n
		}
		edges[i] = problem.RawEdge{
			Weight: c.weightFn(c.rng),
			Labels: distinctLabels(c.rng, n, arity),
		}
	}
	return edges
}

// distinctLabels draws k distinct integer labels from [0, n) via partial
// Fisher-Yates over an index pool, avoiding an O(k^2) rejection loop for
// dense arities.
func distinctLabels(rng *rand.Rand, n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return append([]int(nil), pool[:k]...)
}
