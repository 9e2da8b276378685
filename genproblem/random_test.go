package genproblem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
)

func TestRandomProducesRequestedEdgeCount(t *testing.T) {
	edges := Random(10, WithSeed(1), WithEdgeCount(25))
	require.Len(t, edges, 25)
}

func TestRandomEdgesHaveDistinctVertices(t *testing.T) {
	edges := Random(8, WithSeed(2), WithArityRange(3, 5), WithEdgeCount(20))
	for _, e := range edges {
		seen := make(map[int]struct{}, len(e.Labels))
		for _, l := range e.Labels {
			require.GreaterOrEqual(t, l, 0)
			require.Less(t, l, 8)
			_, dup := seen[l]
			require.False(t, dup, "duplicate vertex within one edge")
			seen[l] = struct{}{}
		}
		require.GreaterOrEqual(t, len(e.Labels), 3)
		require.LessOrEqual(t, len(e.Labels), 5)
	}
}

func TestRandomIsReproducibleWithSameSeed(t *testing.T) {
	a := Random(6, WithSeed(42), WithEdgeCount(10))
	b := Random(6, WithSeed(42), WithEdgeCount(10))
	require.Equal(t, a, b)
}

func TestWithFieldsAllowsArityOne(t *testing.T) {
	edges := Random(5, WithSeed(3), WithEdgeCount(50), WithFields())
	sawField := false
	for _, e := range edges {
		if len(e.Labels) == 1 {
			sawField = true
		}
	}
	require.True(t, sawField, "expected at least one arity-1 edge among 50 draws")
}

func TestRandomGraphFeedsProblemGraph(t *testing.T) {
	edges := Random(6, WithSeed(5), WithEdgeCount(15))
	g := problem.NewGraph(6)
	_, err := g.Ingest(edges)
	require.NoError(t, err)
	_, err = g.Canonicalize()
	require.NoError(t, err)
}
