package energy

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
	"github.com/PlanQK/SimulatedQuantumAnnealing/trotter"
)

func newDeterministicEngine() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func buildGraph(t *testing.T, n int, raw []problem.RawEdge) *problem.Graph {
	g := problem.NewGraph(n)
	_, err := g.Ingest(raw)
	require.NoError(t, err)
	_, err = g.Canonicalize()
	require.NoError(t, err)
	return g
}

type AnalysisSuite struct {
	suite.Suite
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisSuite))
}

// TestEmptyProblemAllSlicesEqual covers S4: an empty problem has zero
// energy on every slice regardless of the random initial state, so every
// slice ties for the minimum.
func (s *AnalysisSuite) TestEmptyProblemAllSlicesEqual() {
	g := buildGraph(s.T(), 3, nil)
	state := trotter.NewState(3, 12)
	a := Analyze(g, state)

	for t := 0; t < 12; t++ {
		s.Equal(0.0, a.PerSlice[t])
		s.Equal(0.0, a.Histograms[t].Total())
	}
	s.Equal(12, a.Degeneracy)
	s.Equal(0, a.MinIndex)
}

// TestGrandTotalMatchesHistogramConvention checks H_t[0] == E_t for every
// slice of a mixed-arity problem.
func (s *AnalysisSuite) TestGrandTotalMatchesHistogramConvention() {
	g := buildGraph(s.T(), 4, []problem.RawEdge{
		{Weight: 1, Labels: []int{0, 1}},
		{Weight: -2, Labels: []int{2, 3}},
		{Weight: 1, Labels: []int{0, 1, 2}},
		{Weight: 0.5, Labels: []int{3}},
	})
	state := trotter.NewState(4, 9)
	state.Randomize(newDeterministicEngine())

	a := Analyze(g, state)
	for t := 0; t < 9; t++ {
		s.Equal(a.PerSlice[t], a.Histograms[t].Total())
	}
}

// TestArityBucketsSumToTotal checks that summing every non-zero arity
// bucket reproduces the grand total, for every slice.
func (s *AnalysisSuite) TestArityBucketsSumToTotal() {
	g := buildGraph(s.T(), 5, []problem.RawEdge{
		{Weight: 1, Labels: []int{0, 1}},
		{Weight: 1, Labels: []int{1, 2, 3, 4}},
		{Weight: -1, Labels: []int{2}},
	})
	state := trotter.NewState(5, 6)
	state.Randomize(newDeterministicEngine())

	a := Analyze(g, state)
	for t := 0; t < 6; t++ {
		sum := 0.0
		for _, k := range a.Histograms[t].Arities() {
			sum += a.Histograms[t].Arity(k)
		}
		s.InDelta(a.PerSlice[t], sum, 1e-12)
	}
}

// TestMinIndexIsFirstOccurrence checks that a manufactured tie resolves to
// the earlier slice index.
func (s *AnalysisSuite) TestMinIndexIsFirstOccurrence() {
	a := &Analysis{PerSlice: []float64{3, -1, 2, -1, 5}}
	a.MinIndex, a.Degeneracy = minAndDegeneracy(a.PerSlice)
	s.Equal(1, a.MinIndex)
	s.Equal(2, a.Degeneracy)
}

func TestBestSliceDefaultReferenceIsSpinUp(t *testing.T) {
	g := buildGraph(t, 3, []problem.RawEdge{{Weight: 1, Labels: []int{0, 1}}})
	state := trotter.NewState(3, 4) // all spins up (bit 0) by default
	state.Line(1).Set(0, true)      // spin 1 down at slice 0

	out := BestSlice(g, state, 0, false)
	require.Equal(t, []int{0, 2}, out)
	require.True(t, sort.SliceIsSorted(out, func(i, j int) bool { return out[i] < out[j] }))
}

// TestBestSliceFirstInAlwaysIncludesSpinZero covers the Z2-symmetry law of
// §8: a field-free problem's global spin flip must not change the
// first_in=true output, because the reference flips along with the state.
func TestBestSliceFirstInAlwaysIncludesSpinZero(t *testing.T) {
	g := buildGraph(t, 3, []problem.RawEdge{{Weight: 1, Labels: []int{0, 1, 2}}})
	state := trotter.NewState(3, 4)
	state.Line(0).Set(0, true) // spin 0 down; reference becomes -1

	out := BestSlice(g, state, 0, true)
	require.Contains(t, out, 0)

	flipped := trotter.NewState(3, 4)
	flipped.Line(1).Set(0, true)
	flipped.Line(2).Set(0, true)
	// flipped is the global complement of state at slice 0.
	outFlipped := BestSlice(g, flipped, 0, true)
	require.Equal(t, out, outFlipped)
}
