package energy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
	"github.com/PlanQK/SimulatedQuantumAnnealing/trotter"
)

// Histogram buckets one slice's energy contributions by interaction arity.
// Bucket 0 is repurposed to hold the slice's grand total, per the
// convention that H_t[0] == E_t; there are no real arity-0 interactions.
type Histogram struct {
	byArity map[int]float64
}

func newHistogram() Histogram {
	return Histogram{byArity: make(map[int]float64)}
}

func (h Histogram) add(arity int, contribution float64) {
	h.byArity[arity] += contribution
}

// Total returns H_t[0], the slice's grand total energy.
func (h Histogram) Total() float64 { return h.byArity[0] }

// Arity returns H_t[k], the summed contribution of interactions of arity k.
func (h Histogram) Arity(k int) float64 { return h.byArity[k] }

// Arities returns the non-zero-bucket arities present in this histogram,
// in ascending order, excluding the grand-total bucket 0.
func (h Histogram) Arities() []int {
	var out []int
	for k := range h.byArity {
		if k != 0 {
			out = append(out, k)
		}
	}
	sort.Ints(out)
	return out
}

// Strings renders the histogram as the "energy_distr" output format of
// §6: comma-separated "arity:value" pairs in ascending arity order,
// including the grand-total bucket 0 first.
func (h Histogram) Strings() string {
	parts := []string{fmt.Sprintf("0:%g", h.Total())}
	for _, k := range h.Arities() {
		parts = append(parts, fmt.Sprintf("%d:%g", k, h.Arity(k)))
	}
	return strings.Join(parts, ",")
}

// Analysis is the per-slice energy breakdown over a full Trotter state.
type Analysis struct {
	NT int

	PerSlice   []float64   // E_t, length NT
	Histograms []Histogram // H_t, length NT

	MinIndex   int // first slice index achieving the minimum E_t
	Degeneracy int // count of slices exactly tied with PerSlice[MinIndex]
}

// Analyze scans every Trotter slice of state against g's original
// (unnormalized) edges and fields, building one Histogram per slice and
// locating the minimum-energy slice and its degeneracy.
func Analyze(g *problem.Graph, state *trotter.State) *Analysis {
	nt := state.NT()
	edges := g.Edges()

	a := &Analysis{
		NT:         nt,
		PerSlice:   make([]float64, nt),
		Histograms: make([]Histogram, nt),
	}

	for t := 0; t < nt; t++ {
		h := newHistogram()
		total := 0.0

		for _, e := range edges {
			c := contribution(e.Weight, state, e.Verts, t)
			h.add(e.Arity(), c)
			total += c
		}
		for i := 0; i < g.N(); i++ {
			w, ok := g.Field(i)
			if !ok {
				continue
			}
			c := contribution(w, state, []int{i}, t)
			h.add(1, c)
			total += c
		}

		h.byArity[0] = total
		a.PerSlice[t] = total
		a.Histograms[t] = h
	}

	a.MinIndex, a.Degeneracy = minAndDegeneracy(a.PerSlice)
	return a
}

// contribution applies the sign convention shared with the kernel's energy
// cache: +w if the product of spin signs over verts at slice t is -1
// (an odd number of down spins), -w otherwise.
func contribution(w float64, state *trotter.State, verts []int, t int) float64 {
	down := false
	for _, v := range verts {
		if state.Line(v).Get(t) {
			down = !down
		}
	}
	if down {
		return w
	}
	return -w
}

func minAndDegeneracy(perSlice []float64) (minIndex, degeneracy int) {
	if len(perSlice) == 0 {
		return 0, 0
	}
	min := perSlice[0]
	minIndex = 0
	for t := 1; t < len(perSlice); t++ {
		if perSlice[t] < min {
			min = perSlice[t]
			minIndex = t
		}
	}
	for _, e := range perSlice {
		if e == min {
			degeneracy++
		}
	}
	return minIndex, degeneracy
}
