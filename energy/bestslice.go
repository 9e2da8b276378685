package energy

import (
	"sort"

	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
	"github.com/PlanQK/SimulatedQuantumAnnealing/trotter"
)

// BestSlice reports the classical configuration at Trotter slice t as the
// sorted list of user labels whose spin equals a canonical reference value.
//
// By default the reference is "spin up" (+1). When firstIn is true the
// reference is instead the value of spin 0 itself, which makes the output
// self-referential: spin 0's own label is always included, eliminating the
// ambiguity a field-free problem's global Z2 symmetry would otherwise leave
// in the reported state.
func BestSlice(g *problem.Graph, state *trotter.State, t int, firstIn bool) []int {
	ref := 1
	if firstIn {
		ref = state.Spin(0, t)
	}

	var labels []int
	for i := 0; i < state.N(); i++ {
		if state.Spin(i, t) == ref {
			labels = append(labels, g.UserLabel(i))
		}
	}
	sort.Ints(labels)
	return labels
}
