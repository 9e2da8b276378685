package genproblem

import "github.com/PlanQK/SimulatedQuantumAnnealing/problem"

// Grid2D generates the canonical benchmark topology for lattice Ising
// models: a rows x cols orthogonal grid with 4-neighborhood couplings,
// right-then-bottom edge emission in row-major vertex order, matching the
// coordinate scheme and emission order of a deterministic grid builder.
// Cell (r, c) is label r*cols+c. Panics if rows or cols < 1.
func Grid2D(rows, cols int, opts ...Option) []problem.RawEdge {
	if rows < 1 || cols < 1 {
		panic("genproblem: Grid2D requires rows >= 1 and cols >= 1")
	}
	c := newConfig(rows * cols)
	for _, opt := range opts {
		opt(c)
	}

	label := func(r, col int) int { return r*cols + col }

	var edges []problem.RawEdge
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			u := label(r, col)
			if col+1 < cols {
				v := label(r, col+1)
				edges = append(edges, problem.RawEdge{Weight: c.weightFn(c.rng), Labels: []int{u, v}})
			}
			if r+1 < rows {
				v := label(r+1, col)
				edges = append(edges, problem.RawEdge{Weight: c.weightFn(c.rng), Labels: []int{u, v}})
			}
		}
	}
	return edges
}
