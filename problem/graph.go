package problem

import "sync"

// Option configures a Graph at construction time.
type Option func(*config)

type config struct {
	policy RemapPolicy
}

// WithRemapPolicy overrides the default "sorted,fill,0" remap policy.
func WithRemapPolicy(p RemapPolicy) Option {
	return func(c *config) { c.policy = p }
}

// Graph is the canonical internal form of a hyperedge Ising problem: N
// spins and a duplicate-free, zero-weight-free edge list, with adjacency
// from spin index to the edges that contain it.
//
// muEdges guards edges/adjacency/fields after Canonicalize runs; Ingest and
// Canonicalize are expected to run once, sequentially, before the kernel
// starts reading the graph, but the lock lets a host safely read adjacency
// concurrently with, say, a background stats reporter.
type Graph struct {
	muEdges sync.RWMutex

	n      int
	policy RemapPolicy

	labels *labelMap
	edges  []Edge

	adjacency [][]int // spin index -> indices into edges
	fields    []float64
	hasField  []bool
}

// NewGraph declares a problem over n spins.
func NewGraph(n int, opts ...Option) *Graph {
	if n <= 0 {
		panic("problem: NewGraph requires n > 0")
	}
	cfg := config{policy: DefaultRemapPolicy()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{n: n, policy: cfg.policy}
}

// N returns the declared spin count.
func (g *Graph) N() int { return g.n }

// Ingest remaps rawEdges to internal indices and stores them uncanonicalized.
// Call Canonicalize afterward before reading Edges/Adjacency.
func (g *Graph) Ingest(rawEdges []RawEdge) ([]Warning, error) {
	for _, e := range rawEdges {
		if len(e.Labels) < 1 {
			return nil, ErrEdgeMalformed
		}
	}

	lm, err := buildLabelMap(rawEdges, g.n, g.policy)
	if err != nil {
		return nil, err
	}
	g.labels = lm

	var warnings []Warning
	if g.policy.Fill == FillModeNoFill {
		if d := distinctObserved(rawEdges); d < g.n {
			warnings = append(warnings, underfilledWarning(d, g.n))
		}
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	g.edges = make([]Edge, len(rawEdges))
	for i, e := range rawEdges {
		verts := make([]int, len(e.Labels))
		for j, lbl := range e.Labels {
			verts[j] = lm.toInternal[lbl]
		}
		g.edges[i] = Edge{Weight: e.Weight, Verts: verts}
	}
	return warnings, nil
}

// Canonicalize performs, in order: intra-edge sort, duplicate-edge merge by
// weight summation, and removal of zero-weight edges. It then builds
// adjacency and extracts single-vertex edges as per-site fields. Returns a
// WarnEmptyProblem warning if no edges remain.
func (g *Graph) Canonicalize() ([]Warning, error) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for i := range g.edges {
		sortInts(g.edges[i].Verts)
		g.edges[i].Verts = dedupSorted(g.edges[i].Verts)
	}

	merged := mergeDuplicateEdges(g.edges)
	merged = dropZeroWeight(merged)

	g.edges = nil
	g.fields = make([]float64, g.n)
	g.hasField = make([]bool, g.n)
	for _, e := range merged {
		if e.Arity() == 1 {
			i := e.Verts[0]
			g.fields[i] += e.Weight
			g.hasField[i] = true
			continue
		}
		g.edges = append(g.edges, e)
	}

	g.adjacency = make([][]int, g.n)
	for idx, e := range g.edges {
		for _, v := range e.Verts {
			g.adjacency[v] = append(g.adjacency[v], idx)
		}
	}

	var warnings []Warning
	if len(g.edges) == 0 && !anyField(g.hasField) {
		warnings = append(warnings, emptyProblemWarning())
	}
	return warnings, nil
}

func anyField(hasField []bool) bool {
	for _, b := range hasField {
		if b {
			return true
		}
	}
	return false
}

// Edges returns the canonical, non-field edge list (arity >= 2, merged,
// non-zero weight). The returned slice aliases internal storage; callers
// must not mutate it.
func (g *Graph) Edges() []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return g.edges
}

// Adjacency returns, for spin i, the indices into Edges() of every edge
// containing i.
func (g *Graph) Adjacency(i int) []int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return g.adjacency[i]
}

// Field returns the folded single-vertex-edge weight for spin i, if any.
func (g *Graph) Field(i int) (weight float64, ok bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return g.fields[i], g.hasField[i]
}

// UserLabel de-remaps an internal spin index back to its original user label.
func (g *Graph) UserLabel(i int) int { return g.labels.toUser[i] }

// InternalIndex remaps a user label to its internal spin index.
func (g *Graph) InternalIndex(label int) (int, bool) {
	idx, ok := g.labels.toInternal[label]
	return idx, ok
}
