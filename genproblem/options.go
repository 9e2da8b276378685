package genproblem

import "math/rand"

// config accumulates the generator's parameters. Populated exclusively by
// Option values; never read from globals or the environment.
type config struct {
	rng *rand.Rand

	numEdges int
	arityMin int
	arityMax int
	weightFn func(*rand.Rand) float64
}

func newConfig(n int) *config {
	return &config{
		rng:      rand.New(rand.NewSource(0)),
		numEdges: n,
		arityMin: 2,
		arityMax: 2,
		weightFn: func(r *rand.Rand) float64 { return r.Float64()*2 - 1 },
	}
}

// Option customizes a generator run by mutating a config before
// generation begins.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed, for a
// reproducible generation run.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("genproblem: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithEdgeCount sets the number of edges to generate. Panics if m < 0.
func WithEdgeCount(m int) Option {
	if m < 0 {
		panic("genproblem: WithEdgeCount(m<0)")
	}
	return func(c *config) { c.numEdges = m }
}

// WithArityRange sets the inclusive range of edge arities drawn uniformly
// per edge. Panics if min < 1 or max < min.
func WithArityRange(min, max int) Option {
	if min < 1 || max < min {
		panic("genproblem: WithArityRange invalid bounds")
	}
	return func(c *config) { c.arityMin, c.arityMax = min, max }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("genproblem: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithFields lowers arityMin to 1, so generated edges may include
// single-vertex fields alongside whatever arities WithArityRange already
// allows.
func WithFields() Option {
	return func(c *config) {
		if c.arityMin > 1 {
			c.arityMin = 1
		}
	}
}
