package kernel

import (
	"math"

	"github.com/PlanQK/SimulatedQuantumAnnealing/internal/fastmath"
	"github.com/PlanQK/SimulatedQuantumAnnealing/internal/randgen"
	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
	"github.com/PlanQK/SimulatedQuantumAnnealing/trotter"
)

// Kernel is the per-step cluster update over all spins: incremental local
// energy cache, RNG-driven bond forming, and Metropolis acceptance.
//
// All mutable state (lines, cache, RNG engines) is owned exclusively by the
// Kernel for the duration of a run, per spec §5; nothing here is safe to
// call concurrently with itself.
type Kernel struct {
	graph    *problem.Graph
	n, nt    int
	periodic bool

	state  *trotter.State
	energy [][]float64 // E[i][t], N x NT

	nz        *normalizer
	engines   *randgen.Engines
	bondBreak *randgen.Bitstream
	expApprox *fastmath.Approx

	tau float64

	initialized bool

	// Scratch buffers sized once at Init and reused every Step call.
	bBuf, rBuf, combinedBuf, uBuf *trotter.Line

	// breakpointsBuf backs AppendPositions: its capacity grows to nt at
	// most once and is reused for every spin thereafter, so stepSpin
	// performs zero heap allocation per spec §5.
	breakpointsBuf []int
}

// New builds a Kernel over the given canonical problem graph. nt is the
// number of Trotter slices; periodic selects the boundary condition; seed
// is the RNG discipline's master seed.
func New(g *problem.Graph, nt int, periodic bool, seed uint64) *Kernel {
	if nt <= 0 {
		panic("kernel: New requires nt > 0")
	}
	n := g.N()
	return &Kernel{
		graph:     g,
		n:         n,
		nt:        nt,
		periodic:  periodic,
		nz:        newNormalizer(n, len(g.Edges())),
		engines:   randgen.NewEngines(seed),
		bondBreak: randgen.NewBitstream(0),
		expApprox: fastmath.New(0),
	}
}

// Init randomizes the Trotter state and seeds the local-energy cache. It
// must be called exactly once before the first Step or Update.
func (k *Kernel) Init() {
	k.state = trotter.NewState(k.n, k.nt)
	k.state.Randomize(k.engines.Site)

	k.energy = make([][]float64, k.n)
	for i := range k.energy {
		k.energy[i] = make([]float64, k.nt)
	}

	k.bBuf = trotter.NewLine(k.nt)
	k.rBuf = trotter.NewLine(k.nt)
	k.combinedBuf = trotter.NewLine(k.nt)
	k.uBuf = trotter.NewLine(k.nt)
	k.breakpointsBuf = make([]int, 0, k.nt)

	k.runNormalization()
	k.seedEnergyCache()
	k.initialized = true
}

// Update recomputes the weight normalization and derives tau, the
// Metropolis coefficient, and the bond-break probability from the current
// T and Gamma. It does not touch the energy cache — the cache is
// maintained incrementally by Step alone.
func (k *Kernel) Update(T, Gamma float64) error {
	if !k.initialized {
		return ErrNotInitialized
	}
	k.runNormalization()

	k.tau = 1 / (T * float64(k.nt))
	k.expApprox.SetCoefficient(2 * k.tau)

	pBreak := math.Tanh(k.tau * math.Abs(Gamma))
	k.bondBreak.SetProbability(pBreak)
	return nil
}

func (k *Kernel) runNormalization() {
	edges := k.graph.Edges()
	k.nz.update(
		func(idx int) float64 { return edges[idx].Weight },
		func(idx int) []int { return edges[idx].Verts },
		len(edges),
		k.graph.Field,
	)
}

// WStar returns the normalization constant used for the current weights.
func (k *Kernel) WStar() float64 { return k.nz.wstar }

// State exposes the Trotter state for readers (e.g. the energy analyzer)
// after finish().
func (k *Kernel) State() *trotter.State { return k.state }

// Step performs one cluster-update pass over all N spins, in ascending
// index order, per spec §4.5 and the ordering contract of §5.
func (k *Kernel) Step() error {
	if !k.initialized {
		return ErrNotInitialized
	}
	for i := 0; i < k.n; i++ {
		k.stepSpin(i)
	}
	return nil
}

func (k *Kernel) stepSpin(i int) {
	k.bBuf.Fill(func() uint64 { return k.bondBreak.Draw(k.engines.Word) })
	k.state.Line(i).RelativeOrientationInto(k.rBuf, k.periodic)
	k.combinedBuf.CopyFrom(k.bBuf)
	k.combinedBuf.OrAssign(k.rBuf)
	k.uBuf.Reset()

	k.breakpointsBuf = k.combinedBuf.AppendPositions(k.breakpointsBuf)
	k.decideClusters(i, k.breakpointsBuf)
	k.commitFlip(i)
}

// decideClusters walks the clusters carved out by breakpoints in ascending
// start order (the wrap-around cluster, if any, is always last because its
// start is the largest breakpoint) and sets the accepted cluster's bits in
// uBuf.
func (k *Kernel) decideClusters(i int, breakpoints []int) {
	E := k.energy[i]
	if len(breakpoints) <= 1 {
		delta := sumAll(E)
		if k.acceptFlip(delta) {
			k.uBuf.SetAll()
		}
		return
	}
	m := len(breakpoints)
	for idx := 0; idx < m; idx++ {
		start := breakpoints[idx]
		var end int
		if idx+1 < m {
			end = breakpoints[idx+1]
		} else {
			end = breakpoints[0]
		}
		delta := sumRange(E, start, end, k.nt)
		if k.acceptFlip(delta) {
			setRange(k.uBuf, start, end, k.nt)
		}
	}
}

// acceptFlip accepts a cluster flip with probability min(1, exp(2*tau*delta)).
// delta is the pre-flip sum of E[i][t] over the cluster; flipping negates
// the cluster's own cached contribution, so a positive delta (currently
// unfavorable) is accepted with certainty and a negative delta (currently
// favorable) is resisted, matching the original's fexp with coefficient
// 2*tau applied directly to the pre-flip energy difference.
func (k *Kernel) acceptFlip(delta float64) bool {
	p := k.expApprox.Eval(delta)
	if p >= 1 {
		return true
	}
	return k.engines.Uniform.Float64() < p
}

// commitFlip applies the pending update mask uBuf to spin i: updates every
// neighbor's energy cache entries for the flipped slices, flips the spin's
// own line, then negates its own cache entries for those slices.
func (k *Kernel) commitFlip(i int) {
	edges := k.graph.Edges()
	for _, idx := range k.graph.Adjacency(i) {
		verts := edges[idx].Verts
		w := k.nz.edgeWeights[idx]
		for t := range k.uBuf.BreakPoints() {
			sign := -1.0
			if parity(k.state, verts, t) {
				sign = 1.0
			}
			for _, v := range verts {
				if v == i {
					continue
				}
				k.energy[v][t] -= sign * 2 * w
			}
		}
	}

	k.state.Line(i).XorAssign(k.uBuf)
	for t := range k.uBuf.BreakPoints() {
		k.energy[i][t] = -k.energy[i][t]
	}
}

// parity reports whether the product of spin signs across verts at slice t
// is -1 (odd number of "down" bits).
func parity(state *trotter.State, verts []int, t int) bool {
	down := false
	for _, v := range verts {
		if state.Line(v).Get(t) {
			down = !down
		}
	}
	return down
}

func sumAll(E []float64) float64 {
	total := 0.0
	for _, e := range E {
		total += e
	}
	return total
}

func sumRange(E []float64, start, end, nt int) float64 {
	if end > start {
		total := 0.0
		for t := start; t < end; t++ {
			total += E[t]
		}
		return total
	}
	total := 0.0
	for t := start; t < nt; t++ {
		total += E[t]
	}
	for t := 0; t < end; t++ {
		total += E[t]
	}
	return total
}

func setRange(l *trotter.Line, start, end, nt int) {
	if end > start {
		for t := start; t < end; t++ {
			l.Set(t, true)
		}
		return
	}
	for t := start; t < nt; t++ {
		l.Set(t, true)
	}
	for t := 0; t < end; t++ {
		l.Set(t, true)
	}
}
