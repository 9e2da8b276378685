package driver

import (
	"time"

	"github.com/PlanQK/SimulatedQuantumAnnealing/energy"
	"github.com/PlanQK/SimulatedQuantumAnnealing/kernel"
	"github.com/PlanQK/SimulatedQuantumAnnealing/problem"
	"github.com/PlanQK/SimulatedQuantumAnnealing/schedule"
)

// runState is the state machine of §4.5/§4.8:
// Uninitialized → Ready → Running ↔ Stopped → Finalized.
type runState int

const (
	stateUninitialized runState = iota
	stateReady
	stateRunning
	stateFinalized
)

// Driver builds the problem graph, schedulers and kernel in dependency
// order and orchestrates a single annealing run.
//
// Not safe for concurrent use: a run is single-threaded per §5, and Driver
// alone advances the kernel.
type Driver struct {
	cfg    Config
	logger Logger

	graph  *problem.Graph
	tSched *schedule.Scheduler
	hSched *schedule.Scheduler
	kernel *kernel.Kernel

	weightSum float64

	state   runState
	counter int
	updated bool // whether update() has run at least once

	startedAt time.Time
	elapsed   time.Duration

	analysis  *energy.Analysis
	bestState []int
}

// New builds a Driver over n spins and rawEdges. It parses cfg's schedule
// and remap strings and returns ErrConfigMalformed (non-positive nt or
// negative steps), schedule.ErrScheduleMalformed, or the problem package's
// own fatal remap and ingestion errors on failure. Non-fatal warnings are
// routed to the logger (default: os.Stderr).
func New(n int, rawEdges []problem.RawEdge, cfg Config, opts ...Option) (*Driver, error) {
	if cfg.NT <= 0 || cfg.Steps < 0 {
		return nil, ErrConfigMalformed
	}

	d := &Driver{cfg: cfg, logger: newStderrLogger(), state: stateUninitialized}
	for _, opt := range opts {
		opt(d)
	}

	policy, err := problem.ParseRemapPolicy(cfg.Remap)
	if err != nil {
		return nil, err
	}

	g := problem.NewGraph(n, problem.WithRemapPolicy(policy))
	warnings, err := g.Ingest(rawEdges)
	if err != nil {
		return nil, err
	}
	d.logWarnings(warnings)

	warnings, err = g.Canonicalize()
	if err != nil {
		return nil, err
	}
	d.logWarnings(warnings)

	tSched, err := schedule.Parse(cfg.T)
	if err != nil {
		return nil, err
	}
	hSched, err := schedule.Parse(cfg.H)
	if err != nil {
		return nil, err
	}

	d.graph = g
	d.tSched = tSched
	d.hSched = hSched
	d.kernel = kernel.New(g, cfg.NT, cfg.Periodic, cfg.Seed)
	d.weightSum = sumEdgeWeights(g)
	return d, nil
}

func (d *Driver) logWarnings(warnings []problem.Warning) {
	for _, w := range warnings {
		d.logger.Warnf("%s", w.String())
	}
}

func sumEdgeWeights(g *problem.Graph) float64 {
	total := 0.0
	for _, e := range g.Edges() {
		total += e.Weight
	}
	return total
}

// Init moves Uninitialized→Ready: randomizes the kernel state and seeds
// its energy cache. Must run exactly once, before the first Update.
func (d *Driver) Init() {
	d.startedAt = time.Now()
	d.kernel.Init()
	d.state = stateReady
}

// Update evaluates the T/H schedules at the current step counter and
// pushes the resulting temperature and field strength into the kernel.
// The first call moves Ready→Running.
func (d *Driver) Update() error {
	T := d.tSched.ValueAt(d.counter, d.cfg.Steps)
	H := d.hSched.ValueAt(d.counter, d.cfg.Steps)
	if err := d.kernel.Update(T, H); err != nil {
		return err
	}
	if d.state == stateReady {
		d.state = stateRunning
	}
	d.updated = true
	return nil
}

// Step performs one cluster-update pass over every spin.
func (d *Driver) Step() error {
	return d.kernel.Step()
}

// Advance moves the step counter forward by n.
func (d *Driver) Advance(n int) {
	d.counter += n
}

// Stopped reports whether the run has consumed its full step budget.
func (d *Driver) Stopped() bool {
	return d.counter >= d.cfg.Steps
}

// Run executes the full init → update → (step; advance; update)* → finish
// loop described in §4.8, using the schedules and step budget from Config.
func (d *Driver) Run() error {
	d.Init()
	if err := d.Update(); err != nil {
		return err
	}
	for !d.Stopped() {
		if err := d.Step(); err != nil {
			return err
		}
		d.Advance(1)
		if err := d.Update(); err != nil {
			return err
		}
	}
	return d.Finish()
}

// Finish moves Running/Stopped→Finalized: computes the per-slice energy
// analysis and extracts the reported classical state. It is a
// BoundaryViolation to call Finish before Stopped() is true when
// cfg.Steps > 0, or before any Update ran at all.
func (d *Driver) Finish() error {
	if !d.updated {
		return ErrBoundaryViolation
	}
	if d.cfg.Steps > 0 && !d.Stopped() {
		return ErrBoundaryViolation
	}

	d.analysis = energy.Analyze(d.graph, d.kernel.State())
	d.bestState = energy.BestSlice(d.graph, d.kernel.State(), d.analysis.MinIndex, d.cfg.FirstIn)
	d.elapsed = time.Since(d.startedAt)
	d.state = stateFinalized
	return nil
}
