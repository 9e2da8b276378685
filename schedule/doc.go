// Package schedule maps an annealing step index to T(t) and Γ(t) via
// piecewise curves (spec component C4): a sequence of anchor values
// interleaved with segment method tags (l, iS, iF, sS, sF).
//
// Grounded on original_source/siquan, scheduler/piecewise_multi.hpp,
// scheduler/piecewise_linear.hpp, scheduler/inverse.hpp and
// scheduler/stepped.hpp, which compose a chain of per-segment "sim_step"
// objects behind a common interface; per the redesign flag in spec §9
// ("Deep polymorphic composition"), this package replaces that composition
// chain with a tagged sum type (Method) dispatched by a plain switch, and a
// single Scheduler value holding a flat slice of segments.
package schedule
