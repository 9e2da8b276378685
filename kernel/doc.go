// Package kernel implements the SQA update kernel (spec component C5) and
// the weight normalizer it depends on (component C2): the per-step cluster
// update over all spins, the incremental per-site local-energy cache, and
// the bond-forming / Metropolis-acceptance RNG usage.
//
// Grounded on original_source/siquan, algo/simulated_quantum_anealing.hpp
// (cluster formation, commit, init) and connect/normalize_weight.hpp
// (weight rescale). The reference composes these as two stacked mixin
// layers; this package keeps them as two cooperating Go types
// (normalizer, Kernel) owned directly by the Kernel value, per the
// "Deep polymorphic composition" redesign flag in spec §9.
package kernel
