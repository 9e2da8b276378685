// Package genproblem generates random hyperedge Ising problems for tests
// and benchmarks, the same way the teacher repository's builder package
// generates random graphs: a functional-options config plus one entry
// point per topology, all driven by a single explicit RNG for
// reproducibility.
package genproblem
