// Package energy computes per-slice energies and histograms over a
// finished Trotter state, and extracts the canonical best classical
// configuration from them.
//
// It reads the problem graph's original, unnormalized weights and fields
// directly — not the kernel's rescaled copies — because the histograms and
// the extracted spin configuration are meant to be interpreted in the
// problem's own units, the same way analyze_energy and best_trotter read
// the connect list rather than the kernel's internal working copy.
package energy
