package problem

import "fmt"

// RawEdge is a user-supplied interaction before label remap and
// canonicalization: a weight and an ordered sequence of user-facing spin
// labels. Arity is len(Labels); arity 1 is a local field.
type RawEdge struct {
	Weight float64
	Labels []int
}

// Edge is a canonical interaction after remap and canonicalization: weight
// plus an ascending, duplicate-free sequence of internal spin indices in
// [0, N).
type Edge struct {
	Weight float64
	Verts  []int
}

// Arity returns the number of spins this edge touches.
func (e Edge) Arity() int { return len(e.Verts) }

// WarningKind classifies a non-fatal condition surfaced during ingestion.
type WarningKind int

const (
	// WarnMismatchedEdgeCount: header M disagreed with the observed edge count.
	WarnMismatchedEdgeCount WarningKind = iota
	// WarnEmptyProblem: no edges survived canonicalization.
	WarnEmptyProblem
	// WarnUnderfilled: fewer distinct labels than N under a no_fill policy.
	WarnUnderfilled
)

// Warning is a structured, typed non-fatal ingestion event. Kept as a value
// type (not just a logged string) so callers and tests can assert on Kind
// directly, per original_source/siquan's read_in_txt.hpp two-phase parse
// that tracks an observed-edge counter independent of the declared header.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return w.Message }

func mismatchedEdgeCountWarning(declared, observed int) Warning {
	return Warning{
		Kind:    WarnMismatchedEdgeCount,
		Message: fmt.Sprintf("header declared %d edges, observed %d", declared, observed),
	}
}

func emptyProblemWarning() Warning {
	return Warning{Kind: WarnEmptyProblem, Message: "no edges remain after canonicalization"}
}

func underfilledWarning(distinct, n int) Warning {
	return Warning{
		Kind:    WarnUnderfilled,
		Message: fmt.Sprintf("%d distinct labels observed, fewer than declared N=%d", distinct, n),
	}
}
