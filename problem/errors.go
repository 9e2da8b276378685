// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the problem package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is to branch.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("...: %w", err).
package problem

import "errors"

// ErrInconsistentLabels indicates a user label exceeds the representable
// range under a "fill" remap policy (label > N + fill_start - 1).
// Fatal at init.
var ErrInconsistentLabels = errors.New("problem: inconsistent labels under fill policy")

// ErrUnderDeclared indicates more distinct spin labels were observed than
// the declared N. Fatal at init.
var ErrUnderDeclared = errors.New("problem: more distinct spins observed than declared N")

// ErrEdgeMalformed indicates an edge line or tuple with fewer than two
// tokens (zero vertices, or a vertex list with no trailing weight). Fatal
// at ingest.
var ErrEdgeMalformed = errors.New("problem: edge has fewer than two tokens")

// ErrHeaderMalformed indicates the text-form header line could not be parsed.
var ErrHeaderMalformed = errors.New("problem: header line malformed")

// ErrRemapMalformed indicates the "remap" configuration string did not
// match the "{sorted|encounter},{fill,<start>|no_fill}" grammar.
var ErrRemapMalformed = errors.New("problem: remap policy string malformed")
