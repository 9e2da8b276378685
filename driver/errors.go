package driver

import "errors"

// ErrBoundaryViolation indicates stop() returned true before any update()
// ran, or finish() was called before stop() returned true while steps > 0.
// Fatal; signals a caller contract violation rather than a data problem.
var ErrBoundaryViolation = errors.New("driver: boundary violation in run lifecycle")

// ErrConfigMalformed indicates a non-positive nt or a negative steps in
// Config. Fatal at New. Schedule and remap strings that fail to parse are
// reported with schedule.ErrScheduleMalformed and problem.ErrRemapMalformed.
var ErrConfigMalformed = errors.New("driver: configuration malformed")
