package schedule

import "errors"

// ErrScheduleMalformed indicates a schedule string could not be parsed, used
// an unknown method tag, or supplied fewer than two anchors. Fatal at init.
var ErrScheduleMalformed = errors.New("schedule: malformed schedule string")
