package kernel

import "errors"

// ErrNotInitialized indicates Step or Update was called before Init.
// Any attempt to step() before init() is a fatal contract violation per
// spec §4.5.
var ErrNotInitialized = errors.New("kernel: Step/Update called before Init")
