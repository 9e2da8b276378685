package trotter

import "math/rand"

// State holds one Line per spin: N lines of NT bits each, the full
// classical-configuration population across all Trotter replicas.
type State struct {
	nt    int
	lines []*Line
}

// NewState allocates N lines of nt bits, all initially zero (all spins up).
func NewState(n, nt int) *State {
	if n <= 0 {
		panic("trotter: NewState requires n > 0")
	}
	s := &State{nt: nt, lines: make([]*Line, n)}
	for i := range s.lines {
		s.lines[i] = NewLine(nt)
	}
	return s
}

// N reports the number of spins.
func (s *State) N() int { return len(s.lines) }

// NT reports the number of Trotter slices per spin.
func (s *State) NT() int { return s.nt }

// Line returns the packed line for spin i. The returned pointer aliases the
// State's internal storage; callers mutate it directly, matching the
// kernel's zero-allocation hot loop.
func (s *State) Line(i int) *Line { return s.lines[i] }

// Randomize fills every line with independent random bits drawn from
// engine, line by line in ascending spin order, each line consuming one
// engine draw per 64-bit word it holds.
func (s *State) Randomize(engine *rand.Rand) {
	for _, l := range s.lines {
		l.Randomize(engine)
	}
}

// Spin returns the classical spin sign at (i, t): +1 for bit 0, -1 for bit 1.
func (s *State) Spin(i, t int) int {
	if s.lines[i].Get(t) {
		return -1
	}
	return 1
}
