package schedule

// Scheduler maps a step counter in [0, steps) to a real value via a
// piecewise curve defined by anchors interleaved with segment methods.
// len(Methods) == len(Anchors)-1.
type Scheduler struct {
	Anchors []float64
	Methods []Method
}

// New builds a Scheduler directly from anchors and per-segment methods,
// bypassing the string grammar. len(anchors) must be >= 2 and
// len(methods) must equal len(anchors)-1.
func New(anchors []float64, methods []Method) (*Scheduler, error) {
	if len(anchors) < 2 || len(methods) != len(anchors)-1 {
		return nil, ErrScheduleMalformed
	}
	return &Scheduler{Anchors: anchors, Methods: methods}, nil
}

// ValueAt returns the scheduled value at step c for a run of steps total
// steps. Per the "Schedule endpoints" law, ValueAt(0, steps) and
// ValueAt(steps-1, steps) equal the first and last anchors exactly.
//
// The segment a step falls into is found the way
// scheduler/piecewise_multi.hpp does it: continuously, as
// floor(numSegments*c/last), rather than via a precomputed table of
// evenly-spaced integer boundaries. The two disagree whenever
// (steps-1) doesn't divide evenly by numSegments, and the continuous form
// is the one the original actually evaluates against.
func (s *Scheduler) ValueAt(c, steps int) float64 {
	if steps <= 1 {
		return s.Anchors[0]
	}
	numSegments := len(s.Anchors) - 1
	last := steps - 1

	seg := numSegments * c / last
	if seg >= numSegments {
		return s.Anchors[numSegments]
	}

	pieceLen := float64(last) / float64(numSegments)
	p := (float64(c) - float64(seg)*pieceLen) / pieceLen
	if p < 0 {
		p = 0
	}

	a, b := s.Anchors[seg], s.Anchors[seg+1]
	return eval(s.Methods[seg], a, b, p)
}
