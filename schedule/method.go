package schedule

// Method is a tagged sum type for the five piecewise segment shapes of
// spec §4.4. Dispatched by a plain switch in eval, replacing the reference
// implementation's chain of polymorphic sim_step objects (spec §9).
type Method int

const (
	// MethodLinear: a + (b-a)*p.
	MethodLinear Method = iota
	// MethodInverseSlow: inverse curve, slow branch.
	MethodInverseSlow
	// MethodInverseFast: inverse curve, fast branch (mirror of InverseSlow).
	MethodInverseFast
	// MethodSquareSlow: a + (b-a)*p^2.
	MethodSquareSlow
	// MethodSquareFast: b + (a-b)*(p-1)^2.
	MethodSquareFast
)

// ParseMethod maps a grammar tag ("l", "iS", "iF", "sS", "sF") to a Method.
// Unspecified/unrecognized tags are the caller's job to reject; this
// function only recognizes the five defined tags.
func ParseMethod(tag string) (Method, bool) {
	switch tag {
	case "l":
		return MethodLinear, true
	case "iS":
		return MethodInverseSlow, true
	case "iF":
		return MethodInverseFast, true
	case "sS":
		return MethodSquareSlow, true
	case "sF":
		return MethodSquareFast, true
	default:
		return 0, false
	}
}

// eval applies the segment formula for a step between anchors a (at
// progress 0) and b (at progress 1), with p clamped to [0,1].
func eval(m Method, a, b, p float64) float64 {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	switch m {
	case MethodInverseSlow:
		return inverse(a, b, p, true)
	case MethodInverseFast:
		return inverse(a, b, p, false)
	case MethodSquareSlow:
		return a + (b-a)*p*p
	case MethodSquareFast:
		q := p - 1
		return b + (a-b)*q*q
	default: // MethodLinear
		return a + (b-a)*p
	}
}

// inverse implements the iS/iF formula pair of spec §4.4. slow selects the
// iS branch predicate (a<b); iF is its mirror, i.e. the opposite predicate
// selects which half of the formula runs.
func inverse(a, b, p float64, slow bool) float64 {
	useFirstBranch := a < b
	if !slow {
		useFirstBranch = !useFirstBranch
	}
	if useFirstBranch {
		return (a * b) / (b + (a-b)*p)
	}
	return a + b - (a*b)/(a-(a-b)*p)
}
