package schedule

import (
	"strconv"
	"strings"
)

// Parse parses a schedule string of the grammar in spec §6: a
// bracket-delimited, comma-separated sequence of anchors optionally
// interleaved with method tags, e.g. "[0.01,0.01]" (untagged, linear
// throughout) or "[10,iF,0.01]" (one segment tagged iF). Unspecified tags
// default to linear; fewer than two anchors or an unrecognized tag is
// ErrScheduleMalformed.
func Parse(s string) (*Scheduler, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")
	if body == "" {
		return nil, ErrScheduleMalformed
	}
	toks := strings.Split(body, ",")
	for i := range toks {
		toks[i] = strings.TrimSpace(toks[i])
	}

	first, err := strconv.ParseFloat(toks[0], 64)
	if err != nil {
		return nil, ErrScheduleMalformed
	}
	anchors := []float64{first}
	var methods []Method

	for i := 1; i < len(toks); {
		if v, err := strconv.ParseFloat(toks[i], 64); err == nil {
			methods = append(methods, MethodLinear)
			anchors = append(anchors, v)
			i++
			continue
		}
		m, ok := ParseMethod(toks[i])
		if !ok {
			return nil, ErrScheduleMalformed
		}
		if i+1 >= len(toks) {
			return nil, ErrScheduleMalformed
		}
		v, err := strconv.ParseFloat(toks[i+1], 64)
		if err != nil {
			return nil, ErrScheduleMalformed
		}
		methods = append(methods, m)
		anchors = append(anchors, v)
		i += 2
	}

	return New(anchors, methods)
}
