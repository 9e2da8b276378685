package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseText parses the text problem format of §6: a header line "# <N> <M>"
// (# may be attached to N) followed by non-blank, non-#-prefixed edge lines
// "v1 v2 ... vk w". It tracks the observed edge count independently of the
// declared header count, per original_source/siquan's read_in_txt.hpp
// two-phase parse, and reports a mismatch as a Warning rather than silently
// trusting the header.
func ParseText(r io.Reader) (n int, edges []RawEdge, warnings []Warning, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	declaredM := -1
	headerSeen := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !headerSeen {
			n, declaredM, err = parseHeader(line)
			if err != nil {
				return 0, nil, nil, err
			}
			headerSeen = true
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		edge, perr := parseEdgeLine(line)
		if perr != nil {
			return 0, nil, nil, perr
		}
		edges = append(edges, edge)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, nil, err
	}
	if !headerSeen {
		return 0, nil, nil, ErrHeaderMalformed
	}
	if declaredM >= 0 && declaredM != len(edges) {
		warnings = append(warnings, mismatchedEdgeCountWarning(declaredM, len(edges)))
	}
	return n, edges, warnings, nil
}

// parseHeader accepts "# 4 6", "#4 6" and "# 4  6" forms.
func parseHeader(line string) (n, m int, err error) {
	trimmed := strings.TrimPrefix(line, "#")
	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrHeaderMalformed, line)
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrHeaderMalformed, line)
	}
	m, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrHeaderMalformed, line)
	}
	return n, m, nil
}

// parseEdgeLine accepts "v1 v2 ... vk w": k >= 1 integer labels then a real
// weight. Fewer than two tokens (no labels, or a label with no weight) is
// ErrEdgeMalformed.
func parseEdgeLine(line string) (RawEdge, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return RawEdge{}, fmt.Errorf("%w: %q", ErrEdgeMalformed, line)
	}
	weight, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return RawEdge{}, fmt.Errorf("%w: %q", ErrEdgeMalformed, line)
	}
	labels := make([]int, len(fields)-1)
	for i, tok := range fields[:len(fields)-1] {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return RawEdge{}, fmt.Errorf("%w: %q", ErrEdgeMalformed, line)
		}
		labels[i] = v
	}
	return RawEdge{Weight: weight, Labels: labels}, nil
}
