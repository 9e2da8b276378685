package problem

import (
	"sort"
	"strconv"
	"strings"
)

func sortInts(xs []int) { sort.Ints(xs) }

// dedupSorted removes adjacent duplicates from a sorted slice in place,
// matching §3's "ordered sequence... sorted ascending and duplicate-free
// within an edge."
func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, v := range xs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// vertsKey produces a map key for an edge's vertex list, used to detect
// duplicate edges (same Verts) for weight-summation merge.
func vertsKey(verts []int) string {
	var sb strings.Builder
	for i, v := range verts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// mergeDuplicateEdges collapses edges with identical (sorted) Verts by
// summing their weights, preserving first-occurrence order.
func mergeDuplicateEdges(edges []Edge) []Edge {
	index := make(map[string]int, len(edges))
	var out []Edge
	for _, e := range edges {
		k := vertsKey(e.Verts)
		if i, ok := index[k]; ok {
			out[i].Weight += e.Weight
			continue
		}
		index[k] = len(out)
		out = append(out, e)
	}
	return out
}

// dropZeroWeight removes edges whose merged weight is exactly zero.
func dropZeroWeight(edges []Edge) []Edge {
	out := edges[:0]
	for _, e := range edges {
		if e.Weight != 0 {
			out = append(out, e)
		}
	}
	return out
}
