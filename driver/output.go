package driver

import (
	"strconv"
	"strings"
)

// ToMap flushes the finalized run to the string-keyed output contract of
// §6: an echo of every configuration key plus the result and timing
// entries. Only valid after Finish has returned nil.
func (d *Driver) ToMap() map[string]string {
	minEnergy := d.analysis.PerSlice[d.analysis.MinIndex]
	maxcut := (d.weightSum + minEnergy) / -2

	labels := make([]string, len(d.bestState))
	for i, l := range d.bestState {
		labels[i] = strconv.Itoa(l)
	}

	m := map[string]string{
		"seed":     strconv.FormatUint(d.cfg.Seed, 10),
		"steps":    strconv.Itoa(d.cfg.Steps),
		"nt":       strconv.Itoa(d.cfg.NT),
		"T":        d.cfg.T,
		"H":        d.cfg.H,
		"remap":    d.cfg.Remap,
		"periodic": boolFlag(d.cfg.Periodic),
		"first_in": boolFlag(d.cfg.FirstIn),

		"state":             strings.Join(labels, ","),
		"energy":            strconv.FormatFloat(minEnergy, 'g', -1, 64),
		"maxcut":            strconv.FormatFloat(maxcut, 'g', -1, 64),
		"energy_distr":      d.analysis.Histograms[d.analysis.MinIndex].Strings(),
		"trotter_min_index": strconv.Itoa(d.analysis.MinIndex),
		"trotter_degen":     strconv.Itoa(d.analysis.Degeneracy),
		"runtime_sec":       strconv.FormatFloat(d.elapsed.Seconds(), 'f', -1, 64),
		"runtime_cycles":    "0",
	}
	return m
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
