package kernel

// seedEnergyCache populates E[i][t] from scratch for every (i, t), using
// the normalized field and edge weights. Run once, at Init; afterward the
// cache is maintained incrementally by commitFlip.
func (k *Kernel) seedEnergyCache() {
	edges := k.graph.Edges()
	for i := 0; i < k.n; i++ {
		line := k.state.Line(i)
		hasField := k.nz.hasField[i]
		field := k.nz.fields[i]
		adjacency := k.graph.Adjacency(i)
		for t := 0; t < k.nt; t++ {
			total := 0.0
			if hasField {
				if line.Get(t) {
					total += field
				} else {
					total -= field
				}
			}
			for _, idx := range adjacency {
				verts := edges[idx].Verts
				w := k.nz.edgeWeights[idx]
				if parity(k.state, verts, t) {
					total += w
				} else {
					total -= w
				}
			}
			k.energy[i][t] = total
		}
	}
}

// RecomputeEnergyFull recomputes E[i][t] from the current state and
// normalized weights from scratch, independent of any incremental state.
// Used by tests to check invariant 1 of spec §8 ("E[i][t] equals a full
// recomputation from the current state").
func (k *Kernel) RecomputeEnergyFull() [][]float64 {
	saved := k.energy
	k.energy = make([][]float64, k.n)
	for i := range k.energy {
		k.energy[i] = make([]float64, k.nt)
	}
	k.seedEnergyCache()
	fresh := k.energy
	k.energy = saved
	return fresh
}

// Energy returns E[i][t]. The returned slice aliases internal storage.
func (k *Kernel) Energy(i int) []float64 { return k.energy[i] }
