// Package ezd - candidate deduplication and canonical ordering.
//
// Adjacent cells sharing a well emit near-identical candidates; without
// merging, the output would be swamped by duplicates of every wide well.
// Merging keeps the lower-energy representative of each cluster.
package ezd

import (
	"math"
	"sort"
)

// sortCandidates imposes the canonical output order: energy ascending,
// ties broken by lexicographic point order. Stable and deterministic.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Energy != cands[j].Energy {
			return cands[i].Energy < cands[j].Energy
		}

		return cands[i].Point.Less(cands[j].Point)
	})
}

// mergeCandidates collapses candidates whose points are closer than
// MergeTol and whose energies agree within the combined tolerance, keeping
// the lower-energy representative. Candidates are first sorted energy
// ascending, so the kept entry of every cluster is its minimum.
//
// Complexity: O(m²) over m candidates; m is small (one per surviving leaf).
func mergeCandidates(cands []Candidate, opts Options) []Candidate {
	sortCandidates(cands)
	kept := make([]Candidate, 0, len(cands))
	var (
		dup bool
		d   float64
		err error
	)
	for _, c := range cands {
		dup = false
		for i := range kept {
			d, err = c.Point.Dist(kept[i].Point)
			if err != nil {
				continue
			}
			if d <= opts.MergeTol && math.Abs(c.Energy-kept[i].Energy) <= opts.tol(kept[i].Energy) {
				dup = true
				// The kept representative is lower-energy (sorted order);
				// adopt the finer width as the cluster's resolution tag.
				if c.Width < kept[i].Width {
					kept[i].Width = c.Width
				}
				break
			}
		}
		if !dup {
			kept = append(kept, c)
		}
	}

	return kept
}
