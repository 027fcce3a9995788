package association

import (
	"wordlab/domain/dataset"
	"wordlab/domain/stats"
	"wordlab/internal/config"
)

// Crosstab builds frequency alignment tables from categorical samples.
type Crosstab struct {
	// ZeroCellCorrection is the Haldane-Anscombe additive constant applied
	// when correction is requested and the table contains a zero cell.
	ZeroCellCorrection float64
}

// NewCrosstab creates a crosstab builder with the stock correction constant.
func NewCrosstab() Crosstab {
	return Crosstab{ZeroCellCorrection: config.DefaultZeroCellCorrection}
}

// Build counts each sample's distinct values and aligns both frequency series
// on the union of their labels, filling absent label/sample combinations with
// zero. The two samples are independently drawn; the table compares their
// marginal frequency shapes, not a paired joint distribution.
//
// With withCorrection set, every cell is incremented by the correction
// constant iff at least one cell is zero. A table without zero cells is
// returned unmodified even when correction is requested.
func (c Crosstab) Build(a, b dataset.Column, withCorrection bool) stats.FrequencyTable {
	countsA := countValues(a.Labels)
	countsB := countValues(b.Labels)

	// Union of labels in first-encounter order: a's labels, then b's unseen
	// ones. Deterministic for a given input.
	labels := make([]string, 0, len(countsA)+len(countsB))
	seen := make(map[string]struct{}, len(countsA)+len(countsB))
	for _, v := range a.Labels {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			labels = append(labels, v)
		}
	}
	for _, v := range b.Labels {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			labels = append(labels, v)
		}
	}

	table := stats.FrequencyTable{
		NameA:   a.Name,
		NameB:   b.Name,
		Labels:  labels,
		CountsA: make([]float64, len(labels)),
		CountsB: make([]float64, len(labels)),
	}
	for i, label := range labels {
		table.CountsA[i] = float64(countsA[label])
		table.CountsB[i] = float64(countsB[label])
	}

	if withCorrection && table.HasZeroCell() {
		for i := range table.Labels {
			table.CountsA[i] += c.ZeroCellCorrection
			table.CountsB[i] += c.ZeroCellCorrection
		}
	}
	return table
}

func countValues(labels []string) map[string]int {
	counts := make(map[string]int, len(labels))
	for _, v := range labels {
		counts[v]++
	}
	return counts
}
