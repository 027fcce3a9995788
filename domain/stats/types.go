package stats

import (
	"gonum.org/v1/gonum/floats"
)

// FrequencyTable aligns the category frequencies of two independently drawn
// samples on the union of their distinct labels. It compares the marginal
// frequency shapes of the two samples; it is NOT a paired contingency table of
// two variables observed on the same rows.
type FrequencyTable struct {
	NameA   string    `json:"name_a"`
	NameB   string    `json:"name_b"`
	Labels  []string  `json:"labels"`
	CountsA []float64 `json:"counts_a"`
	CountsB []float64 `json:"counts_b"`
}

// Rows returns the number of distinct labels.
func (t FrequencyTable) Rows() int { return len(t.Labels) }

// Cols returns the number of sample columns, always 2.
func (t FrequencyTable) Cols() int { return 2 }

// Total returns the grand total of all cells.
func (t FrequencyTable) Total() float64 {
	return floats.Sum(t.CountsA) + floats.Sum(t.CountsB)
}

// HasZeroCell reports whether any cell of the table is zero.
func (t FrequencyTable) HasZeroCell() bool {
	for i := range t.Labels {
		if t.CountsA[i] == 0 || t.CountsB[i] == 0 {
			return true
		}
	}
	return false
}

// Contingency views the alignment table as an Rx2 count table with one column
// per sample. This is the form the normalization step consumes on the way to
// the uncertainty scorer.
func (t FrequencyTable) Contingency() ContingencyTable {
	counts := make([][]float64, len(t.Labels))
	for i := range t.Labels {
		counts[i] = []float64{t.CountsA[i], t.CountsB[i]}
	}
	return ContingencyTable{
		RowLabels: append([]string(nil), t.Labels...),
		ColLabels: []string{t.NameA, t.NameB},
		Counts:    counts,
	}
}

// ContingencyTable is a paired joint count table of two equal-length label
// samples observed on the same rows. It backs the Pearson residual table.
type ContingencyTable struct {
	RowLabels []string    `json:"row_labels"`
	ColLabels []string    `json:"col_labels"`
	Counts    [][]float64 `json:"counts"`
}

// JointTable is a 2-D probability table summing to 1, rows indexed by the
// categories of X and columns by the categories of Y.
type JointTable struct {
	RowLabels []string    `json:"row_labels"`
	ColLabels []string    `json:"col_labels"`
	P         [][]float64 `json:"p"`
}

// RowMarginals returns the per-row sums of the joint table.
func (t JointTable) RowMarginals() []float64 {
	px := make([]float64, len(t.P))
	for i, row := range t.P {
		px[i] = floats.Sum(row)
	}
	return px
}

// ColMarginals returns the per-column sums of the joint table.
func (t JointTable) ColMarginals() []float64 {
	if len(t.P) == 0 {
		return nil
	}
	py := make([]float64, len(t.P[0]))
	for _, row := range t.P {
		floats.Add(py, row)
	}
	return py
}

// AssociationResult holds a bounded association strength and its significance.
// Score is bias-corrected Cramér's V, in [0,1] for well-conditioned tables.
type AssociationResult struct {
	PValue           float64 `json:"p_value"`
	Score            float64 `json:"score"`
	ChiSquare        float64 `json:"chi_square"`
	DegreesOfFreedom int     `json:"degrees_freedom"`
	SampleSize       float64 `json:"sample_size"`
}
