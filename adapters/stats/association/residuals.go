package association

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"wordlab/domain/core"
	"wordlab/domain/dataset"
	"wordlab/domain/stats"
)

// NormalizeAxis selects which marginal a frequency table is normalized over.
type NormalizeAxis int

const (
	// NormalizeTotal divides every cell by the grand total.
	NormalizeTotal NormalizeAxis = iota
	// NormalizeRows divides each row by its row sum.
	NormalizeRows
	// NormalizeCols divides each column by its column sum.
	NormalizeCols
)

// PairedCrosstab builds a joint count table of two equal-length categorical
// samples observed on the same rows. This is the classic bivariate
// contingency table, distinct from Crosstab.Build's marginal alignment.
func PairedCrosstab(a, b dataset.Column) (stats.ContingencyTable, error) {
	if len(a.Labels) != len(b.Labels) {
		return stats.ContingencyTable{}, core.NewSampleMismatchError(len(a.Labels), len(b.Labels))
	}

	rowIndex := make(map[string]int)
	colIndex := make(map[string]int)
	var rowLabels, colLabels []string
	for _, v := range a.Labels {
		if _, ok := rowIndex[v]; !ok {
			rowIndex[v] = len(rowLabels)
			rowLabels = append(rowLabels, v)
		}
	}
	for _, v := range b.Labels {
		if _, ok := colIndex[v]; !ok {
			colIndex[v] = len(colLabels)
			colLabels = append(colLabels, v)
		}
	}

	counts := make([][]float64, len(rowLabels))
	for i := range counts {
		counts[i] = make([]float64, len(colLabels))
	}
	for k := range a.Labels {
		counts[rowIndex[a.Labels[k]]][colIndex[b.Labels[k]]]++
	}

	return stats.ContingencyTable{RowLabels: rowLabels, ColLabels: colLabels, Counts: counts}, nil
}

// NormalizeFrequency converts a count table into proportions over the chosen
// axis. Normalizing over the grand total yields the JointTable consumed by
// the uncertainty scorer.
func NormalizeFrequency(table stats.ContingencyTable, axis NormalizeAxis) stats.JointTable {
	p := make([][]float64, len(table.Counts))
	for i, row := range table.Counts {
		p[i] = make([]float64, len(row))
		copy(p[i], row)
	}

	switch axis {
	case NormalizeRows:
		for i := range p {
			if sum := floats.Sum(p[i]); sum > 0 {
				floats.Scale(1/sum, p[i])
			}
		}
	case NormalizeCols:
		if len(p) > 0 {
			colSums := make([]float64, len(p[0]))
			for _, row := range p {
				floats.Add(colSums, row)
			}
			for i := range p {
				for j := range p[i] {
					if colSums[j] > 0 {
						p[i][j] /= colSums[j]
					}
				}
			}
		}
	default:
		grand := 0.0
		for _, row := range p {
			grand += floats.Sum(row)
		}
		if grand > 0 {
			for i := range p {
				floats.Scale(1/grand, p[i])
			}
		}
	}

	return stats.JointTable{RowLabels: table.RowLabels, ColLabels: table.ColLabels, P: p}
}

// PearsonResiduals computes the (observed - expected) / sqrt(expected) table
// over the total-normalized crosstab of two paired samples, with expected
// proportions taken as the outer product of the marginals. Large positive
// residuals mark cell combinations over-represented relative to independence.
func PearsonResiduals(a, b dataset.Column) (stats.JointTable, error) {
	table, err := PairedCrosstab(a, b)
	if err != nil {
		return stats.JointTable{}, err
	}
	observed := NormalizeFrequency(table, NormalizeTotal)

	px := observed.RowMarginals()
	py := observed.ColMarginals()

	expected := mat.NewDense(len(px), len(py), nil)
	expected.Outer(1, mat.NewVecDense(len(px), px), mat.NewVecDense(len(py), py))

	residuals := make([][]float64, len(px))
	for i := range residuals {
		residuals[i] = make([]float64, len(py))
		for j := range residuals[i] {
			e := expected.At(i, j)
			if e == 0 {
				continue
			}
			residuals[i][j] = (observed.P[i][j] - e) / math.Sqrt(e)
		}
	}

	return stats.JointTable{RowLabels: table.RowLabels, ColLabels: table.ColLabels, P: residuals}, nil
}
