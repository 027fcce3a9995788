package association

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"wordlab/domain/core"
	"wordlab/domain/stats"
)

// CramersV scores the association strength between the two frequency
// distributions of an alignment table, with Bergsma's bias correction.
type CramersV struct{}

// NewCramersV creates a Cramér's V scorer.
func NewCramersV() CramersV {
	return CramersV{}
}

// Score runs a chi-square test of homogeneity on the table and derives the
// bias-corrected V. Degenerate tables are reported as errors, never as NaN or
// Inf: n <= 1 yields ErrInsufficientData, and a table whose corrected
// dimensions collapse yields ErrDegenerateTable.
func (CramersV) Score(table stats.FrequencyTable) (stats.AssociationResult, error) {
	rows := float64(table.Rows())
	cols := float64(table.Cols())
	n := table.Total()

	if n <= 1 {
		return stats.AssociationResult{}, core.NewInsufficientDataError(n)
	}

	chiSq, df := chiSquareHomogeneity(table)
	pValue := chiSquarePValue(chiSq, df)

	// Bergsma bias correction.
	correctedChiSq := math.Max(0, chiSq/n-(cols-1)*(rows-1)/(n-1))
	correctedCols := cols - (cols-1)*(cols-1)/(n-1)
	correctedRows := rows - (rows-1)*(rows-1)/(n-1)

	minDim := math.Min(correctedCols-1, correctedRows-1)
	if minDim <= 0 {
		return stats.AssociationResult{}, core.NewDegenerateTableError(table.Rows(), table.Cols())
	}

	return stats.AssociationResult{
		PValue:           pValue,
		Score:            math.Sqrt(correctedChiSq / minDim),
		ChiSquare:        chiSq,
		DegreesOfFreedom: df,
		SampleSize:       n,
	}, nil
}

// chiSquareHomogeneity computes the chi-square statistic over the Rx2 table,
// with expected frequencies from the row and column marginals. When df == 1
// the Yates continuity correction shifts each observed count 0.5 toward its
// expectation before squaring.
func chiSquareHomogeneity(table stats.FrequencyTable) (float64, int) {
	n := table.Total()
	totalA := 0.0
	totalB := 0.0
	for i := range table.Labels {
		totalA += table.CountsA[i]
		totalB += table.CountsB[i]
	}

	df := (table.Rows() - 1) * (table.Cols() - 1)
	yates := df == 1

	chiSq := 0.0
	for i := range table.Labels {
		rowTotal := table.CountsA[i] + table.CountsB[i]
		expectedA := rowTotal * totalA / n
		expectedB := rowTotal * totalB / n
		if expectedA > 0 {
			chiSq += cellTerm(table.CountsA[i], expectedA, yates)
		}
		if expectedB > 0 {
			chiSq += cellTerm(table.CountsB[i], expectedB, yates)
		}
	}

	return chiSq, df
}

// cellTerm returns one cell's contribution to the statistic. A cell already
// matching its expectation contributes nothing even under the correction.
func cellTerm(observed, expected float64, yates bool) float64 {
	d := observed - expected
	if yates {
		switch {
		case d > 0:
			d -= 0.5
		case d < 0:
			d += 0.5
		}
	}
	return d * d / expected
}

// chiSquarePValue computes the exact p-value from the chi-square distribution.
func chiSquarePValue(chiSq float64, df int) float64 {
	if df <= 0 {
		return 1.0
	}
	dist := distuv.ChiSquared{K: float64(df)}
	return 1 - dist.CDF(chiSq)
}
