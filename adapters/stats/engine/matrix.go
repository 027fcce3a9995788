package engine

import (
	"context"
	"log"

	montanastats "github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"wordlab/domain/core"
	"wordlab/domain/dataset"
	"wordlab/domain/stats"
)

// MatrixCell is the association result for one unordered column pair. Err is
// set when the pair could not be scored; the rest of the matrix is unaffected.
type MatrixCell struct {
	ColumnX string                  `json:"column_x"`
	ColumnY string                  `json:"column_y"`
	Result  stats.AssociationResult `json:"result"`
	Err     error                   `json:"-"`
}

// AssociationMatrix is the artifact of a pairwise association sweep.
type AssociationMatrix struct {
	ID      core.ArtifactID `json:"id"`
	Columns []string        `json:"columns"`
	Cells   []MatrixCell    `json:"cells"`
	// MeanScore summarizes the successfully scored cells.
	MeanScore float64 `json:"mean_score"`
	Failed    int     `json:"failed"`
}

// AssociationMatrix scores bias-corrected Cramér's V and its p-value for every
// unordered pair of categorical columns. Pairs run concurrently up to the
// configured bound; a degenerate pair records its error in its own cell.
func (e *Engine) AssociationMatrix(ctx context.Context, columns []dataset.Column, withCorrection bool) (*AssociationMatrix, error) {
	var pairs [][2]int
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			if columns[i].IsCategorical() && columns[j].IsCategorical() {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	matrix := &AssociationMatrix{
		ID:    core.ArtifactID(core.NewID()),
		Cells: make([]MatrixCell, len(pairs)),
	}
	for _, col := range columns {
		matrix.Columns = append(matrix.Columns, col.Name)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)
	for k, pair := range pairs {
		k, pair := k, pair
		g.Go(func() error {
			if err := checkCancelled(ctx); err != nil {
				return err
			}
			x, y := columns[pair[0]], columns[pair[1]]
			table := e.crosstab.Build(x, y, withCorrection)
			result, err := e.cramersV.Score(table)
			// Per-pair failures stay in the cell; only cancellation
			// aborts the sweep.
			matrix.Cells[k] = MatrixCell{ColumnX: x.Name, ColumnY: y.Name, Result: result, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var scores []float64
	for _, cell := range matrix.Cells {
		if cell.Err != nil {
			matrix.Failed++
			if !core.IsDataError(cell.Err) {
				log.Printf("association matrix %s: pair %s/%s failed: %v", matrix.ID, cell.ColumnX, cell.ColumnY, cell.Err)
			}
			continue
		}
		scores = append(scores, cell.Result.Score)
	}
	if mean, err := montanastats.Mean(scores); err == nil {
		matrix.MeanScore = mean
	}
	return matrix, nil
}
