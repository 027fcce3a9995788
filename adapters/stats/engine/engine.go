// Package engine fans the pure scorers out over batches: every categorical
// column pair of a dataset, or every topic of a model. Failures are isolated
// per pair/topic so one pathological unit never aborts the sweep.
package engine

import (
	"context"

	"wordlab/adapters/stats/association"
	"wordlab/adapters/stats/topicquality"
	"wordlab/internal/config"
)

// Engine bundles the scorers with the batch concurrency bound.
type Engine struct {
	crosstab    association.Crosstab
	cramersV    association.CramersV
	uncertainty association.Uncertainty
	encoder     association.RankEncoder
	coherence   topicquality.Coherence
	diversity   topicquality.Diversity

	maxConcurrency int
}

// New creates an engine from configuration.
func New(cfg config.Stats) *Engine {
	return &Engine{
		crosstab:    association.Crosstab{ZeroCellCorrection: cfg.ZeroCellCorrection},
		cramersV:    association.NewCramersV(),
		uncertainty: association.Uncertainty{Epsilon: cfg.Epsilon},
		encoder:     association.NewRankEncoder(),
		coherence: topicquality.Coherence{
			Window:  cfg.CoherenceWindow,
			Epsilon: cfg.NPMIEpsilon,
		},
		diversity:      topicquality.NewDiversity(),
		maxConcurrency: cfg.MaxConcurrency,
	}
}

// checkCancelled lets long sweeps honor caller deadlines between units.
func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
