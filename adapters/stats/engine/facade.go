package engine

import (
	"wordlab/adapters/stats/association"
	"wordlab/domain/dataset"
	"wordlab/domain/stats"
	"wordlab/domain/topic"
	"wordlab/ports"
)

// The engine is the canonical implementation of the scoring ports.
var (
	_ ports.AssociationPort  = (*Engine)(nil)
	_ ports.TopicQualityPort = (*Engine)(nil)
)

// BuildFrequencyAlignment aligns two categorical samples' category
// frequencies on the union of their labels.
func (e *Engine) BuildFrequencyAlignment(a, b dataset.Column, withCorrection bool) stats.FrequencyTable {
	return e.crosstab.Build(a, b, withCorrection)
}

// ScoreAssociation computes bias-corrected Cramér's V and its p-value.
func (e *Engine) ScoreAssociation(table stats.FrequencyTable) (stats.AssociationResult, error) {
	return e.cramersV.Score(table)
}

// ScoreUncertainty computes the uncertainty coefficient U(X|Y).
func (e *Engine) ScoreUncertainty(joint stats.JointTable) (float64, error) {
	return e.uncertainty.Score(joint)
}

// ScoreAlignmentUncertainty normalizes a frequency alignment table over its
// grand total and scores how much knowing the sample column reduces label
// uncertainty.
func (e *Engine) ScoreAlignmentUncertainty(table stats.FrequencyTable) (float64, error) {
	joint := association.NormalizeFrequency(table.Contingency(), association.NormalizeTotal)
	return e.uncertainty.Score(joint)
}

// EncodeForRankTest normalizes two samples into numeric arrays for an
// external rank-based two-sample test.
func (e *Engine) EncodeForRankTest(a, b dataset.Column) ([]float64, []float64) {
	return e.encoder.Encode(a, b)
}

// ScoreTopicDiversity computes the fraction of non-repeated topic words.
func (e *Engine) ScoreTopicDiversity(topics []topic.WordSet) (float64, error) {
	return e.diversity.Score(topics)
}

// ScoreTopicCoherence computes per-topic C_v coherence against the corpus.
func (e *Engine) ScoreTopicCoherence(topics []topic.WordSet, corpus [][]string) (topic.CoherenceResult, error) {
	return e.coherence.Score(topics, corpus)
}
