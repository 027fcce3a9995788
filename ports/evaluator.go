package ports

import (
	"wordlab/domain/dataset"
	"wordlab/domain/stats"
	"wordlab/domain/topic"
)

// AssociationPort exposes the column association pipeline to callers.
type AssociationPort interface {
	BuildFrequencyAlignment(a, b dataset.Column, withCorrection bool) stats.FrequencyTable
	ScoreAssociation(table stats.FrequencyTable) (stats.AssociationResult, error)
	ScoreUncertainty(joint stats.JointTable) (float64, error)
	ScoreAlignmentUncertainty(table stats.FrequencyTable) (float64, error)
	EncodeForRankTest(a, b dataset.Column) ([]float64, []float64)
}

// TopicQualityPort exposes topic-model quality scoring to callers.
type TopicQualityPort interface {
	ScoreTopicDiversity(topics []topic.WordSet) (float64, error)
	ScoreTopicCoherence(topics []topic.WordSet, corpus [][]string) (topic.CoherenceResult, error)
}
