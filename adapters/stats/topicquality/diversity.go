package topicquality

import (
	"wordlab/domain/core"
	"wordlab/domain/topic"
)

// Diversity scores lexical overlap across a topic model's top-word lists.
type Diversity struct{}

// NewDiversity creates a diversity scorer.
func NewDiversity() Diversity {
	return Diversity{}
}

// Score returns the fraction of non-repeated words across all topics:
// |union of words| / sum of list lengths, in [0, 1]. 1 means no word is
// shared between any two topics. Topics with zero total words cannot be
// scored and yield ErrEmptyTopicSet instead of a silent 0/0.
func (Diversity) Score(topics []topic.WordSet) (float64, error) {
	total := 0
	unique := make(map[string]struct{})
	for _, words := range topics {
		total += len(words)
		for _, w := range words {
			unique[w] = struct{}{}
		}
	}
	if total == 0 {
		return 0, core.ErrEmptyTopicSet
	}
	return float64(len(unique)) / float64(total), nil
}
