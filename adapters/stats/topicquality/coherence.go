package topicquality

import (
	"math"

	montanastats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"wordlab/domain/core"
	"wordlab/domain/topic"
	"wordlab/internal/config"
)

// Coherence scores the semantic coherence of topic top-word lists against
// corpus co-occurrence statistics using the C_v measure: per-word NPMI
// vectors over sliding windows, aggregated by cosine similarity.
type Coherence struct {
	// Window is the sliding co-occurrence window width in tokens.
	Window int
	// Epsilon guards log(0) in NPMI computation.
	Epsilon float64
}

// NewCoherence creates a coherence scorer with the standard C_v window.
func NewCoherence() Coherence {
	return Coherence{
		Window:  config.DefaultCoherenceWindow,
		Epsilon: config.DefaultNPMIEpsilon,
	}
}

// Score computes per-topic C_v coherence and the mean aggregate. A topic word
// absent from the corpus vocabulary makes that topic's coherence undefined;
// the call fails with an error naming the topic and word rather than emitting
// NaN. Callers wanting per-topic isolation score topics individually (see
// engine.EvaluateTopics).
func (c Coherence) Score(topics []topic.WordSet, corpus [][]string) (topic.CoherenceResult, error) {
	vocab := NewVocabulary(corpus)
	counts := c.Count(topics, corpus)

	result := topic.CoherenceResult{PerTopic: make([]topic.TopicScore, len(topics))}
	for i, words := range topics {
		score, err := c.ScoreTopic(i, words, vocab, counts)
		if err != nil {
			return topic.CoherenceResult{}, err
		}
		result.PerTopic[i] = score
	}

	scores := make([]float64, len(result.PerTopic))
	for i, ts := range result.PerTopic {
		scores[i] = ts.Score
	}
	aggregate, err := montanastats.Mean(scores)
	if err != nil {
		return topic.CoherenceResult{}, core.ErrEmptyTopicSet
	}
	result.Aggregate = aggregate
	return result, nil
}

// Count tallies window co-occurrences for the union of all topic words.
func (c Coherence) Count(topics []topic.WordSet, corpus [][]string) *WindowCounts {
	relevant := make(map[string]struct{})
	for _, words := range topics {
		for _, w := range words {
			relevant[w] = struct{}{}
		}
	}
	return CountWindows(corpus, relevant, c.Window)
}

// ScoreTopic computes the C_v coherence of a single topic's word list against
// precomputed window counts. Each word's NPMI vector over the topic words is
// compared by cosine similarity with the topic's summed vector; the score is
// the mean similarity, std its spread, and support the number of segments.
func (c Coherence) ScoreTopic(index int, words topic.WordSet, vocab *Vocabulary, counts *WindowCounts) (topic.TopicScore, error) {
	if len(words) == 0 {
		return topic.TopicScore{}, core.ErrEmptyTopicSet
	}
	for _, w := range words {
		if !vocab.Contains(w) {
			return topic.TopicScore{}, core.NewMissingVocabularyError(index, w)
		}
	}

	// One NPMI vector per word, dimensioned over the topic's own words.
	vectors := make([][]float64, len(words))
	for i, wi := range words {
		vectors[i] = make([]float64, len(words))
		for j, wj := range words {
			vectors[i][j] = c.npmi(counts, wi, wj)
		}
	}

	// One-set segmentation: compare each word vector with the sum over all.
	sum := make([]float64, len(words))
	for _, v := range vectors {
		floats.Add(sum, v)
	}

	similarities := make([]float64, len(vectors))
	for i, v := range vectors {
		similarities[i] = cosine(v, sum)
	}

	mean, err := montanastats.Mean(similarities)
	if err != nil {
		return topic.TopicScore{}, core.ErrEmptyTopicSet
	}
	std, err := montanastats.StandardDeviation(similarities)
	if err != nil {
		return topic.TopicScore{}, core.ErrEmptyTopicSet
	}

	return topic.TopicScore{Score: mean, Std: std, Support: len(similarities)}, nil
}

// npmi computes normalized pointwise mutual information over window
// probabilities, in [-1, 1].
func (c Coherence) npmi(counts *WindowCounts, a, b string) float64 {
	pa := counts.P(a)
	pb := counts.P(b)
	pab := counts.PJoint(a, b)

	if pa == 0 || pb == 0 {
		return 0
	}
	return math.Log((pab+c.Epsilon)/(pa*pb)) / -math.Log(pab+c.Epsilon)
}

// cosine returns the cosine similarity of two vectors, 0 when either has zero
// norm (a fully disconnected word set has no meaningful direction).
func cosine(a, b []float64) float64 {
	na := math.Sqrt(floats.Dot(a, a))
	nb := math.Sqrt(floats.Dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
