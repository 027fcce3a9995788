package topic

// Word is a single entry of a topic's ranked word list. Weight is a relevance
// score assigned by the topic model, not a probability.
type Word struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Topic is an ordered word list ranked descending by weight, identified by its
// index in the model output.
type Topic struct {
	Index int    `json:"index"`
	Words []Word `json:"words"`
}

// WordSet is the word-only projection of a topic's top-N words.
type WordSet []string

// TopN projects the topic onto its first n terms. The word list is assumed
// already ranked; n larger than the list returns every term.
func (t Topic) TopN(n int) WordSet {
	if n > len(t.Words) {
		n = len(t.Words)
	}
	terms := make(WordSet, n)
	for i := 0; i < n; i++ {
		terms[i] = t.Words[i].Term
	}
	return terms
}

// TopicScore is the coherence estimate for a single topic: its score, the
// standard deviation across segments, and the number of segments that
// contributed to the estimate.
type TopicScore struct {
	Score   float64 `json:"score"`
	Std     float64 `json:"std"`
	Support int     `json:"support"`
}

// CoherenceResult aggregates per-topic coherence in input order.
type CoherenceResult struct {
	Aggregate float64      `json:"aggregate_score"`
	PerTopic  []TopicScore `json:"per_topic"`
}
