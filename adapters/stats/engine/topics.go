package engine

import (
	"context"
	"log"

	montanastats "github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"wordlab/adapters/stats/topicquality"
	"wordlab/domain/core"
	"wordlab/domain/topic"
)

// TopicOutcome is the coherence result for one topic. Err is set when the
// topic could not be scored (e.g. a word never observed in the corpus).
type TopicOutcome struct {
	Index int              `json:"index"`
	Score topic.TopicScore `json:"score"`
	Err   error            `json:"-"`
}

// TopicEvaluation is the artifact of evaluating a topic model's output
// against its corpus: lexical diversity across topics and per-topic C_v
// coherence.
type TopicEvaluation struct {
	ID     core.ArtifactID `json:"id"`
	Column string          `json:"column"`

	Diversity float64        `json:"topic_diversity_score"`
	Coherence float64        `json:"cv_score"`
	Topics    []TopicOutcome `json:"cv_topic_scores"`
	Failed    int            `json:"failed"`
}

// EvaluateTopics scores a trained topic model's word lists, truncated to topN
// words each, against the tokenized corpus the model was fit on. Coherence is
// computed per topic with failures isolated: a topic word missing from the
// vocabulary flags only its own topic. Diversity over an entirely empty word
// set fails the whole call.
func (e *Engine) EvaluateTopics(ctx context.Context, column string, topics []topic.Topic, corpus [][]string, topN int) (*TopicEvaluation, error) {
	wordSets := make([]topic.WordSet, len(topics))
	for i, t := range topics {
		wordSets[i] = t.TopN(topN)
	}

	diversity, err := e.diversity.Score(wordSets)
	if err != nil {
		return nil, err
	}

	// Vocabulary and window counts are built once and read concurrently.
	vocab := topicquality.NewVocabulary(corpus)
	counts := e.coherence.Count(wordSets, corpus)

	eval := &TopicEvaluation{
		ID:        core.ArtifactID(core.NewID()),
		Column:    column,
		Diversity: diversity,
		Topics:    make([]TopicOutcome, len(wordSets)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)
	for i, words := range wordSets {
		i, words := i, words
		g.Go(func() error {
			if err := checkCancelled(ctx); err != nil {
				return err
			}
			score, err := e.coherence.ScoreTopic(topics[i].Index, words, vocab, counts)
			eval.Topics[i] = TopicOutcome{Index: topics[i].Index, Score: score, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var scores []float64
	for _, outcome := range eval.Topics {
		if outcome.Err != nil {
			eval.Failed++
			continue
		}
		scores = append(scores, outcome.Score.Score)
	}
	if mean, err := montanastats.Mean(scores); err == nil {
		eval.Coherence = mean
	}
	if eval.Failed > 0 {
		log.Printf("topic evaluation %s: %d/%d topics could not be scored", eval.ID, eval.Failed, len(eval.Topics))
	}
	return eval, nil
}
