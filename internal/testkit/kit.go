// Package testkit provides deterministic fixtures for the scorer and engine
// tests: categorical samples with known frequency shapes and synthetic
// corpora whose co-occurrence structure is fixed by a seed.
package testkit

import (
	"math/rand"

	"wordlab/domain/dataset"
	"wordlab/domain/topic"
)

// RepeatedSample builds a categorical column with an explicit frequency
// shape: counts[i] copies of labels[i], in order.
func RepeatedSample(name string, labels []string, counts []int) dataset.Column {
	var values []string
	for i, label := range labels {
		for k := 0; k < counts[i]; k++ {
			values = append(values, label)
		}
	}
	return dataset.Categorical(name, values)
}

// ShuffledSample is RepeatedSample with a seeded shuffle, for tests that need
// frequency shape without positional structure.
func ShuffledSample(name string, labels []string, counts []int, seed int64) dataset.Column {
	col := RepeatedSample(name, labels, counts)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(col.Labels), func(i, j int) {
		col.Labels[i], col.Labels[j] = col.Labels[j], col.Labels[i]
	})
	return col
}

// ClusteredCorpus builds a corpus of docs drawn from word pools: for each
// pool, perPool documents containing every word of that pool. Words within a
// pool therefore always co-occur and words across pools never do.
func ClusteredCorpus(pools [][]string, perPool int) [][]string {
	var corpus [][]string
	for _, pool := range pools {
		for k := 0; k < perPool; k++ {
			doc := make([]string, len(pool))
			copy(doc, pool)
			corpus = append(corpus, doc)
		}
	}
	return corpus
}

// RankedTopic builds a topic whose words carry descending weights.
func RankedTopic(index int, terms ...string) topic.Topic {
	t := topic.Topic{Index: index}
	for i, term := range terms {
		t.Words = append(t.Words, topic.Word{Term: term, Weight: float64(len(terms) - i)})
	}
	return t
}
