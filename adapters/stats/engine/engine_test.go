package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"wordlab/domain/core"
	"wordlab/domain/dataset"
	"wordlab/domain/topic"
	"wordlab/internal/config"
	"wordlab/internal/testkit"
)

func TestAssociationMatrix_IsolatesDegeneratePairs(t *testing.T) {
	eng := New(config.Default())

	columns := []dataset.Column{
		testkit.RepeatedSample("varied", []string{"x", "y"}, []int{5, 5}),
		testkit.RepeatedSample("const_1", []string{"z"}, []int{10}),
		testkit.RepeatedSample("const_2", []string{"z"}, []int{10}),
		dataset.Numeric("skipped", []float64{1, 2, 3}),
	}

	matrix, err := eng.AssociationMatrix(context.Background(), columns, true)
	require.NoError(t, err)

	// Only the three categorical columns pair up.
	require.Len(t, matrix.Cells, 3)
	require.False(t, core.ID(matrix.ID).IsEmpty())

	// The two constant columns share a single label, so their pair is
	// degenerate; the pairs involving the varied column still score.
	require.Equal(t, 1, matrix.Failed)
	for _, cell := range matrix.Cells {
		if cell.ColumnX == "const_1" && cell.ColumnY == "const_2" {
			require.ErrorIs(t, cell.Err, core.ErrDegenerateTable)
			continue
		}
		require.NoError(t, cell.Err)
		require.GreaterOrEqual(t, cell.Result.Score, 0.0)
		require.LessOrEqual(t, cell.Result.Score, 1.0)
	}
}

func TestAssociationMatrix_HonorsCancellation(t *testing.T) {
	eng := New(config.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	columns := []dataset.Column{
		testkit.RepeatedSample("a", []string{"x", "y"}, []int{5, 5}),
		testkit.RepeatedSample("b", []string{"x", "y"}, []int{3, 7}),
	}

	_, err := eng.AssociationMatrix(ctx, columns, true)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAssociationMatrix_Deterministic(t *testing.T) {
	eng := New(config.Default())

	columns := []dataset.Column{
		testkit.ShuffledSample("a", []string{"x", "y", "z"}, []int{4, 6, 2}, 1),
		testkit.ShuffledSample("b", []string{"x", "y", "z"}, []int{2, 2, 8}, 2),
		testkit.ShuffledSample("c", []string{"x", "y"}, []int{6, 6}, 3),
	}

	first, err := eng.AssociationMatrix(context.Background(), columns, true)
	require.NoError(t, err)
	second, err := eng.AssociationMatrix(context.Background(), columns, true)
	require.NoError(t, err)

	require.Equal(t, len(first.Cells), len(second.Cells))
	for i := range first.Cells {
		require.Equal(t, first.Cells[i].Result, second.Cells[i].Result)
	}
}

func TestEvaluateTopics_IsolatesMissingVocabulary(t *testing.T) {
	eng := New(config.Default())

	corpus := testkit.ClusteredCorpus([][]string{
		{"apple", "banana", "cherry"},
		{"dog", "cat", "mouse"},
	}, 10)

	topics := []topic.Topic{
		testkit.RankedTopic(0, "apple", "banana", "cherry"),
		testkit.RankedTopic(1, "dog", "zeppelin"),
		testkit.RankedTopic(2, "dog", "cat", "mouse"),
	}

	eval, err := eng.EvaluateTopics(context.Background(), "reviews", topics, corpus, 10)
	require.NoError(t, err)

	require.Equal(t, 1, eval.Failed)
	require.Len(t, eval.Topics, 3)
	require.NoError(t, eval.Topics[0].Err)
	require.True(t, errors.Is(eval.Topics[1].Err, core.ErrMissingVocabulary))
	require.NoError(t, eval.Topics[2].Err)

	// Aggregate covers only the scored topics.
	require.InDelta(t, (eval.Topics[0].Score.Score+eval.Topics[2].Score.Score)/2, eval.Coherence, 1e-12)

	// unique = 7 of total 8 words ("dog" appears twice).
	require.InDelta(t, 7.0/8.0, eval.Diversity, 1e-12)
}

func TestEvaluateTopics_EmptyTopicSet(t *testing.T) {
	eng := New(config.Default())

	_, err := eng.EvaluateTopics(context.Background(), "reviews", nil, [][]string{{"a"}}, 10)
	require.ErrorIs(t, err, core.ErrEmptyTopicSet)
}

func TestEngine_TruncatesToTopN(t *testing.T) {
	eng := New(config.Default())

	corpus := testkit.ClusteredCorpus([][]string{{"apple", "banana", "cherry"}}, 5)

	// "zeppelin" ranks below the top-2 cut, so it never reaches the
	// vocabulary check.
	topics := []topic.Topic{testkit.RankedTopic(0, "apple", "banana", "zeppelin")}

	eval, err := eng.EvaluateTopics(context.Background(), "reviews", topics, corpus, 2)
	require.NoError(t, err)
	require.Equal(t, 0, eval.Failed)
	require.Equal(t, 2, eval.Topics[0].Score.Support)
}

func TestScoreAlignmentUncertainty(t *testing.T) {
	eng := New(config.Default())

	// Disjoint label sets: the sample column fully determines the label.
	a := testkit.RepeatedSample("first", []string{"red"}, []int{10})
	b := testkit.RepeatedSample("second", []string{"blue"}, []int{10})

	u, err := eng.ScoreAlignmentUncertainty(eng.BuildFrequencyAlignment(a, b, false))
	require.NoError(t, err)
	require.InDelta(t, 1.0, u, 1e-9)

	// Identical distributions: the sample column carries no information.
	c := testkit.RepeatedSample("third", []string{"red", "blue"}, []int{5, 5})
	d := testkit.RepeatedSample("fourth", []string{"red", "blue"}, []int{5, 5})

	u, err = eng.ScoreAlignmentUncertainty(eng.BuildFrequencyAlignment(c, d, false))
	require.NoError(t, err)
	require.InDelta(t, 0.0, u, 1e-9)
}
