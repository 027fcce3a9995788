package association

import (
	"testing"

	"wordlab/domain/dataset"
	"wordlab/internal/testkit"
)

func TestCrosstab_AlignsOnLabelUnion(t *testing.T) {
	builder := NewCrosstab()

	a := testkit.RepeatedSample("subgroup_a", []string{"red", "blue"}, []int{3, 2})
	b := testkit.RepeatedSample("subgroup_b", []string{"blue", "green"}, []int{4, 1})

	table := builder.Build(a, b, false)

	if got, want := table.Rows(), 3; got != want {
		t.Fatalf("expected %d labels, got %d", want, got)
	}
	wantA := map[string]float64{"red": 3, "blue": 2, "green": 0}
	wantB := map[string]float64{"red": 0, "blue": 4, "green": 1}
	for i, label := range table.Labels {
		if table.CountsA[i] != wantA[label] {
			t.Errorf("label %s: expected countA %.0f, got %.0f", label, wantA[label], table.CountsA[i])
		}
		if table.CountsB[i] != wantB[label] {
			t.Errorf("label %s: expected countB %.0f, got %.0f", label, wantB[label], table.CountsB[i])
		}
	}
}

func TestCrosstab_LabelOrderIsFirstEncounter(t *testing.T) {
	builder := NewCrosstab()

	a := dataset.Categorical("a", []string{"x", "y", "x"})
	b := dataset.Categorical("b", []string{"z", "y"})

	table := builder.Build(a, b, false)

	want := []string{"x", "y", "z"}
	for i, label := range want {
		if table.Labels[i] != label {
			t.Fatalf("expected label order %v, got %v", want, table.Labels)
		}
	}
}

func TestCrosstab_CorrectionAddsHalfToEveryCell(t *testing.T) {
	builder := NewCrosstab()

	// "green" is absent from sample A, so the table has a zero cell.
	a := testkit.RepeatedSample("a", []string{"red", "blue"}, []int{3, 2})
	b := testkit.RepeatedSample("b", []string{"red", "blue", "green"}, []int{1, 4, 1})

	plain := builder.Build(a, b, false)
	corrected := builder.Build(a, b, true)

	for i := range plain.Labels {
		if corrected.CountsA[i] != plain.CountsA[i]+0.5 {
			t.Errorf("cell A[%d]: expected %.1f, got %.1f", i, plain.CountsA[i]+0.5, corrected.CountsA[i])
		}
		if corrected.CountsB[i] != plain.CountsB[i]+0.5 {
			t.Errorf("cell B[%d]: expected %.1f, got %.1f", i, plain.CountsB[i]+0.5, corrected.CountsB[i])
		}
	}
	if corrected.HasZeroCell() {
		t.Error("corrected table should have no zero cells")
	}
}

func TestCrosstab_NoCorrectionWithoutZeroCells(t *testing.T) {
	builder := NewCrosstab()

	a := testkit.RepeatedSample("a", []string{"red", "blue"}, []int{3, 2})
	b := testkit.RepeatedSample("b", []string{"red", "blue"}, []int{1, 4})

	table := builder.Build(a, b, true)

	wantA := []float64{3, 2}
	wantB := []float64{1, 4}
	for i := range table.Labels {
		if table.CountsA[i] != wantA[i] || table.CountsB[i] != wantB[i] {
			t.Fatalf("table without zero cells must be unmodified, got A=%v B=%v", table.CountsA, table.CountsB)
		}
	}
}
