package association

import (
	"testing"

	"wordlab/domain/dataset"
)

func TestRankEncoder_CategoricalCodes(t *testing.T) {
	encoder := NewRankEncoder()

	a := dataset.Categorical("sex", []string{"m", "f", "f", "m", "x"})
	b := dataset.Numeric("score", []float64{1.5, 2.5, 3.5})

	encodedA, encodedB := encoder.Encode(a, b)

	wantA := []float64{0, 1, 1, 0, 2}
	if len(encodedA) != len(wantA) {
		t.Fatalf("expected %d codes, got %d", len(wantA), len(encodedA))
	}
	for i := range wantA {
		if encodedA[i] != wantA[i] {
			t.Errorf("code[%d]: expected %.0f, got %.0f", i, wantA[i], encodedA[i])
		}
	}

	wantB := []float64{1.5, 2.5, 3.5}
	for i := range wantB {
		if encodedB[i] != wantB[i] {
			t.Errorf("numeric passthrough[%d]: expected %g, got %g", i, wantB[i], encodedB[i])
		}
	}
}

func TestRankEncoder_EncodingIsPerSample(t *testing.T) {
	encoder := NewRankEncoder()

	// "b" is first encountered in sample B, so it codes to 0 there while
	// coding to 1 in sample A. The two encodings are intentionally not
	// shared.
	a := dataset.Categorical("a", []string{"a", "b"})
	b := dataset.Categorical("b", []string{"b", "a"})

	encodedA, encodedB := encoder.Encode(a, b)

	if encodedA[0] != 0 || encodedA[1] != 1 {
		t.Errorf("sample A codes: expected [0 1], got %v", encodedA)
	}
	if encodedB[0] != 0 || encodedB[1] != 1 {
		t.Errorf("sample B codes: expected [0 1], got %v", encodedB)
	}
}

func TestRankEncoder_DoesNotAliasInput(t *testing.T) {
	encoder := NewRankEncoder()

	values := []float64{1, 2, 3}
	col := dataset.Ordinal("ord", values)

	encoded, _ := encoder.Encode(col, col)
	encoded[0] = 99

	if values[0] != 1 {
		t.Fatal("encoder must copy numeric values, not alias the input")
	}
}
