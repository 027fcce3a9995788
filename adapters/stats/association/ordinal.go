package association

import (
	"wordlab/domain/dataset"
)

// RankEncoder normalizes two samples into plain numeric arrays for an
// external rank-based two-sample test. It performs no statistical test.
type RankEncoder struct{}

// NewRankEncoder creates a rank encoder.
func NewRankEncoder() RankEncoder {
	return RankEncoder{}
}

// Encode maps each categorical sample's values to integer codes in
// first-encounter order (the encoding is stable per sample, not shared across
// the two samples); ordinal and numeric samples pass through unchanged.
func (e RankEncoder) Encode(a, b dataset.Column) ([]float64, []float64) {
	return e.encodeOne(a), e.encodeOne(b)
}

func (RankEncoder) encodeOne(col dataset.Column) []float64 {
	if !col.IsCategorical() {
		out := make([]float64, col.Len())
		copy(out, col.Values)
		return out
	}

	codes := make(map[string]int, col.Len())
	out := make([]float64, col.Len())
	for i, label := range col.Labels {
		code, ok := codes[label]
		if !ok {
			code = len(codes)
			codes[label] = code
		}
		out[i] = float64(code)
	}
	return out
}
