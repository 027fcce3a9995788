package association

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"wordlab/domain/core"
	"wordlab/domain/stats"
	"wordlab/internal/config"
)

// Uncertainty computes Theil's uncertainty coefficient U(X|Y): the fraction of
// X's entropy resolved by knowing Y. Directional; U(X|Y) != U(Y|X) in general.
type Uncertainty struct {
	// Epsilon floors probabilities before logs and divisions. The floor
	// trades exactness near zero for guaranteed finiteness; the bias it
	// introduces is negligible at the default 1e-20.
	Epsilon float64
}

// NewUncertainty creates an uncertainty scorer with the stock floor.
func NewUncertainty() Uncertainty {
	return Uncertainty{Epsilon: config.DefaultEpsilon}
}

// Score returns U(X|Y) for a joint probability table with rows indexed by X
// and columns by Y. A table with no cells is an input contract violation.
func (u Uncertainty) Score(joint stats.JointTable) (float64, error) {
	if len(joint.P) == 0 || len(joint.P[0]) == 0 {
		return 0, core.ErrInvalidTable
	}

	px := joint.RowMarginals()
	py := joint.ColMarginals()
	for i := range px {
		px[i] = math.Max(px[i], u.Epsilon)
	}
	for j := range py {
		py[j] = math.Max(py[j], u.Epsilon)
	}

	// Marginal entropy of X, natural log. The floor can push the marginal
	// sum slightly off 1, so renormalize before the entropy call.
	norm := make([]float64, len(px))
	copy(norm, px)
	floats.Scale(1/floats.Sum(norm), norm)
	hx := math.Max(stat.Entropy(norm), u.Epsilon)

	// Conditional entropy H(X|Y) = -sum Pxy * log(Pxy/Py).
	hxy := 0.0
	for i := range joint.P {
		for j, pxy := range joint.P[i] {
			pxGivenY := math.Max(pxy/py[j], u.Epsilon)
			hxy -= pxy * math.Log(pxGivenY)
		}
	}

	return (hx - hxy) / hx, nil
}
