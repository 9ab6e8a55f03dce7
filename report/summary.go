package report

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/optionfdm/analytic"
	"github.com/katalvlaran/optionfdm/matrix"
	"github.com/katalvlaran/optionfdm/surface"
)

// Summary locates the worst absolute error of a surface against its reference.
// AveragePrice is zero for vanilla surfaces.
type Summary struct {
	MaxError     float64
	AssetPrice   float64
	AveragePrice float64
	Reference    float64
	Numerical    float64
}

// VanillaSummary compares every asset node of the terminal row with the
// Black-Scholes price.
func VanillaSummary(s *surface.Vanilla, bs *analytic.BlackScholes) (Summary, error) {
	if s == nil || bs == nil {
		return Summary{}, fmt.Errorf("VanillaSummary: %w", matrix.ErrNilMatrix)
	}
	assets := s.Grid().AssetPrice().Nodes()
	numerical := s.TerminalRow()
	reference := bs.Prices(assets)

	j, worst := worstIndex(numerical, reference)

	return Summary{
		MaxError:   worst,
		AssetPrice: assets[j],
		Reference:  reference[j],
		Numerical:  numerical[j],
	}, nil
}

// AsianSummary compares every node of the terminal slice with reference.
func AsianSummary(s *surface.Asian, reference matrix.Matrix) (Summary, error) {
	if s == nil {
		return Summary{}, fmt.Errorf("AsianSummary: %w", matrix.ErrNilMatrix)
	}
	term := s.Terminal()
	if err := matrix.ValidateSameShape(term, reference); err != nil {
		return Summary{}, fmt.Errorf("AsianSummary: %w: %w", ErrReferenceShape, err)
	}

	rows, cols := term.Rows(), term.Cols()
	numerical := make([]float64, 0, rows*cols)
	ref := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			n, _ := term.At(i, k)
			r, _ := reference.At(i, k)
			numerical = append(numerical, n)
			ref = append(ref, r)
		}
	}

	flat, worst := worstIndex(numerical, ref)
	averages, _ := s.Grid().AveragePrice()

	return Summary{
		MaxError:     worst,
		AssetPrice:   s.Grid().AssetPrice().Node(flat / cols),
		AveragePrice: averages.Node(flat % cols),
		Reference:    ref[flat],
		Numerical:    numerical[flat],
	}, nil
}

// worstIndex returns the index and value of max |numerical − reference|.
// A NaN difference is reported as +Inf so a diverged run is never hidden.
func worstIndex(numerical, reference []float64) (int, float64) {
	diff := make([]float64, len(numerical))
	floats.SubTo(diff, numerical, reference)
	for i, d := range diff {
		if math.IsNaN(d) {
			diff[i] = math.Inf(1)
		} else {
			diff[i] = math.Abs(d)
		}
	}
	idx := floats.MaxIdx(diff)

	return idx, diff[idx]
}

// Fields renders the summary as structured log fields.
func (s Summary) Fields() logrus.Fields {
	return logrus.Fields{
		"max_error":     s.MaxError,
		"asset_price":   s.AssetPrice,
		"average_price": s.AveragePrice,
		"reference":     s.Reference,
		"numerical":     s.Numerical,
	}
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("max error %g at S=%g A=%g (reference %g, numerical %g)",
		s.MaxError, s.AssetPrice, s.AveragePrice, s.Reference, s.Numerical)
}
