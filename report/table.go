package report

import (
	"fmt"

	"github.com/katalvlaran/optionfdm/analytic"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
	"github.com/katalvlaran/optionfdm/surface"
)

// Column names, in output order.
const (
	ColAssetPrice     = "asset_price"
	ColAveragePrice   = "average_price"
	ColAnalytical     = "analytical_price"
	ColZeroVolatility = "zero_volatility_price"
	ColNumerical      = "numerical_price"
	ColDifference     = "difference"
)

// Table is a sampled comparison of a numerical surface with its reference.
// Every row has len(Columns) entries.
type Table struct {
	Kind    market.Kind
	Shape   []int // grid shape the table was sampled from
	Columns []string
	Rows    [][]float64
}

// VanillaTable samples at most points evenly spaced asset nodes of the
// terminal row and pairs each with the Black-Scholes price.
//
// Difference is numerical − analytical.
func VanillaTable(s *surface.Vanilla, bs *analytic.BlackScholes, points int) (*Table, error) {
	if s == nil || bs == nil {
		return nil, fmt.Errorf("VanillaTable: %w", matrix.ErrNilMatrix)
	}
	idx, err := sampleIndices(s.AssetNodes(), points)
	if err != nil {
		return nil, err
	}

	assets := s.Grid().AssetPrice()
	numerical := s.TerminalRow()
	t := &Table{
		Kind:    market.Vanilla,
		Shape:   s.Grid().Shape(),
		Columns: []string{ColAssetPrice, ColAnalytical, ColNumerical, ColDifference},
		Rows:    make([][]float64, 0, len(idx)),
	}
	for _, j := range idx {
		sj := assets.Node(j)
		ref := bs.Price(sj)
		t.Rows = append(t.Rows, []float64{sj, ref, numerical[j], numerical[j] - ref})
	}

	return t, nil
}

// AsianTable samples at most points nodes along each of the asset and average
// axes of the terminal slice and pairs them with reference, an N_S × N_A
// matrix on the same nodes.
func AsianTable(s *surface.Asian, reference matrix.Matrix, points int) (*Table, error) {
	if s == nil {
		return nil, fmt.Errorf("AsianTable: %w", matrix.ErrNilMatrix)
	}
	diff, err := matrix.Sub(s.Terminal(), reference)
	if err != nil {
		return nil, fmt.Errorf("AsianTable: %w: %w", ErrReferenceShape, err)
	}

	assets := s.Grid().AssetPrice()
	averages, _ := s.Grid().AveragePrice()
	si, err := sampleIndices(assets.Len(), points)
	if err != nil {
		return nil, err
	}
	ak, err := sampleIndices(averages.Len(), points)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Kind:    market.Asian,
		Shape:   s.Grid().Shape(),
		Columns: []string{ColAssetPrice, ColAveragePrice, ColNumerical, ColZeroVolatility, ColDifference},
		Rows:    make([][]float64, 0, len(si)*len(ak)),
	}
	for _, i := range si {
		for _, k := range ak {
			num, _ := s.TerminalAt(i, k)
			ref, _ := reference.At(i, k)
			d, _ := diff.At(i, k)
			t.Rows = append(t.Rows, []float64{assets.Node(i), averages.Node(k), num, ref, d})
		}
	}

	return t, nil
}

// sampleIndices returns min(points, n) strictly increasing indices spread
// over [0, n−1], both ends included.
func sampleIndices(n, points int) ([]int, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPoints, points)
	}
	if points >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return idx, nil
	}

	idx := make([]int, points)
	for i := range idx {
		idx[i] = i * (n - 1) / (points - 1)
	}

	return idx, nil
}
