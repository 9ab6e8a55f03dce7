package fdm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
)

// vanillaRight is the asymptotic call value at the top of the asset axis:
// S_max − K·e^{−rτ}.
func vanillaRight(m market.Market, c market.Contract, sMax, tau float64) float64 {
	return sMax - c.Strike()*m.Discount(tau)
}

// AsianBoundaries evaluates the four edge policies of the Asian grid.
//
//   - Left  (S = S_min): max(e^{−rτ}(A/T − K) + S_min·Drift(τ)/T, 0),
//     which is the discounted payoff e^{−rτ}·max(A/T − K, 0) when S_min = 0.
//   - Right (S = S_max): max(e^{−rτ}(A/T − K) + S_max·Drift(τ)/T, 0).
//   - Front (A = A_min): column 0 copies column 1 (zero flux along A).
//   - Back  (A = A_max): e^{−rτ}·max(A_max/T − K, 0) + S·Drift(τ)/T.
//
// Drift(τ) = (1 − e^{−rτ})/r is the value of the integral still to be
// accumulated per unit of S, in the zero-volatility limit.
type AsianBoundaries struct {
	m        market.Market
	c        market.Contract
	assets   []float64
	averages []float64
}

// NewAsianBoundaries binds the policies to a market, contract and grid.
// Returns grid.ErrInvalidGrid when g has no average-price axis.
func NewAsianBoundaries(m market.Market, c market.Contract, g *grid.Grid) (*AsianBoundaries, error) {
	averages, ok := g.AveragePrice()
	if !ok {
		return nil, fmt.Errorf("%w: asian boundaries need an %s axis", grid.ErrInvalidGrid, grid.AveragePrice)
	}

	return &AsianBoundaries{
		m:        m,
		c:        c,
		assets:   g.AssetPrice().Nodes(),
		averages: averages.Nodes(),
	}, nil
}

// Left returns the S = S_min row across the average axis at time to maturity tau.
func (b *AsianBoundaries) Left(tau float64) []float64 {
	out := make([]float64, len(b.averages))
	b.edgeRowInto(out, b.assets[0], tau)

	return out
}

// Right returns the S = S_max row across the average axis.
func (b *AsianBoundaries) Right(tau float64) []float64 {
	out := make([]float64, len(b.averages))
	b.edgeRowInto(out, b.assets[len(b.assets)-1], tau)

	return out
}

// Back returns the A = A_max column across the asset axis.
func (b *AsianBoundaries) Back(tau float64) []float64 {
	out := make([]float64, len(b.assets))
	b.backInto(out, tau)

	return out
}

// Front applies the A = A_min policy to slice in place: column 0 := column 1.
func (b *AsianBoundaries) Front(slice *matrix.Dense) error {
	if err := b.checkSlice(slice); err != nil {
		return err
	}
	for i := 0; i < slice.Rows(); i++ {
		row, _ := slice.RowView(i)
		row[0] = row[1]
	}

	return nil
}

// Apply writes all four edges of slice for time to maturity tau, in order:
// S rows, then A = A_min, then A = A_max. Corners take the later edge.
func (b *AsianBoundaries) Apply(slice *matrix.Dense, tau float64) error {
	if err := b.checkSlice(slice); err != nil {
		return err
	}
	first, _ := slice.RowView(0)
	last, _ := slice.RowView(slice.Rows() - 1)
	b.edgeRowInto(first, b.assets[0], tau)
	b.edgeRowInto(last, b.assets[len(b.assets)-1], tau)

	_ = b.Front(slice)

	base, slope := b.backTerms(tau)
	kLast := len(b.averages) - 1
	for i, s := range b.assets {
		row, _ := slice.RowView(i)
		row[kLast] = base + s*slope
	}

	return nil
}

func (b *AsianBoundaries) edgeRowInto(dst []float64, s, tau float64) {
	var (
		t     = b.c.Maturity()
		k     = b.c.Strike()
		disc  = b.m.Discount(tau)
		drift = s * b.m.Drift(tau) / t
	)
	for j, a := range b.averages {
		dst[j] = math.Max(disc*(a/t-k)+drift, 0)
	}
}

func (b *AsianBoundaries) backInto(dst []float64, tau float64) {
	base, slope := b.backTerms(tau)
	for i, s := range b.assets {
		dst[i] = base + s*slope
	}
}

// backTerms splits the A = A_max value into base + S·slope.
func (b *AsianBoundaries) backTerms(tau float64) (base, slope float64) {
	base = b.m.Discount(tau) * b.c.Payoff(b.averages[len(b.averages)-1])
	slope = b.m.Drift(tau) / b.c.Maturity()

	return base, slope
}

func (b *AsianBoundaries) checkSlice(slice *matrix.Dense) error {
	if slice == nil {
		return fmt.Errorf("AsianBoundaries: %w", matrix.ErrNilMatrix)
	}
	if slice.Rows() != len(b.assets) || slice.Cols() != len(b.averages) {
		return fmt.Errorf("AsianBoundaries: slice %dx%d, want %dx%d: %w",
			slice.Rows(), slice.Cols(), len(b.assets), len(b.averages), matrix.ErrDimensionMismatch)
	}

	return nil
}
