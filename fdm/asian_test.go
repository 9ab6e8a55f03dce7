package fdm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optionfdm/analytic"
	"github.com/katalvlaran/optionfdm/fdm"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
	"github.com/katalvlaran/optionfdm/surface"
)

// zeroVolATM is the σ = 0 Asian value at S = 100 with A = 100 accumulated:
// 100·(1 − e^{−0.05})/0.05.
var zeroVolATM = 100 * -math.Expm1(-rate) / rate

func TestExplicitAsian_ZeroVolatility(t *testing.T) {
	m := mustMarket(t, rate, 0)
	c := mustContract(t, market.Asian, strike)

	coarse, err := fdm.NewExplicitAsian().ComputeAsian(m, c, asianGrid(t, 110, 41))
	require.NoError(t, err)
	vc, err := coarse.TerminalAt(20, 20)
	require.NoError(t, err)
	assert.InDelta(t, zeroVolATM, vc, 0.05)

	fine, err := fdm.NewExplicitAsian().ComputeAsian(m, c, asianGrid(t, 420, 81))
	require.NoError(t, err)
	vf, err := fine.TerminalAt(40, 40)
	require.NoError(t, err)
	assert.Less(t, math.Abs(vf-zeroVolATM), math.Abs(vc-zeroVolATM))
}

func TestExplicitAsian_ZeroRate(t *testing.T) {
	s, err := fdm.NewExplicitAsian().ComputeAsian(mustMarket(t, 0, 0), mustContract(t, market.Asian, strike), asianGrid(t, 110, 41))
	require.NoError(t, err)
	v, err := s.TerminalAt(20, 20)
	require.NoError(t, err)
	assert.InDelta(t, 100, v, 1e-6)
}

// With K = 0 the payoff is linear in A, so the σ = 0 formula is the exact
// price for any volatility.
func TestExplicitAsian_ZeroStrikeIsLinear(t *testing.T) {
	m := mustMarket(t, rate, vol)
	c := mustContract(t, market.Asian, 0)
	g := asianGrid(t, 120, 41)
	averages, _ := g.AveragePrice()

	s, err := fdm.NewExplicitAsian().ComputeAsian(m, c, g)
	require.NoError(t, err)
	want, err := analytic.ZeroVolatilityAsian(g.AssetPrice().Nodes(), averages.Nodes(), m, c)
	require.NoError(t, err)

	for i := 0; i < 41; i++ {
		for k := 1; k < 41; k++ {
			got, _ := s.TerminalAt(i, k)
			exp, _ := want.At(i, k)
			require.InDelta(t, exp, got, 0.05, "(%d,%d)", i, k)
		}
	}
}

func TestExplicitAsian_BoundariesHoldEveryStep(t *testing.T) {
	m := mustMarket(t, rate, vol)
	c := mustContract(t, market.Asian, strike)
	g := asianGrid(t, 30, 11)
	times := g.Time()

	s, err := fdm.NewExplicitAsian(fdm.WithHistory()).ComputeAsian(m, c, g)
	require.NoError(t, err)
	bounds, err := fdm.NewAsianBoundaries(m, c, g)
	require.NoError(t, err)

	for n := 1; n < s.Steps(); n++ {
		require.True(t, s.HasSlice(n))
		tau := times.Node(n) - times.Min()
		left, right, back := bounds.Left(tau), bounds.Right(tau), bounds.Back(tau)
		for k := 1; k < 10; k++ {
			v0, _ := s.At(n, 0, k)
			vN, _ := s.At(n, 10, k)
			assert.Equal(t, left[k], v0, "left n=%d k=%d", n, k)
			assert.Equal(t, right[k], vN, "right n=%d k=%d", n, k)
		}
		for i := 0; i < 11; i++ {
			c0, _ := s.At(n, i, 0)
			c1, _ := s.At(n, i, 1)
			cb, _ := s.At(n, i, 10)
			assert.Equal(t, c1, c0, "front n=%d i=%d", n, i)
			assert.Equal(t, back[i], cb, "back n=%d i=%d", n, i)
		}
	}

	// Slice 0 is the bare payoff broadcast over S.
	averages, _ := g.AveragePrice()
	payoff := c.Payoffs(averages.Nodes())
	for i := 0; i < 11; i++ {
		for k, want := range payoff {
			v, _ := s.At(0, i, k)
			assert.Equal(t, want, v)
		}
	}
}

func TestExplicitAsian_WorkersAndHistoryAgree(t *testing.T) {
	m := mustMarket(t, rate, vol)
	c := mustContract(t, market.Asian, strike)
	g := asianGrid(t, 60, 31)

	base, err := fdm.NewExplicitAsian().ComputeAsian(m, c, g)
	require.NoError(t, err)
	want := base.Terminal()

	for _, opts := range [][]fdm.Option{
		{fdm.WithWorkers(4)},
		{fdm.WithWorkers(64)},
		{fdm.WithHistory()},
		{fdm.WithHistory(), fdm.WithWorkers(3)},
	} {
		s, err := fdm.NewExplicitAsian(opts...).ComputeAsian(m, c, g)
		require.NoError(t, err)
		d, _, _, err := matrix.MaxAbsDiff(want, s.Terminal())
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestExplicitAsian_SlicesWithoutHistory(t *testing.T) {
	s, err := fdm.NewExplicitAsian().ComputeAsian(mustMarket(t, rate, vol), mustContract(t, market.Asian, strike), asianGrid(t, 20, 11))
	require.NoError(t, err)
	assert.Equal(t, 20, s.Steps())
	assert.False(t, s.HasSlice(0))

	_, err = s.Slice(0)
	require.ErrorIs(t, err, surface.ErrSliceNotRetained)
	_, err = s.At(19, 5, 5)
	require.NoError(t, err) // the terminal slice is always kept
}

func TestExplicitAsian_NonNegative(t *testing.T) {
	s, err := fdm.NewExplicitAsian().ComputeAsian(mustMarket(t, rate, vol), mustContract(t, market.Asian, strike), asianGrid(t, 120, 41))
	require.NoError(t, err)

	term := s.Terminal()
	for i := 0; i < term.Rows(); i++ {
		for k := 0; k < term.Cols(); k++ {
			v, _ := term.At(i, k)
			require.GreaterOrEqual(t, v, 0.0, "(%d,%d)", i, k)
		}
	}
	v, _ := s.TerminalAt(20, 20)
	assert.InDelta(t, 97.559, v, 0.01)
}

func TestAsianBoundaries(t *testing.T) {
	m := mustMarket(t, rate, vol)
	c := mustContract(t, market.Asian, strike)
	g := asianGrid(t, 10, 5) // S, A ∈ {0, 50, 100, 150, 200}

	b, err := fdm.NewAsianBoundaries(m, c, g)
	require.NoError(t, err)

	// τ = 0 reduces every edge to the payoff.
	assert.Equal(t, []float64{0, 0, 0, 50, 100}, b.Left(0))
	assert.Equal(t, []float64{0, 0, 0, 50, 100}, b.Right(0))
	assert.Equal(t, []float64{100, 100, 100, 100, 100}, b.Back(0))

	disc, drift := m.Discount(1), m.Drift(1)
	left := b.Left(1)
	assert.InDelta(t, disc*100, left[4], 1e-12)
	right := b.Right(1)
	assert.InDelta(t, disc*(150-strike)+200*drift, right[3], 1e-12)
	back := b.Back(1)
	assert.InDelta(t, disc*100+150*drift, back[3], 1e-12)

	slice, err := matrix.NewDense(5, 5)
	require.NoError(t, err)
	require.NoError(t, slice.Set(2, 1, 7))
	require.NoError(t, b.Apply(slice, 1))
	v, _ := slice.At(2, 0)
	assert.Equal(t, 7.0, v) // front copies column 1
	v, _ = slice.At(0, 4)
	assert.Equal(t, back[0], v) // corners take the back edge

	bad, err := matrix.NewDense(4, 5)
	require.NoError(t, err)
	require.ErrorIs(t, b.Apply(bad, 1), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, b.Front(nil), matrix.ErrNilMatrix)

	_, err = fdm.NewAsianBoundaries(m, c, vanillaGrid(t, 200, 10, 5))
	require.Error(t, err)
}

func TestExplicitAsian_CentralDifferencing(t *testing.T) {
	m := mustMarket(t, rate, vol)
	g := asianGrid(t, 40, 11)

	coef, err := fdm.AsianCoefficientsFor(m, g, fdm.Central)
	require.NoError(t, err)
	assert.NotZero(t, coef.Back[5])

	s, err := fdm.NewExplicitAsian(fdm.WithAverageDifferencing(fdm.Central)).
		ComputeAsian(m, mustContract(t, market.Asian, strike), g)
	require.NoError(t, err)
	assert.Equal(t, market.Asian, s.Kind())
}
