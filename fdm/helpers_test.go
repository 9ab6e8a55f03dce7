package fdm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optionfdm/analytic"
	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
)

// Textbook inputs shared by the tests: K=100, T=1, r=5%, σ=20%.
const (
	strike   = 100.0
	maturity = 1.0
	rate     = 0.05
	vol      = 0.2
)

func mustMarket(t testing.TB, r, sigma float64) market.Market {
	t.Helper()
	m, err := market.New(r, sigma)
	require.NoError(t, err)

	return m
}

func mustContract(t testing.TB, kind market.Kind, k float64) market.Contract {
	t.Helper()
	c, err := market.NewContract(kind, k, maturity)
	require.NoError(t, err)

	return c
}

func vanillaGrid(t testing.TB, sMax float64, timeNodes, assetNodes int) *grid.Grid {
	t.Helper()
	g, err := grid.New(
		grid.AxisSpec{Name: grid.Time, Min: 0, Max: maturity, Nodes: timeNodes},
		grid.AxisSpec{Name: grid.AssetPrice, Min: 0, Max: sMax, Nodes: assetNodes},
	)
	require.NoError(t, err)

	return g
}

func asianGrid(t testing.TB, timeNodes, nodes int) *grid.Grid {
	t.Helper()
	g, err := grid.New(
		grid.AxisSpec{Name: grid.Time, Min: 0, Max: maturity, Nodes: timeNodes},
		grid.AxisSpec{Name: grid.AssetPrice, Min: 0, Max: 200, Nodes: nodes},
		grid.AxisSpec{Name: grid.AveragePrice, Min: 0, Max: 200, Nodes: nodes},
	)
	require.NoError(t, err)

	return g
}

// maxAnalyticError returns max_j |BS(S_j) − row_j|.
func maxAnalyticError(t testing.TB, m market.Market, c market.Contract, assets, row []float64) float64 {
	t.Helper()
	bs, err := analytic.NewBlackScholes(m, c)
	require.NoError(t, err)

	worst := 0.0
	for j, s := range assets {
		worst = math.Max(worst, math.Abs(bs.Price(s)-row[j]))
	}

	return worst
}

// maxDeterministicError returns max_j |max(S_j − K e^{−rT}, 0) − row_j|.
func maxDeterministicError(m market.Market, c market.Contract, assets, row []float64) float64 {
	ref := analytic.DeterministicCalls(assets, m, c)
	worst := 0.0
	for j := range assets {
		worst = math.Max(worst, math.Abs(ref[j]-row[j]))
	}

	return worst
}

// maxAbs returns the largest |v| in row, or +Inf if any entry is not finite.
func maxAbs(row []float64) float64 {
	worst := 0.0
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.Inf(1)
		}
		worst = math.Max(worst, math.Abs(v))
	}

	return worst
}
