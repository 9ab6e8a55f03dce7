package market_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/optionfdm/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := market.New(0.05, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.05, m.InterestRate())
	assert.Equal(t, 0.2, m.Volatility())
	assert.Equal(t, "r=0.05 sigma=0.2", m.String())

	_, err = market.New(-0.01, 0) // negative rate, zero volatility are valid
	require.NoError(t, err)

	for _, bad := range [][2]float64{
		{0.05, -0.2},
		{0.05, math.NaN()},
		{0.05, math.Inf(1)},
		{math.NaN(), 0.2},
		{math.Inf(-1), 0.2},
	} {
		_, err = market.New(bad[0], bad[1])
		require.ErrorIs(t, err, market.ErrInvalidMarket, "r=%g sigma=%g", bad[0], bad[1])
	}
}

func TestDiscountDrift(t *testing.T) {
	m, err := market.New(0.05, 0.2)
	require.NoError(t, err)

	assert.InDelta(t, math.Exp(-0.05), m.Discount(1), 1e-15)
	assert.Equal(t, 1.0, m.Discount(0))
	assert.InDelta(t, (1-math.Exp(-0.05))/0.05, m.Drift(1), 1e-14)
	assert.Equal(t, 0.0, m.Drift(0))

	zero, err := market.New(0, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, zero.Drift(2.5)) // r → 0 limit is τ

	tiny, err := market.New(1e-12, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tiny.Drift(1), 1e-11) // continuous across r = 0
}

func TestParseKind(t *testing.T) {
	cases := map[string]market.Kind{
		"vanilla":  market.Vanilla,
		"European": market.Vanilla,
		"europian": market.Vanilla,
		" ASIAN ":  market.Asian,
	}
	for in, want := range cases {
		got, err := market.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := market.ParseKind("american")
	require.ErrorIs(t, err, market.ErrInvalidMarket)

	assert.Equal(t, "vanilla", market.Vanilla.String())
	assert.Equal(t, "asian", market.Asian.String())
	assert.Equal(t, "Kind(9)", market.Kind(9).String())
}

func TestNewContract(t *testing.T) {
	c, err := market.NewContract(market.Vanilla, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, market.Vanilla, c.Kind())
	assert.Equal(t, 100.0, c.Strike())
	assert.Equal(t, 1.0, c.Maturity())
	assert.Equal(t, "vanilla K=100 T=1", c.String())

	cases := []struct {
		name     string
		kind     market.Kind
		strike   float64
		maturity float64
	}{
		{"zero maturity", market.Vanilla, 100, 0},
		{"negative maturity", market.Asian, 100, -1},
		{"inf maturity", market.Vanilla, 100, math.Inf(1)},
		{"nan strike", market.Vanilla, math.NaN(), 1},
		{"unknown kind", market.Kind(5), 100, 1},
	}
	for _, tc := range cases {
		_, err := market.NewContract(tc.kind, tc.strike, tc.maturity)
		require.ErrorIs(t, err, market.ErrInvalidMarket, tc.name)
	}
}

func TestPayoff(t *testing.T) {
	vanilla, err := market.NewContract(market.Vanilla, 100, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 20}, vanilla.Payoffs([]float64{50, 100, 120}))

	// Asian payoff divides the running integral by maturity.
	asian, err := market.NewContract(market.Asian, 100, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, asian.Payoff(150))  // average 75
	assert.Equal(t, 0.0, asian.Payoff(200))  // average 100
	assert.Equal(t, 10.0, asian.Payoff(220)) // average 110
	assert.Equal(t, []float64{0, 10}, asian.Payoffs([]float64{0, 220}))
}
