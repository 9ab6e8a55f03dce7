package analytic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/optionfdm/market"
)

// BlackScholes prices a European call in closed form.
//
//	d1 = (ln(S/K) + (r + σ²/2)T) / (σ√T)
//	d2 = d1 − σ√T
//	C  = S·N(d1) − K·e^{−rT}·N(d2)
//
// N is the standard normal CDF (erf-based, from gonum distuv).
// It is a validation oracle for the vanilla engines, not part of the
// numerical price path.
type BlackScholes struct {
	m    market.Market
	c    market.Contract
	norm distuv.Normal
}

// NewBlackScholes binds a market and a vanilla contract.
// Returns ErrNotVanilla for any other contract kind.
func NewBlackScholes(m market.Market, c market.Contract) (*BlackScholes, error) {
	if c.Kind() != market.Vanilla {
		return nil, fmt.Errorf("%w: got %s", ErrNotVanilla, c.Kind())
	}

	return &BlackScholes{m: m, c: c, norm: distuv.UnitNormal}, nil
}

// Price returns the call value at asset price s.
//
// s = 0 prices to 0. σ = 0 away from the strike, or with r·T > 0, gives the
// deterministic value. s < 0, and σ = 0 with r·T = 0 at s = K, yield NaN;
// callers must not pass them.
func (bs *BlackScholes) Price(s float64) float64 {
	var (
		k     = bs.c.Strike()
		t     = bs.c.Maturity()
		r     = bs.m.InterestRate()
		sigma = bs.m.Volatility()
		volT  = sigma * math.Sqrt(t)
	)
	d1 := (math.Log(s/k) + (r+sigma*sigma/2)*t) / volT
	d2 := d1 - volT

	return s*bs.norm.CDF(d1) - k*math.Exp(-r*t)*bs.norm.CDF(d2)
}

// Prices applies Price to each element of s and returns a slice of the same length.
func (bs *BlackScholes) Prices(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = bs.Price(v)
	}

	return out
}

// Market returns the bound market.
func (bs *BlackScholes) Market() market.Market { return bs.m }

// Contract returns the bound contract.
func (bs *BlackScholes) Contract() market.Contract { return bs.c }
