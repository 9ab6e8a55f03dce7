package analytic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
)

// DeterministicCall is the σ → 0 limit of the call price at time to maturity T:
// max(S − K·e^{−rT}, 0). The market's volatility is ignored.
func DeterministicCall(s float64, m market.Market, c market.Contract) float64 {
	return math.Max(s-c.Strike()*m.Discount(c.Maturity()), 0)
}

// DeterministicCalls applies DeterministicCall to every asset price.
func DeterministicCalls(s []float64, m market.Market, c market.Contract) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = DeterministicCall(v, m, c)
	}

	return out
}

// ZeroVolatilityAsian is ZeroVolatilityAsianAt evaluated at τ = T.
func ZeroVolatilityAsian(assets, averages []float64, m market.Market, c market.Contract) (*matrix.Dense, error) {
	return ZeroVolatilityAsianAt(assets, averages, m, c, c.Maturity())
}

// ZeroVolatilityAsianAt returns the σ = 0 Asian call value on an
// len(assets) × len(averages) grid with τ left to maturity:
//
//	V(S, A) = max((A/T − K)·e^{−rτ} + S·Drift(τ)/T, 0)
//
// where A is the running integral of the price accumulated so far and
// Drift(τ) = (1 − e^{−rτ})/r. With zero volatility the future path is
// S·e^{rs}, so the remaining integral is known exactly.
//
// Errors: ErrNotAsian; matrix.ErrInvalidDimensions for an empty axis.
func ZeroVolatilityAsianAt(assets, averages []float64, m market.Market, c market.Contract, tau float64) (*matrix.Dense, error) {
	if c.Kind() != market.Asian {
		return nil, fmt.Errorf("%w: got %s", ErrNotAsian, c.Kind())
	}
	out, err := matrix.NewDense(len(assets), len(averages), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("ZeroVolatilityAsian: %w", err)
	}

	var (
		t     = c.Maturity()
		k     = c.Strike()
		disc  = m.Discount(tau)
		drift = m.Drift(tau) / t
	)
	err = out.Apply(func(i, j int, _ float64) float64 {
		return math.Max((averages[j]/t-k)*disc+assets[i]*drift, 0)
	})

	return out, err
}
