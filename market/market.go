package market

import (
	"fmt"
	"math"
)

// Market holds the constant risk-free rate and volatility of the underlying.
// It is a value type; copies are independent and safe to share.
type Market struct {
	interestRate float64
	volatility   float64
}

// New validates and returns a Market.
// The rate may be any finite number (negative rates are allowed);
// volatility must be finite and ≥ 0.
func New(interestRate, volatility float64) (Market, error) {
	if math.IsNaN(interestRate) || math.IsInf(interestRate, 0) {
		return Market{}, fmt.Errorf("%w: interest rate %g is not finite", ErrInvalidMarket, interestRate)
	}
	if math.IsNaN(volatility) || math.IsInf(volatility, 0) || volatility < 0 {
		return Market{}, fmt.Errorf("%w: volatility %g must be finite and non-negative", ErrInvalidMarket, volatility)
	}

	return Market{interestRate: interestRate, volatility: volatility}, nil
}

// InterestRate returns r.
func (m Market) InterestRate() float64 { return m.interestRate }

// Volatility returns σ.
func (m Market) Volatility() float64 { return m.volatility }

// Discount returns e^{−rτ}.
func (m Market) Discount(tau float64) float64 {
	return math.Exp(-m.interestRate * tau)
}

// Drift returns ∫₀^τ e^{−rs} ds = (1 − e^{−rτ})/r, which tends to τ as r → 0.
// It is the present value of a unit stream paid continuously over τ.
func (m Market) Drift(tau float64) float64 {
	r := m.interestRate
	if math.Abs(r*tau) < 1e-8 {
		// second-order series avoids 0/0 near r = 0
		return tau * (1 - r*tau/2)
	}

	return -math.Expm1(-r*tau) / r
}

// String renders the market for logs.
func (m Market) String() string {
	return fmt.Sprintf("r=%g sigma=%g", m.interestRate, m.volatility)
}
