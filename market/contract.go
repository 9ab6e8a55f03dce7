package market

import (
	"fmt"
	"math"
	"strings"
)

// Kind distinguishes the supported contract families.
type Kind int

const (
	// Vanilla is a European call on the terminal asset price.
	Vanilla Kind = iota
	// Asian is a European call on the time-averaged asset price.
	Asian
)

// String returns "vanilla" or "asian".
func (k Kind) String() string {
	switch k {
	case Vanilla:
		return "vanilla"
	case Asian:
		return "asian"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "vanilla", "asian", and the "european"/"europian"
// spellings for vanilla. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vanilla", "european", "europian":
		return Vanilla, nil
	case "asian":
		return Asian, nil
	default:
		return 0, fmt.Errorf("%w: unknown option kind %q", ErrInvalidMarket, s)
	}
}

// Contract is an immutable call contract.
type Contract struct {
	kind     Kind
	strike   float64
	maturity float64
}

// NewContract validates and returns a Contract.
// Maturity must be finite and > 0; strike must be finite.
func NewContract(kind Kind, strike, maturity float64) (Contract, error) {
	if kind != Vanilla && kind != Asian {
		return Contract{}, fmt.Errorf("%w: unknown option kind %d", ErrInvalidMarket, int(kind))
	}
	if math.IsNaN(strike) || math.IsInf(strike, 0) {
		return Contract{}, fmt.Errorf("%w: strike %g is not finite", ErrInvalidMarket, strike)
	}
	if math.IsNaN(maturity) || math.IsInf(maturity, 0) || maturity <= 0 {
		return Contract{}, fmt.Errorf("%w: maturity %g must be finite and positive", ErrInvalidMarket, maturity)
	}

	return Contract{kind: kind, strike: strike, maturity: maturity}, nil
}

// Kind returns the contract family.
func (c Contract) Kind() Kind { return c.kind }

// Strike returns K.
func (c Contract) Strike() float64 { return c.strike }

// Maturity returns T.
func (c Contract) Maturity() float64 { return c.maturity }

// Payoff returns the value at expiry for one terminal state.
//
// For Vanilla, x is the asset price S and the payoff is max(S − K, 0).
// For Asian, x is the running integral A = ∫₀^T S dt and the payoff is
// max(A/T − K, 0).
func (c Contract) Payoff(x float64) float64 {
	if c.kind == Asian {
		return math.Max(x/c.maturity-c.strike, 0)
	}

	return math.Max(x-c.strike, 0)
}

// Payoffs applies Payoff to every element of xs and returns a new slice.
func (c Contract) Payoffs(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = c.Payoff(x)
	}

	return out
}

// String renders the contract for logs.
func (c Contract) String() string {
	return fmt.Sprintf("%s K=%g T=%g", c.kind, c.strike, c.maturity)
}
