package fdm

import (
	"fmt"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
)

// Stencil holds the three per-node coefficients of a one-dimensional scheme.
// Index j is the asset node; Lower multiplies node j−1, Center node j and
// Upper node j+1. Entries at the two boundary nodes are computed but unused.
type Stencil struct {
	Lower, Center, Upper []float64
}

// nodeIndex returns x_j = S_min/ΔS + j, the asset price in units of ΔS.
// It equals j when the asset axis starts at zero.
func nodeIndex(assets *grid.Axis, j int) float64 {
	return assets.Min()/assets.Step() + float64(j)
}

// ExplicitCoefficients returns the forward-Euler stencil
//
//	α_j = (−r·x_j/2 + σ²·x_j²/2)·Δt
//	β_j = 1 − (σ²·x_j² + r)·Δt
//	γ_j = (r + σ²·x_j)·x_j·Δt/2
//
// so that C[n+1][j] = α_j·C[n][j−1] + β_j·C[n][j] + γ_j·C[n][j+1].
// The coefficients are stationary: they depend on the grid steps and the
// market only, never on the time step.
func ExplicitCoefficients(m market.Market, g *grid.Grid) Stencil {
	assets := g.AssetPrice()
	dt := g.Time().Step()
	r, v2 := m.InterestRate(), m.Volatility()*m.Volatility()

	n := assets.Len()
	st := Stencil{Lower: make([]float64, n), Center: make([]float64, n), Upper: make([]float64, n)}
	for j := 0; j < n; j++ {
		x := nodeIndex(assets, j)
		st.Lower[j] = (-r*x/2 + v2*x*x/2) * dt
		st.Center[j] = 1 - (v2*x*x+r)*dt
		st.Upper[j] = (r + v2*x) * x * dt / 2
	}

	return st
}

// ImplicitCoefficients returns the backward-Euler stencil
//
//	a_j = ½·Δt·(r·x_j − σ²·x_j²)
//	b_j = 1 + Δt·(σ²·x_j² + r)
//	c_j = −½·Δt·(σ²·x_j² + r·x_j)
//
// so that a_j·C[n+1][j−1] + b_j·C[n+1][j] + c_j·C[n+1][j+1] = C[n][j].
func ImplicitCoefficients(m market.Market, g *grid.Grid) Stencil {
	assets := g.AssetPrice()
	dt := g.Time().Step()
	r, v2 := m.InterestRate(), m.Volatility()*m.Volatility()

	n := assets.Len()
	st := Stencil{Lower: make([]float64, n), Center: make([]float64, n), Upper: make([]float64, n)}
	for j := 0; j < n; j++ {
		x := nodeIndex(assets, j)
		st.Lower[j] = dt * (r*x - v2*x*x) / 2
		st.Center[j] = 1 + dt*(v2*x*x+r)
		st.Upper[j] = -dt * (v2*x*x + r*x) / 2
	}

	return st
}

// AsianCoefficients holds the five stationary coefficient vectors of the
// explicit Asian scheme, all indexed by asset node i:
//
//	C'[i][k] = Center[i]·C[i][k] + Left[i]·C[i−1][k] + Right[i]·C[i+1][k]
//	         + Back[i]·C[i][k−1] + Front[i]·C[i][k+1]
type AsianCoefficients struct {
	Center, Left, Right, Front, Back []float64
}

// AsianCoefficientsFor derives the Asian coefficients from the market and grid.
//
// Along S the stencil is the vanilla one:
//
//	Left_i  = ½Δt(σ²x_i² − r·x_i)
//	Right_i = ½Δt(σ²x_i² + r·x_i)
//	Center_i = 1 − Δt(σ²x_i² + r)
//
// Along A the running integral grows at rate S_i = x_i·ΔS:
//
//	Upwind:  Front_i = S_i·Δt/ΔA, Back_i = 0, Center_i −= Front_i
//	Central: Front_i = S_i·Δt/(2ΔA), Back_i = −Front_i
//
// Returns grid.ErrInvalidGrid when g has no average-price axis.
func AsianCoefficientsFor(m market.Market, g *grid.Grid, d AverageDifferencing) (AsianCoefficients, error) {
	averages, ok := g.AveragePrice()
	if !ok {
		return AsianCoefficients{}, fmt.Errorf("%w: asian coefficients need an %s axis", grid.ErrInvalidGrid, grid.AveragePrice)
	}
	if d != Upwind && d != Central {
		return AsianCoefficients{}, fmt.Errorf("%w: %s", ErrUnsupportedCombination, d)
	}
	assets := g.AssetPrice()
	dt, ds, da := g.Time().Step(), assets.Step(), averages.Step()
	r, v2 := m.InterestRate(), m.Volatility()*m.Volatility()

	n := assets.Len()
	ac := AsianCoefficients{
		Center: make([]float64, n),
		Left:   make([]float64, n),
		Right:  make([]float64, n),
		Front:  make([]float64, n),
		Back:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		x := nodeIndex(assets, i)
		ac.Left[i] = dt * (v2*x*x - r*x) / 2
		ac.Right[i] = dt * (v2*x*x + r*x) / 2
		ac.Center[i] = 1 - dt*(v2*x*x+r)

		advect := x * ds * dt / da
		switch d {
		case Upwind:
			ac.Front[i] = advect
			ac.Center[i] -= advect
		case Central:
			ac.Front[i] = advect / 2
			ac.Back[i] = -advect / 2
		}
	}

	return ac, nil
}
