package fdm

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
	"github.com/katalvlaran/optionfdm/surface"
)

const engineImplicitVanilla = "implicit-vanilla"

// ImplicitVanilla prices a European call with backward Euler in time to maturity.
//
// Algorithm:
//  1. Boundary values for every time node are computed up front:
//     left 0, right S_max − K·e^{−rτ_n}.
//  2. The interior operator (a_j, b_j, c_j), j = 1..J−1, is time-invariant;
//     its Thomas forward elimination runs once.
//  3. Each step solves M·C[n+1] = C[n], with the known boundary values moved
//     to the right-hand side: d_1 −= a_1·left, d_{J−1} −= c_{J−1}·right.
//
// Unconditionally stable for r ≥ 0. A zero elimination pivot fails with
// ErrSingularSystem before any step is taken.
//
// Complexity: O(N_t·N_S) time and memory; O(N_S) per step.
type ImplicitVanilla struct {
	opts Options
}

// NewImplicitVanilla returns an implicit vanilla engine.
func NewImplicitVanilla(opts ...Option) *ImplicitVanilla {
	return &ImplicitVanilla{opts: gatherOptions(opts...)}
}

// ComputePrices implements Engine.
func (e *ImplicitVanilla) ComputePrices(m market.Market, c market.Contract, g *grid.Grid) (surface.Surface, error) {
	return e.ComputeVanilla(m, c, g)
}

// ComputeVanilla is ComputePrices with the concrete surface type.
func (e *ImplicitVanilla) ComputeVanilla(m market.Market, c market.Contract, g *grid.Grid) (*surface.Vanilla, error) {
	if err := checkInputs(engineImplicitVanilla, market.Vanilla, c, g); err != nil {
		return nil, err
	}
	start := time.Now()
	log := e.opts.logger.WithFields(runFields(engineImplicitVanilla, m, c, g))
	log.Debug("computing prices")

	times, assets := g.Time(), g.AssetPrice()
	nt, ns := times.Len(), assets.Len()
	last := ns - 1

	left := make([]float64, nt)
	right := make([]float64, nt)
	for n := range right {
		right[n] = vanillaRight(m, c, assets.Max(), tau(times, n))
	}

	var factor *matrix.ThomasFactor
	st := ImplicitCoefficients(m, g)
	if last > 1 {
		tri, err := matrix.NewTridiagonal(st.Lower[1:last], st.Center[1:last], st.Upper[1:last])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", engineImplicitVanilla, err)
		}
		if factor, err = tri.Factorize(); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", engineImplicitVanilla, ErrSingularSystem, err)
		}
	}

	values, err := matrix.NewDense(nt, ns, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	if err = values.SetRow(0, c.Payoffs(assets.Nodes())); err != nil {
		return nil, err
	}

	for n := 0; n < nt-1; n++ {
		cur, _ := values.RowView(n)
		next, _ := values.RowView(n + 1)
		next[0], next[last] = left[n+1], right[n+1]
		if factor != nil {
			interior := next[1:last]
			copy(interior, cur[1:last])
			interior[0] -= st.Lower[1] * left[n+1]
			interior[len(interior)-1] -= st.Upper[last-1] * right[n+1]
			if err = factor.SolveInto(interior, interior); err != nil {
				return nil, fmt.Errorf("%s: step %d: %w", engineImplicitVanilla, n+1, err)
			}
		}

		if (n+1)%e.opts.progressEvery == 0 {
			log.WithFields(logrus.Fields{"step": n + 1, "min": floats.Min(next), "max": floats.Max(next)}).Debug("progress")
		}
	}

	log.WithField("elapsed", time.Since(start)).Debug("prices computed")

	return surface.NewVanilla(g, values)
}
