package fdm

import (
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
	"github.com/katalvlaran/optionfdm/surface"
)

const engineExplicitVanilla = "explicit-vanilla"

// ExplicitVanilla prices a European call with forward Euler in time to maturity.
//
// Algorithm:
//  1. Row 0 is the payoff max(S_j − K, 0).
//  2. For each step n → n+1 the interior is
//     C[n+1][j] = α_j·C[n][j−1] + β_j·C[n][j] + γ_j·C[n][j+1].
//  3. C[n+1][0] = 0 and C[n+1][J] = S_max − K·e^{−rτ_{n+1}}.
//
// Stability is the caller's concern: roughly σ²·J²·Δt ≤ 1 is needed. An
// unstable grid is not an error; the diverged surface is returned as is.
//
// Complexity: O(N_t·N_S) time and memory.
type ExplicitVanilla struct {
	opts Options
}

// NewExplicitVanilla returns an explicit vanilla engine.
func NewExplicitVanilla(opts ...Option) *ExplicitVanilla {
	return &ExplicitVanilla{opts: gatherOptions(opts...)}
}

// ComputePrices implements Engine.
func (e *ExplicitVanilla) ComputePrices(m market.Market, c market.Contract, g *grid.Grid) (surface.Surface, error) {
	return e.ComputeVanilla(m, c, g)
}

// ComputeVanilla is ComputePrices with the concrete surface type.
func (e *ExplicitVanilla) ComputeVanilla(m market.Market, c market.Contract, g *grid.Grid) (*surface.Vanilla, error) {
	if err := checkInputs(engineExplicitVanilla, market.Vanilla, c, g); err != nil {
		return nil, err
	}
	start := time.Now()
	log := e.opts.logger.WithFields(runFields(engineExplicitVanilla, m, c, g))
	log.Debug("computing prices")

	times, assets := g.Time(), g.AssetPrice()
	nt, ns := times.Len(), assets.Len()
	values, err := matrix.NewDense(nt, ns, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	if err = values.SetRow(0, c.Payoffs(assets.Nodes())); err != nil {
		return nil, err
	}

	st := ExplicitCoefficients(m, g)
	sMax := assets.Max()
	last := ns - 1
	for n := 0; n < nt-1; n++ {
		cur, _ := values.RowView(n)
		next, _ := values.RowView(n + 1)
		for j := 1; j < last; j++ {
			next[j] = st.Lower[j]*cur[j-1] + st.Center[j]*cur[j] + st.Upper[j]*cur[j+1]
		}
		next[0] = 0
		next[last] = vanillaRight(m, c, sMax, tau(times, n+1))

		if (n+1)%e.opts.progressEvery == 0 {
			log.WithFields(logrus.Fields{"step": n + 1, "min": floats.Min(next), "max": floats.Max(next)}).Debug("progress")
		}
	}

	log.WithField("elapsed", time.Since(start)).Debug("prices computed")

	return surface.NewVanilla(g, values)
}
