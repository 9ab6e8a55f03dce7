package fdm

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
	"github.com/katalvlaran/optionfdm/surface"
)

const engineExplicitAsian = "explicit-asian"

// ExplicitAsian prices an arithmetic-average Asian call on an
// (asset price, running integral) grid with forward Euler in time to maturity.
//
// Algorithm:
//  1. Slice 0 is the payoff max(A_k/T − K, 0), broadcast over every S row.
//  2. Each step updates the interior from five neighbours using the
//     stationary AsianCoefficients.
//  3. AsianBoundaries.Apply then writes the four edges for τ_{n+1}.
//
// Only the current and next slice are held unless WithHistory is set. With
// WithWorkers(n > 1) the interior rows of one step are split across n
// goroutines; the step completes before the next one starts.
//
// Complexity: O(N_t·N_S·N_A) time; O(N_S·N_A) memory, or O(N_t·N_S·N_A)
// with history.
type ExplicitAsian struct {
	opts Options
}

// NewExplicitAsian returns an explicit Asian engine.
func NewExplicitAsian(opts ...Option) *ExplicitAsian {
	return &ExplicitAsian{opts: gatherOptions(opts...)}
}

// ComputePrices implements Engine.
func (e *ExplicitAsian) ComputePrices(m market.Market, c market.Contract, g *grid.Grid) (surface.Surface, error) {
	return e.ComputeAsian(m, c, g)
}

// ComputeAsian is ComputePrices with the concrete surface type.
func (e *ExplicitAsian) ComputeAsian(m market.Market, c market.Contract, g *grid.Grid) (*surface.Asian, error) {
	if err := checkInputs(engineExplicitAsian, market.Asian, c, g); err != nil {
		return nil, err
	}
	coef, err := AsianCoefficientsFor(m, g, e.opts.differencing)
	if err != nil {
		return nil, err
	}
	bounds, err := NewAsianBoundaries(m, c, g)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	log := e.opts.logger.WithFields(runFields(engineExplicitAsian, m, c, g)).
		WithFields(logrus.Fields{"differencing": e.opts.differencing, "workers": e.opts.workers})
	log.Debug("computing prices")

	averages, _ := g.AveragePrice()
	times := g.Time()
	nt, ns, na := times.Len(), g.AssetPrice().Len(), averages.Len()

	alloc := func() (*matrix.Dense, error) {
		return matrix.NewDense(ns, na, matrix.WithNoValidateNaNInf())
	}
	var history []*matrix.Dense
	if e.opts.history {
		history = make([]*matrix.Dense, nt)
	}

	cur, err := alloc()
	if err != nil {
		return nil, err
	}
	payoff := c.Payoffs(averages.Nodes())
	for i := 0; i < ns; i++ {
		_ = cur.SetRow(i, payoff)
	}
	if history != nil {
		history[0] = cur
	}
	next, err := alloc()
	if err != nil {
		return nil, err
	}

	for n := 0; n < nt-1; n++ {
		if err = e.step(coef, cur, next); err != nil {
			return nil, err
		}
		if err = bounds.Apply(next, tau(times, n+1)); err != nil {
			return nil, err
		}

		if (n+1)%e.opts.progressEvery == 0 {
			log.WithFields(logrus.Fields{"step": n + 1, "min": sliceMin(next)}).Debug("progress")
		}

		if history != nil {
			history[n+1] = next
			cur = next
			if n+2 < nt {
				if next, err = alloc(); err != nil {
					return nil, err
				}
			}
		} else {
			cur, next = next, cur
		}
	}

	log.WithField("elapsed", time.Since(start)).Debug("prices computed")

	return surface.NewAsian(g, cur, history)
}

// step writes the interior of next from cur. Rows are independent, so they
// are split into contiguous blocks, one per worker.
func (e *ExplicitAsian) step(coef AsianCoefficients, cur, next *matrix.Dense) error {
	interior := cur.Rows() - 2
	if interior <= 0 || cur.Cols() <= 2 {
		return nil
	}
	workers := e.opts.workers
	if workers > interior {
		workers = interior
	}
	if workers == 1 {
		updateRows(coef, cur, next, 1, cur.Rows()-1)
		return nil
	}

	var eg errgroup.Group
	block := (interior + workers - 1) / workers
	for lo := 1; lo < cur.Rows()-1; lo += block {
		lo, hi := lo, min(lo+block, cur.Rows()-1)
		eg.Go(func() error {
			updateRows(coef, cur, next, lo, hi)
			return nil
		})
	}

	return eg.Wait()
}

// updateRows applies the five-point stencil to rows [lo, hi) and interior columns.
func updateRows(coef AsianCoefficients, cur, next *matrix.Dense, lo, hi int) {
	lastK := cur.Cols() - 1
	for i := lo; i < hi; i++ {
		below, _ := cur.RowView(i - 1)
		mid, _ := cur.RowView(i)
		above, _ := cur.RowView(i + 1)
		out, _ := next.RowView(i)
		cc, cl, cr, cf, cb := coef.Center[i], coef.Left[i], coef.Right[i], coef.Front[i], coef.Back[i]
		for k := 1; k < lastK; k++ {
			out[k] = cc*mid[k] + cl*below[k] + cr*above[k] + cb*mid[k-1] + cf*mid[k+1]
		}
	}
}

// sliceMin returns the smallest value in slice.
func sliceMin(slice *matrix.Dense) float64 {
	lo := math.Inf(1)
	for i := 0; i < slice.Rows(); i++ {
		row, _ := slice.RowView(i)
		lo = math.Min(lo, floats.Min(row))
	}

	return lo
}
