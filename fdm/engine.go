package fdm

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
)

// New selects the engine for a (kind, scheme) pair.
//
//	vanilla × explicit → *ExplicitVanilla
//	vanilla × implicit → *ImplicitVanilla
//	asian   × explicit → *ExplicitAsian
//
// Any other pair, including asian × implicit, fails with ErrUnsupportedCombination.
func New(kind market.Kind, scheme Scheme, opts ...Option) (Engine, error) {
	switch {
	case kind == market.Vanilla && scheme == Explicit:
		return NewExplicitVanilla(opts...), nil
	case kind == market.Vanilla && scheme == Implicit:
		return NewImplicitVanilla(opts...), nil
	case kind == market.Asian && scheme == Explicit:
		return NewExplicitAsian(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s × %s", ErrUnsupportedCombination, kind, scheme)
	}
}

// checkInputs validates what the grid and market packages cannot see:
// the contract kind against the engine, and the presence of the grid.
func checkInputs(engine string, want market.Kind, c market.Contract, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%s: %w: nil grid", engine, grid.ErrInvalidGrid)
	}
	if c.Kind() != want {
		return fmt.Errorf("%s: %w: contract kind %s", engine, ErrUnsupportedCombination, c.Kind())
	}

	return nil
}

// tau returns the time to maturity after n steps: t_n − t_0.
func tau(times *grid.Axis, n int) float64 {
	return times.Node(n) - times.Min()
}

// runFields are the structured log fields shared by every engine entry.
func runFields(engine string, m market.Market, c market.Contract, g *grid.Grid) logrus.Fields {
	return logrus.Fields{
		"engine":   engine,
		"market":   m.String(),
		"contract": c.String(),
		"shape":    g.Shape(),
		"dt":       g.Time().Step(),
	}
}
