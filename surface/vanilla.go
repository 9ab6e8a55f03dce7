package surface

import (
	"fmt"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
)

// Vanilla is a time × asset-price surface. Row n holds the values after n
// steps in time to maturity; row 0 is the payoff.
type Vanilla struct {
	g      *grid.Grid
	values *matrix.Dense
}

// NewVanilla takes ownership of values, which must be N_t × N_S for g.
// Engines call it once after the last step; nothing mutates values afterwards.
func NewVanilla(g *grid.Grid, values *matrix.Dense) (*Vanilla, error) {
	if g == nil || values == nil {
		return nil, fmt.Errorf("NewVanilla: %w", matrix.ErrNilMatrix)
	}
	if values.Rows() != g.Time().Len() || values.Cols() != g.AssetPrice().Len() {
		return nil, fmt.Errorf("NewVanilla: %dx%d for grid %v: %w",
			values.Rows(), values.Cols(), g.Shape(), ErrShapeMismatch)
	}

	return &Vanilla{g: g, values: values}, nil
}

// Kind returns market.Vanilla.
func (v *Vanilla) Kind() market.Kind { return market.Vanilla }

// Grid returns the grid the surface was computed on.
func (v *Vanilla) Grid() *grid.Grid { return v.g }

// TimeSteps returns N_t.
func (v *Vanilla) TimeSteps() int { return v.values.Rows() }

// AssetNodes returns N_S.
func (v *Vanilla) AssetNodes() int { return v.values.Cols() }

// At returns the value after n steps at asset node j.
func (v *Vanilla) At(n, j int) (float64, error) { return v.values.At(n, j) }

// Row returns a copy of time row n.
func (v *Vanilla) Row(n int) ([]float64, error) { return v.values.Row(n) }

// TerminalRow returns a copy of the last time row, the price at valuation date.
func (v *Vanilla) TerminalRow() []float64 {
	row, _ := v.values.Row(v.values.Rows() - 1)

	return row
}

// Terminal returns the last time row as a 1×N_S matrix.
func (v *Vanilla) Terminal() matrix.Matrix {
	m, _ := matrix.NewDense(1, v.values.Cols(), matrix.WithNoValidateNaNInf())
	_ = m.SetRow(0, v.TerminalRow())

	return m
}

// Values returns a copy of the whole surface.
func (v *Vanilla) Values() *matrix.Dense { return v.values.CloneDense() }
