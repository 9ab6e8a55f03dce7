package surface

import (
	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
)

// Surface is the read-only result of one engine run.
type Surface interface {
	// Kind reports which contract family was priced.
	Kind() market.Kind
	// Grid returns the grid the surface was computed on.
	Grid() *grid.Grid
	// Terminal returns a copy of the last time slice: 1×N_S for vanilla,
	// N_S×N_A for Asian.
	Terminal() matrix.Matrix
}

// Compile-time conformance.
var (
	_ Surface = (*Vanilla)(nil)
	_ Surface = (*Asian)(nil)
)
