package surface

import (
	"fmt"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/matrix"
)

// Asian is a time × asset-price × running-integral surface.
//
// The terminal N_S × N_A slice is always present. Intermediate slices exist
// only when the engine ran with history; otherwise they are reported as
// ErrSliceNotRetained.
type Asian struct {
	g        *grid.Grid
	steps    int
	terminal *matrix.Dense
	history  []*matrix.Dense // nil, or one slice per time node
}

// NewAsian takes ownership of terminal and history.
// history is either nil or holds exactly N_t slices, the last being terminal.
func NewAsian(g *grid.Grid, terminal *matrix.Dense, history []*matrix.Dense) (*Asian, error) {
	if g == nil || terminal == nil {
		return nil, fmt.Errorf("NewAsian: %w", matrix.ErrNilMatrix)
	}
	avg, ok := g.AveragePrice()
	if !ok {
		return nil, fmt.Errorf("NewAsian: %w: %w", ErrShapeMismatch, grid.ErrInvalidGrid)
	}
	ns, na := g.AssetPrice().Len(), avg.Len()
	if err := checkSlice(terminal, ns, na); err != nil {
		return nil, fmt.Errorf("NewAsian: terminal: %w", err)
	}
	steps := g.Time().Len()
	if history != nil {
		if len(history) != steps {
			return nil, fmt.Errorf("NewAsian: %d slices for %d time nodes: %w", len(history), steps, ErrShapeMismatch)
		}
		for n, s := range history {
			if err := checkSlice(s, ns, na); err != nil {
				return nil, fmt.Errorf("NewAsian: slice %d: %w", n, err)
			}
		}
	}

	return &Asian{g: g, steps: steps, terminal: terminal, history: history}, nil
}

func checkSlice(s *matrix.Dense, rows, cols int) error {
	if s == nil {
		return matrix.ErrNilMatrix
	}
	if s.Rows() != rows || s.Cols() != cols {
		return fmt.Errorf("%dx%d, want %dx%d: %w", s.Rows(), s.Cols(), rows, cols, ErrShapeMismatch)
	}

	return nil
}

// Kind returns market.Asian.
func (a *Asian) Kind() market.Kind { return market.Asian }

// Grid returns the grid the surface was computed on.
func (a *Asian) Grid() *grid.Grid { return a.g }

// Steps returns N_t, the number of time nodes.
func (a *Asian) Steps() int { return a.steps }

// HasSlice reports whether slice n can be read.
func (a *Asian) HasSlice(n int) bool {
	if n < 0 || n >= a.steps {
		return false
	}

	return n == a.steps-1 || a.history != nil
}

func (a *Asian) slice(n int) (*matrix.Dense, error) {
	if n < 0 || n >= a.steps {
		return nil, fmt.Errorf("slice %d of %d: %w", n, a.steps, ErrTimeStep)
	}
	if n == a.steps-1 {
		return a.terminal, nil
	}
	if a.history == nil {
		return nil, fmt.Errorf("slice %d: %w", n, ErrSliceNotRetained)
	}

	return a.history[n], nil
}

// Slice returns a copy of the N_S × N_A slice after n steps.
func (a *Asian) Slice(n int) (matrix.Matrix, error) {
	s, err := a.slice(n)
	if err != nil {
		return nil, err
	}

	return s.Clone(), nil
}

// At returns the value after n steps at asset node i and average node k.
func (a *Asian) At(n, i, k int) (float64, error) {
	s, err := a.slice(n)
	if err != nil {
		return 0, err
	}

	return s.At(i, k)
}

// TerminalAt returns the terminal value at asset node i and average node k.
func (a *Asian) TerminalAt(i, k int) (float64, error) { return a.terminal.At(i, k) }

// Terminal returns a copy of the terminal slice.
func (a *Asian) Terminal() matrix.Matrix { return a.terminal.Clone() }
