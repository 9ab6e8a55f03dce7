package fdm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/optionfdm/grid"
	"github.com/katalvlaran/optionfdm/market"
	"github.com/katalvlaran/optionfdm/surface"
)

// Engine computes a full price surface for one contract on one grid.
//
// Implementations are stateless between calls: every call allocates its own
// surface and shares nothing with concurrent calls.
type Engine interface {
	ComputePrices(m market.Market, c market.Contract, g *grid.Grid) (surface.Surface, error)
}

// Scheme selects the time discretization.
type Scheme int

const (
	// Explicit is forward Euler in time to maturity; conditionally stable.
	Explicit Scheme = iota
	// Implicit is backward Euler; unconditionally stable, one tridiagonal solve per step.
	Implicit
)

// String returns "explicit" or "implicit".
func (s Scheme) String() string {
	switch s {
	case Explicit:
		return "explicit"
	case Implicit:
		return "implicit"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme maps "explicit" or "implicit" (case-insensitive) to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "explicit":
		return Explicit, nil
	case "implicit":
		return Implicit, nil
	default:
		return 0, fmt.Errorf("%w: unknown scheme %q", ErrUnsupportedCombination, s)
	}
}

// AverageDifferencing selects how ∂V/∂A is discretized in the Asian engine.
type AverageDifferencing int

const (
	// Upwind uses the forward difference (V[k+1] − V[k])/ΔA, following the
	// direction the running integral moves in. Stable when
	// Δt·(σ²x² + r + S/ΔA) ≤ 1 at every asset node.
	Upwind AverageDifferencing = iota
	// Central uses (V[k+1] − V[k−1])/(2ΔA) with the same S stencil as Upwind.
	// Second order but, having no diffusion along A, it amplifies the
	// A-direction modes every step.
	Central
)

// String returns "upwind" or "central".
func (d AverageDifferencing) String() string {
	switch d {
	case Upwind:
		return "upwind"
	case Central:
		return "central"
	default:
		return fmt.Sprintf("AverageDifferencing(%d)", int(d))
	}
}

// ParseAverageDifferencing maps "upwind" or "central" to its value.
func ParseAverageDifferencing(s string) (AverageDifferencing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upwind", "":
		return Upwind, nil
	case "central":
		return Central, nil
	default:
		return 0, fmt.Errorf("%w: unknown average differencing %q", ErrUnsupportedCombination, s)
	}
}
