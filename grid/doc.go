// Package grid builds the uniform axes a finite-difference run is computed on.
//
// A Grid holds a time axis, an asset-price axis and, for Asian contracts, a
// running-average axis. Each axis is a closed interval [min, max] split into
// n ≥ 2 evenly spaced nodes with step Δ = (max − min)/(n − 1).
//
// Usage:
//
//	g, err := grid.New(
//	  grid.AxisSpec{Name: grid.Time, Min: 0, Max: 1, Nodes: 1000},
//	  grid.AxisSpec{Name: grid.AssetPrice, Min: 0, Max: 300, Nodes: 121},
//	)
//	if errors.Is(err, grid.ErrInvalidGrid) {
//	  // bad bounds or node counts
//	}
//
// Node values are computed in closed form rather than by repeated addition,
// so identical specs always produce bit-identical axes.
package grid
