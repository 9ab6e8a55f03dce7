package grid

import (
	"math"
)

// Grid is an ordered set of named axes.
//
// A Grid always carries Time and AssetPrice; AveragePrice is optional.
// Grids are immutable once built and may be shared read-only.
type Grid struct {
	axes [numAxes]*Axis
}

// New builds a Grid from axis specs, in any order.
//
// Validation, each failure wrapping ErrInvalidGrid:
//   - unknown axis name or duplicate axis,
//   - Nodes < 2 (the step would be undefined),
//   - NaN/±Inf bounds or Min >= Max,
//   - missing Time or AssetPrice axis.
func New(specs ...AxisSpec) (*Grid, error) {
	g := &Grid{}
	for _, s := range specs {
		if !s.Name.valid() {
			return nil, invalidf(s.Name.String(), "unknown axis %d", int(s.Name))
		}
		if g.axes[s.Name] != nil {
			return nil, invalidf(s.Name.String(), "duplicate axis")
		}
		a, err := newAxis(s)
		if err != nil {
			return nil, err
		}
		g.axes[s.Name] = a
	}
	for _, required := range []AxisName{Time, AssetPrice} {
		if g.axes[required] == nil {
			return nil, invalidf(required.String(), "axis is required")
		}
	}

	return g, nil
}

func newAxis(s AxisSpec) (*Axis, error) {
	name := s.Name.String()
	if s.Nodes < 2 {
		return nil, invalidf(name, "node count %d < 2", s.Nodes)
	}
	if isBad(s.Min) || isBad(s.Max) {
		return nil, invalidf(name, "non-finite bounds [%g, %g]", s.Min, s.Max)
	}
	if s.Min >= s.Max {
		return nil, invalidf(name, "interval [%g, %g] is empty", s.Min, s.Max)
	}
	nodes, _ := Linspace(s.Min, s.Max, s.Nodes)

	return &Axis{
		name:  s.Name,
		min:   s.Min,
		max:   s.Max,
		step:  (s.Max - s.Min) / float64(s.Nodes-1),
		nodes: nodes,
	}, nil
}

func isBad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Linspace returns n evenly spaced values over [lo, hi], both ends included.
//
// Node i is lo + (hi−lo)·i/(n−1); the last node is pinned to hi so rounding
// never moves the right endpoint.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, invalidf("linspace", "node count %d < 2", n)
	}
	out := make([]float64, n)
	span, den := hi-lo, float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = lo + span*float64(i)/den
	}
	out[n-1] = hi

	return out, nil
}

// Time returns the time axis.
func (g *Grid) Time() *Axis { return g.axes[Time] }

// AssetPrice returns the asset-price axis.
func (g *Grid) AssetPrice() *Axis { return g.axes[AssetPrice] }

// AveragePrice returns the average-price axis, if the grid has one.
func (g *Grid) AveragePrice() (*Axis, bool) {
	a := g.axes[AveragePrice]

	return a, a != nil
}

// Axis looks an axis up by name.
func (g *Grid) Axis(name AxisName) (*Axis, bool) {
	if !name.valid() {
		return nil, false
	}
	a := g.axes[name]

	return a, a != nil
}

// Shape returns the node counts in axis order: time, asset_price[, average_price].
func (g *Grid) Shape() []int {
	shape := make([]int, 0, numAxes)
	for _, a := range g.axes {
		if a != nil {
			shape = append(shape, a.Len())
		}
	}

	return shape
}
