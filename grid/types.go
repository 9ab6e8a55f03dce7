// Package grid defines the discretized axes a pricing run is computed on.
package grid

import "strings"

// AxisName enumerates the axes a Grid may carry.
type AxisName int

const (
	// Time is the calendar-time axis [t0, maturity]; always present.
	Time AxisName = iota
	// AssetPrice is the underlying price axis; always present.
	AssetPrice
	// AveragePrice is the running-average axis; present only for Asian contracts.
	AveragePrice

	numAxes = int(AveragePrice) + 1
)

var axisNames = [numAxes]string{"time", "asset_price", "average_price"}

// String returns the snake_case axis name.
func (n AxisName) String() string {
	if !n.valid() {
		return "unknown"
	}

	return axisNames[n]
}

func (n AxisName) valid() bool { return n >= 0 && int(n) < numAxes }

// ParseAxisName maps "time", "asset_price" or "average_price" (case-insensitive)
// to its AxisName.
func ParseAxisName(s string) (AxisName, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range axisNames {
		if name == key {
			return AxisName(i), nil
		}
	}

	return 0, invalidf(s, "unknown axis name")
}

// AxisSpec describes one axis to build: closed interval [Min, Max] with Nodes points.
type AxisSpec struct {
	Name     AxisName
	Min, Max float64
	Nodes    int
}

// Axis is an immutable uniformly spaced axis.
// Nodes are computed in closed form, so two axes built from the same spec are
// bit-identical.
type Axis struct {
	name     AxisName
	min, max float64
	step     float64
	nodes    []float64
}

// Name reports which axis this is.
func (a *Axis) Name() AxisName { return a.name }

// Min returns the first node.
func (a *Axis) Min() float64 { return a.min }

// Max returns the last node.
func (a *Axis) Max() float64 { return a.max }

// Step returns Δ = (Max − Min)/(Len − 1).
func (a *Axis) Step() float64 { return a.step }

// Len returns the node count.
func (a *Axis) Len() int { return len(a.nodes) }

// Node returns node i. It panics if i is out of range, like a slice index.
func (a *Axis) Node(i int) float64 { return a.nodes[i] }

// Nodes returns a copy of all nodes.
func (a *Axis) Nodes() []float64 {
	out := make([]float64, len(a.nodes))
	copy(out, a.nodes)

	return out
}
