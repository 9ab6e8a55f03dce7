package surface

import "errors"

var (
	// ErrSliceNotRetained indicates an intermediate Asian slice was requested
	// from a run that kept only the terminal slice.
	ErrSliceNotRetained = errors.New("surface: time slice not retained")
	// ErrShapeMismatch indicates values whose shape does not match the grid.
	ErrShapeMismatch = errors.New("surface: values do not match grid shape")
	// ErrTimeStep indicates a time index outside [0, Steps()).
	ErrTimeStep = errors.New("surface: time step out of range")
)
