package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid indicates bad axis bounds, node counts or axis names.
// Every validation failure wraps it with the offending axis.
var ErrInvalidGrid = errors.New("grid: invalid grid")

// invalidf wraps ErrInvalidGrid with axis context.
func invalidf(axis string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidGrid, axis, fmt.Sprintf(format, args...))
}
