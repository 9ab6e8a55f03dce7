package fdm

import "errors"

var (
	// ErrUnsupportedCombination indicates a (kind, scheme) pair with no engine,
	// such as an implicit Asian engine, or a contract of the wrong kind passed
	// to an engine.
	ErrUnsupportedCombination = errors.New("fdm: unsupported option kind and scheme combination")

	// ErrSingularSystem indicates the implicit operator has a zero elimination
	// pivot. It always wraps matrix.ErrSingular as well.
	ErrSingularSystem = errors.New("fdm: singular tridiagonal system")
)
