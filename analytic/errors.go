package analytic

import "errors"

var (
	// ErrNotVanilla indicates a closed-form vanilla formula was asked to price another kind.
	ErrNotVanilla = errors.New("analytic: contract is not vanilla")
	// ErrNotAsian indicates the Asian reference was asked to price another kind.
	ErrNotAsian = errors.New("analytic: contract is not asian")
)
