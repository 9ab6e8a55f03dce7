package market

import "errors"

var (
	// ErrInvalidMarket indicates a negative or non-finite volatility, a
	// non-finite rate, or a contract with bad strike, maturity or kind.
	ErrInvalidMarket = errors.New("market: invalid market or contract")
)
