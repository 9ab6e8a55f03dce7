// Package market models the pricing inputs that do not depend on the grid:
// a Market (risk-free rate and volatility) and a Contract (strike, maturity
// and kind).
//
// Both are immutable value types validated at construction; invalid input is
// reported as ErrInvalidMarket.
//
// An Asian contract pays on the time average of the asset price. The average
// axis of an Asian grid carries the running integral A = ∫S dt rather than the
// average itself, so the payoff divides by maturity: max(A/T − K, 0).
package market
