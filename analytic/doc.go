// Package analytic provides closed-form reference prices used to validate the
// finite-difference engines.
//
//   - BlackScholes: the European call formula, scalar and vector.
//   - DeterministicCall: the zero-volatility limit of the vanilla call.
//   - ZeroVolatilityAsian: the zero-volatility Asian call surface over
//     (asset price, running integral).
//
// None of these functions are used on the numerical price path.
package analytic
