// Package fdm solves the Black-Scholes equation on a grid with finite
// differences.
//
// 🚀 Engines
//
//	kind     scheme    engine            per step
//	vanilla  explicit  ExplicitVanilla   three-point stencil
//	vanilla  implicit  ImplicitVanilla   one Thomas solve
//	asian    explicit  ExplicitAsian     five-point stencil on (S, A)
//
// New selects an engine from a (kind, scheme) pair; the asian × implicit pair
// has no engine and fails with ErrUnsupportedCombination.
//
// ✨ Conventions
//   - Time runs forward in index space while τ = t_n − t_0, the time to
//     maturity, grows: row 0 is the payoff, the last row is the price at the
//     valuation date.
//   - Coefficients are stationary. They are computed once per run and exposed
//     (ExplicitCoefficients, ImplicitCoefficients, AsianCoefficientsFor) for
//     inspection.
//   - The Asian average axis carries the running integral A = ∫S dt; the
//     payoff is max(A/T − K, 0).
//
// ⚙️ Usage:
//
//	eng, err := fdm.New(market.Vanilla, fdm.Implicit, fdm.WithLogger(log))
//	surf, err := eng.ComputePrices(m, c, g)
//
// Stability:
//
//	The explicit schemes are conditionally stable and are never checked: a
//	grid with too large a Δt returns a diverged surface, not an error. The
//	implicit scheme has no such limit.
package fdm
