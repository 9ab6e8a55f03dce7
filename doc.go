// Package optionfdm prices European and arithmetic-average Asian call options
// by solving the Black-Scholes PDE on a uniform finite-difference grid.
//
// 🚀 What is optionfdm?
//
//	A small numerical library plus a command-line driver that brings together:
//		• Grids: uniform time, asset-price and running-integral axes
//		• Engines: explicit and implicit European, explicit Asian
//		• Linear algebra: a Thomas solver factorized once per run
//		• References: Black-Scholes closed form, zero-volatility Asian value
//		• Reports: sampled comparison tables exported as CSV or XLSX
//
// ✨ Why choose optionfdm?
//
//   - Explicit errors – every invalid input maps to a sentinel error
//   - Deterministic – parallel Asian steps give bit-identical results
//   - Observable – structured logrus progress at Debug level
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/     — axes, nodes and steps; validation of the discretization
//	market/   — interest rate, volatility and the call contract
//	matrix/   — dense storage, tridiagonal Thomas factorization, comparisons
//	analytic/ — Black-Scholes and deterministic reference prices
//	fdm/      — the engines, their coefficients and boundary policies
//	surface/  — read-only price surfaces returned by the engines
//	report/   — comparison tables, error summary, CSV and XLSX writers
//	config/   — TOML, environment and flag configuration
//
// Quick example:
//
//	m, _ := market.New(0.05, 0.2)
//	c, _ := market.NewContract(market.Vanilla, 100, 1)
//	g, _ := grid.New(
//		grid.AxisSpec{Name: grid.Time, Min: 0, Max: 1, Nodes: 100},
//		grid.AxisSpec{Name: grid.AssetPrice, Min: 0, Max: 200, Nodes: 41},
//	)
//	eng, _ := fdm.New(market.Vanilla, fdm.Implicit)
//	s, _ := eng.ComputePrices(m, c, g)
//
// The optionfdm command under cmd/ wires these packages to a config file:
//
//	go run ./cmd/optionfdm --type asian --config configs/optionfdm.toml
package optionfdm
