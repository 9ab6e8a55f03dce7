// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage and banded linear algebra used by
// the finite-difference pricing engines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors, a
//     configurable NaN/Inf policy and no-copy row views for time-stepping loops.
//   - Tridiagonal and ThomasFactor: an O(n) solver whose forward elimination is
//     computed once and reused for every right-hand side.
//   - AllClose, MaxAbsDiff and Sub for comparing a numerical surface with a
//     reference surface.
//
// All failures are reported as sentinel errors (errors.go) matched with
// errors.Is; nothing panics on user input.
package matrix
