// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise comparison kernels used to judge a numerical surface
//     against a reference surface (analytical or zero-volatility).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No allocations; O(r*c) time.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - MaxAbsDiff reports the first location of the maximum, so ties resolve
//     deterministically to the smallest (row, col) in row-major order.

package matrix

import (
	"math"
)

const (
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - A NaN on either side never compares close.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < r*c; idx++ {
				// !(x <= y) also rejects NaN.
				if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a(i,j) − b(i,j)| and the first (row, col) where it occurs.
// MAIN DESCRIPTION:
//   - Worst-case deviation between two same-shape surfaces.
//
// Behavior highlights:
//   - A NaN difference dominates: it is returned immediately with its location,
//     so a diverged surface is never reported as accurate.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxAbsDiff(a, b Matrix) (maxDiff float64, row, col int, err error) {
	if err = ValidateNotNil(a); err != nil {
		return 0, 0, 0, matrixErrorf(opMaxAbsDiff, err)
	}
	if err = ValidateNotNil(b); err != nil {
		return 0, 0, 0, matrixErrorf(opMaxAbsDiff, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return 0, 0, 0, matrixErrorf(opMaxAbsDiff, err)
	}

	r, c := a.Rows(), a.Cols()
	maxDiff = -1
	var av, bv, d float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			d = math.Abs(av - bv)
			if math.IsNaN(d) {
				return d, i, j, nil
			}
			if d > maxDiff {
				maxDiff, row, col = d, i, j
			}
		}
	}

	return maxDiff, row, col, nil
}
