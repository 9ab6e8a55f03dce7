// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Store an n×n tridiagonal system as three length-n bands.
//   - Solve it in O(n) with the Thomas algorithm (Gaussian elimination without pivoting,
//     specialized to three bands).
//   - Split elimination from substitution so a time-invariant operator is factorized
//     once and then solved against a new right-hand side every time step.
//
// Band convention (all three slices have length n):
//   - sub[i]   multiplies x[i-1] in row i; sub[0] lies outside the matrix and is ignored.
//   - diag[i]  multiplies x[i].
//   - super[i] multiplies x[i+1] in row i; super[n-1] lies outside the matrix and is ignored.
//
// Determinism & Performance:
//   - Fixed forward then backward sweeps; bit-identical results for identical inputs.
//   - SolveInto allocates nothing and accepts dst aliasing rhs.
//
// AI-Hints:
//   - Thomas is stable for diagonally dominant bands (|diag| ≥ |sub|+|super|),
//     which backward-Euler Black-Scholes operators are for Δt>0 and r≥0.
//   - A zero elimination pivot is reported as ErrSingular; no pivoting is attempted.

package matrix

import (
	"fmt"
	"math"
)

// Tridiagonal is an immutable n×n banded matrix.
type Tridiagonal struct {
	sub, diag, super []float64
}

// NewTridiagonal copies the three bands into a new Tridiagonal.
// MAIN DESCRIPTION:
//   - Validate band lengths and values, then take private copies.
//
// Inputs:
//   - sub, diag, super: equal-length bands, n ≥ 1 (see band convention above).
//
// Errors:
//   - ErrNilMatrix (nil band), ErrInvalidDimensions (n == 0),
//     ErrDimensionMismatch (unequal lengths), ErrNaNInf (non-finite entry).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewTridiagonal(sub, diag, super []float64) (*Tridiagonal, error) {
	if sub == nil || diag == nil || super == nil {
		return nil, matrixErrorf(opNewTri, ErrNilMatrix)
	}
	n := len(diag)
	if n == 0 {
		return nil, matrixErrorf(opNewTri, ErrInvalidDimensions)
	}
	if err := ValidateVecLen(sub, n); err != nil {
		return nil, matrixErrorf(opNewTri, err)
	}
	if err := ValidateVecLen(super, n); err != nil {
		return nil, matrixErrorf(opNewTri, err)
	}
	for _, band := range [][]float64{sub, diag, super} {
		if err := ValidateFinite(band); err != nil {
			return nil, matrixErrorf(opNewTri, err)
		}
	}

	t := &Tridiagonal{
		sub:   make([]float64, n),
		diag:  make([]float64, n),
		super: make([]float64, n),
	}
	copy(t.sub, sub)
	copy(t.diag, diag)
	copy(t.super, super)

	return t, nil
}

// Size returns n, the order of the system.
func (t *Tridiagonal) Size() int { return len(t.diag) }

// At returns element (i, j); zero outside the three bands.
// Errors: ErrOutOfRange.
func (t *Tridiagonal) At(i, j int) (float64, error) {
	n := len(t.diag)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, matrixErrorf("Tridiagonal.At", ErrOutOfRange)
	}
	switch j - i {
	case -1:
		return t.sub[i], nil
	case 0:
		return t.diag[i], nil
	case 1:
		return t.super[i], nil
	default:
		return 0, nil
	}
}

// MatVec computes y = T·x.
// Errors: ErrNilMatrix (nil x), ErrDimensionMismatch (len(x) != n).
// Complexity: O(n).
func (t *Tridiagonal) MatVec(x []float64) ([]float64, error) {
	n := len(t.diag)
	if err := ValidateVecLen(x, n); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = t.diag[i] * x[i]
		if i > 0 {
			y[i] += t.sub[i] * x[i-1]
		}
		if i+1 < n {
			y[i] += t.super[i] * x[i+1]
		}
	}

	return y, nil
}

// ThomasFactor is the forward-elimination state of a Tridiagonal system.
// It is immutable and safe for concurrent SolveInto calls with distinct buffers.
type ThomasFactor struct {
	sub, super []float64 // shared with the source Tridiagonal (never mutated)
	y          []float64 // modified diagonal (elimination pivots)
}

// Factorize runs the forward elimination of the Thomas algorithm.
// MAIN DESCRIPTION:
//   - Build the modified diagonal y once; it depends only on the matrix,
//     never on the right-hand side.
//
// Implementation:
//   - Stage 1: y[0] = diag[0].
//   - Stage 2: y[i] = diag[i] − sub[i]·super[i−1]/y[i−1] for i = 1..n−1.
//   - Stage 3: every y[i] must be non-zero and finite.
//
// Errors:
//   - ErrSingular, wrapped with the failing row index.
//
// Complexity:
//   - Time O(n), Space O(n).
func (t *Tridiagonal) Factorize() (*ThomasFactor, error) {
	n := len(t.diag)
	y := make([]float64, n)

	y[0] = t.diag[0]
	if err := checkPivot(0, y[0]); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		y[i] = t.diag[i] - t.sub[i]*t.super[i-1]/y[i-1]
		if err := checkPivot(i, y[i]); err != nil {
			return nil, err
		}
	}

	return &ThomasFactor{sub: t.sub, super: t.super, y: y}, nil
}

// checkPivot rejects a zero or non-finite elimination pivot.
func checkPivot(i int, p float64) error {
	if p == ZeroPivot || math.IsNaN(p) || math.IsInf(p, 0) {
		return matrixErrorf(opThomas, fmt.Errorf("pivot %d = %g: %w", i, p, ErrSingular))
	}

	return nil
}

// Size returns n, the order of the factorized system.
func (f *ThomasFactor) Size() int { return len(f.y) }

// Pivots returns a copy of the modified diagonal y.
func (f *ThomasFactor) Pivots() []float64 {
	out := make([]float64, len(f.y))
	copy(out, f.y)

	return out
}

// SolveInto solves T·x = rhs, writing x into dst.
// MAIN DESCRIPTION:
//   - Forward substitution builds q, backward substitution recovers x.
//
// Implementation:
//   - Stage 1: q[0] = rhs[0]; q[i] = rhs[i] − sub[i]·q[i−1]/y[i−1].
//   - Stage 2: x[n−1] = q[n−1]/y[n−1]; x[i] = (q[i] − super[i]·x[i+1])/y[i].
//   - q is staged in dst, so dst may alias rhs.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch on dst or rhs of the wrong length.
//
// Complexity:
//   - Time O(n), Space O(1).
func (f *ThomasFactor) SolveInto(dst, rhs []float64) error {
	n := len(f.y)
	if err := ValidateVecLen(rhs, n); err != nil {
		return matrixErrorf(opSolveInto, err)
	}
	if err := ValidateVecLen(dst, n); err != nil {
		return matrixErrorf(opSolveInto, err)
	}

	// Forward substitution.
	dst[0] = rhs[0]
	for i := 1; i < n; i++ {
		dst[i] = rhs[i] - f.sub[i]*dst[i-1]/f.y[i-1]
	}

	// Backward substitution.
	dst[n-1] /= f.y[n-1]
	for i := n - 2; i >= 0; i-- {
		dst[i] = (dst[i] - f.super[i]*dst[i+1]) / f.y[i]
	}

	return nil
}

// SolveTridiagonal is the one-shot helper: build, factorize, solve.
// Errors: as NewTridiagonal, Factorize and SolveInto.
// Complexity: O(n).
func SolveTridiagonal(sub, diag, super, rhs []float64) ([]float64, error) {
	t, err := NewTridiagonal(sub, diag, super)
	if err != nil {
		return nil, err
	}
	f, err := t.Factorize()
	if err != nil {
		return nil, err
	}
	x := make([]float64, t.Size())
	if err = f.SolveInto(x, rhs); err != nil {
		return nil, err
	}

	return x, nil
}
