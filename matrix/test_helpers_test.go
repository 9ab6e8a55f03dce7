// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for Dense and the banded solver.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/optionfdm/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Fatal test failure if lengths mismatch or Set fails.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := d.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// randomDominantBands BUILDS a strictly diagonally dominant tridiagonal system of order n.
// Deterministic for a fixed seed; |diag| > |sub|+|super| guarantees non-zero pivots.
func randomDominantBands(n int, seed int64) (sub, diag, super []float64) {
	rng := rand.New(rand.NewSource(seed))
	sub = make([]float64, n)
	diag = make([]float64, n)
	super = make([]float64, n)
	for i := 0; i < n; i++ {
		sub[i] = rng.Float64()*2 - 1
		super[i] = rng.Float64()*2 - 1
		diag[i] = 2.5 + rng.Float64()
		if i%2 == 1 {
			diag[i] = -diag[i]
		}
	}

	return sub, diag, super
}

// randomVector RETURNS n deterministic U(-1,1) values.
func randomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}
