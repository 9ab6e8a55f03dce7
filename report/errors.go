package report

import "errors"

var (
	// ErrInvalidPoints indicates a sample count below 2.
	ErrInvalidPoints = errors.New("report: points must be >= 2")

	// ErrUnknownFormat indicates an output format other than csv or xlsx.
	ErrUnknownFormat = errors.New("report: unknown output format")

	// ErrReferenceShape indicates a reference surface whose shape differs from
	// the numerical one.
	ErrReferenceShape = errors.New("report: reference shape mismatch")
)
