// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// coordinates via %w); callers match them with errors.Is. No exported
// operation panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are out of range
	// (non-positive for NewDense, negative for NewSquare).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
