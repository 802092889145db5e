// SPDX-License-Identifier: MIT
// Package compose: sentinel error set.

package compose

import "errors"

var (
	// ErrNilLayout indicates a nil *algebra.Layout argument.
	ErrNilLayout = errors.New("compose: layout is nil")

	// ErrNilKernel indicates a nil *kernel.Kernel argument.
	ErrNilKernel = errors.New("compose: kernel is nil")

	// ErrDimsMismatch indicates that a kernel's dimensionality disagrees with
	// the layout's blade count, or that an operand has the wrong length.
	ErrDimsMismatch = errors.New("compose: dimensionality mismatch")
)
