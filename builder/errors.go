// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrUnknownNode indicates an edge endpoint that the draft has not allocated.
var ErrUnknownNode = errors.New("builder: unknown node")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor or a self-loop request.
var ErrConstructFailed = errors.New("builder: construction failed")
