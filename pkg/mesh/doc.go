// Package mesh implements the k-point sampling-mesh generator at the
// core of the kmesh toolkit.
//
// A mesh is the full Cartesian product of three axis sample sets, one
// per reciprocal-lattice axis. For a requested count n along one axis
// the samples are the n fractional coordinates i/n for i in 0..n-1.
// Enumeration order is fixed: axis 1 outermost, axis 3 innermost, so
// the axis-3 index varies fastest.
//
// When weighting is requested every point carries the identical value
// 1/N, N being the total point count, so printed weights sum to one.
//
// The native text encoding (Spec.Encode) is an exact interchange
// contract with the downstream plane-wave solver: a count line followed
// by N fixed-format coordinate records. See the package tests for the
// reference bytes.
package mesh
