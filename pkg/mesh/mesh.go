/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/
package mesh

import (
	"math"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
)

// Spec describes a uniform sampling mesh over the three reciprocal-lattice
// axes of the unit cell: the number of divisions along each axis and
// whether points carry a uniform weight.
type Spec struct {
	Counts   [3]int `json:"counts" yaml:"counts"`
	Weighted bool   `json:"weighted" yaml:"weighted"`
}

// Point is one sampling location on the mesh. Coordinates are fractional,
// in [0, 1). Weight is zero unless the spec is weighted, in which case
// every point carries the identical value 1/N.
type Point struct {
	X1     float64 `json:"x1" yaml:"x1"`
	X2     float64 `json:"x2" yaml:"x2"`
	X3     float64 `json:"x3" yaml:"x3"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// New builds a validated Spec from three axis counts and a weighting choice.
func New(n1, n2, n3 int, weighted bool) (Spec, error) {
	s := Spec{Counts: [3]int{n1, n2, n3}, Weighted: weighted}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Validate checks that every axis count is a positive integer and that
// the total point count does not overflow. All violations are reported
// as INVALID_INPUT structured errors.
func (s Spec) Validate() error {
	_, err := s.Points()
	return err
}

// Points returns the total point count N = n1*n2*n3. It fails with an
// INVALID_INPUT error when any count is not positive or when the
// product overflows int64.
func (s Spec) Points() (int64, error) {
	for i, n := range s.Counts {
		if n < 1 {
			return 0, kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
				"axis count must be a positive integer",
				map[string]any{"axis": i + 1, "count": n})
		}
	}

	n := int64(1)
	for i, c := range s.Counts {
		if int64(c) > math.MaxInt64/n {
			return 0, kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
				"total point count overflows",
				map[string]any{"axis": i + 1, "counts": s.Counts})
		}
		n *= int64(c)
	}
	return n, nil
}

// Weight returns the uniform per-point weight 1/N, or zero for an
// unweighted or invalid spec.
func (s Spec) Weight() float64 {
	if !s.Weighted {
		return 0
	}
	n, err := s.Points()
	if err != nil {
		return 0
	}
	return 1 / float64(n)
}

// Axis returns the ordered fractional sample set i/n for one axis
// (0, 1, or 2): ascending, starting at 0.0, all values in [0, 1).
func (s Spec) Axis(axis int) []float64 {
	n := s.Counts[axis]
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) / float64(n)
	}
	return samples
}

// Walk enumerates the full Cartesian product of the three axis sample
// sets in nested order, axis 1 outermost and axis 3 innermost, calling
// fn once per point. Enumeration stops at the first error from fn.
//
// Memory use is O(n1+n2+n3): points are produced one at a time, never
// materialized as a whole.
func (s Spec) Walk(fn func(p Point) error) error {
	if err := s.Validate(); err != nil {
		return err
	}

	w := s.Weight()
	ax1, ax2, ax3 := s.Axis(0), s.Axis(1), s.Axis(2)

	for _, x1 := range ax1 {
		for _, x2 := range ax2 {
			for _, x3 := range ax3 {
				if err := fn(Point{X1: x1, X2: x2, X3: x3, Weight: w}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Grid is a fully materialized mesh, used by structured output formats
// (JSON/YAML) and plotting. The native text contract never goes through
// a Grid; it streams via Encode.
type Grid struct {
	Spec   Spec    `json:"spec" yaml:"spec"`
	Points int64   `json:"points" yaml:"points"`
	List   []Point `json:"list" yaml:"list"`
}

// Grid materializes the mesh, refusing specs whose point count
// exceeds max.
func (s Spec) Grid(max int64) (*Grid, error) {
	points, err := s.Collect(max)
	if err != nil {
		return nil, err
	}
	return &Grid{Spec: s, Points: int64(len(points)), List: points}, nil
}

// Collect materializes the full mesh as a slice, refusing specs whose
// point count exceeds max. Intended for structured output formats and
// plotting; the native text format should use Encode, which streams.
func (s Spec) Collect(max int64) ([]Point, error) {
	n, err := s.Points()
	if err != nil {
		return nil, err
	}
	if n > max {
		return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
			"mesh too large to materialize",
			map[string]any{"points": n, "max": max})
	}

	points := make([]Point, 0, n)
	_ = s.Walk(func(p Point) error {
		points = append(points, p)
		return nil
	})
	return points, nil
}
