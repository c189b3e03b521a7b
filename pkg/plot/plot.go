/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/

// Package plot renders sampling meshes as images for quick visual
// inspection of Brillouin-zone coverage.
package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/elphtools/kmesh/pkg/defaults"
	kerrors "github.com/elphtools/kmesh/pkg/errors"
	"github.com/elphtools/kmesh/pkg/mesh"
)

// canvasSize is the rendered image edge length.
const canvasSize = 5 * vg.Inch

// Save renders the mesh's first two fractional axes as a scatter plot
// and writes it to path. The image format follows the file extension
// (.png, .svg, .pdf, ...). The third axis is collapsed: the plot shows
// the n1*n2 distinct in-plane positions.
func Save(s mesh.Spec, path string) error {
	p, err := scatter(s)
	if err != nil {
		return err
	}
	if err := p.Save(canvasSize, canvasSize, path); err != nil {
		return kerrors.WrapWithContext(kerrors.ErrCodeInternal,
			"failed to render mesh plot", err, map[string]any{"path": path})
	}
	return nil
}

func scatter(s mesh.Spec) (*plot.Plot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	n := int64(s.Counts[0]) * int64(s.Counts[1])
	if n > defaults.MaxMaterializedPoints {
		return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
			"mesh too large to plot",
			map[string]any{"points": n, "max": defaults.MaxMaterializedPoints})
	}

	xys := make(plotter.XYs, 0, n)
	for _, x1 := range s.Axis(0) {
		for _, x2 := range s.Axis(1) {
			xys = append(xys, plotter.XY{X: x1, Y: x2})
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d × %d × %d sampling mesh",
		s.Counts[0], s.Counts[1], s.Counts[2])
	p.X.Label.Text = "b₁ (fractional)"
	p.Y.Label.Text = "b₂ (fractional)"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeInternal, "failed to build scatter", err)
	}
	points.GlyphStyle.Radius = vg.Points(2)
	p.Add(points)

	return p, nil
}
