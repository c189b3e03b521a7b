/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/elphtools/kmesh/pkg/plot"
)

func plotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "plot",
		EnableShellCompletion: true,
		Usage:                 "Render a scatter plot of the mesh in the b1-b2 plane",
		Description: `Render the in-plane projection of the mesh as a scatter plot. The third
axis is collapsed, so the image shows the n1 x n2 sampling of the first
two reciprocal axes. The image format follows the file extension
(.png, .svg, .pdf, ...).

# Examples

  kmesh plot --n1 12 --n2 12 --n3 1 --output mesh.png
  kmesh plot --preset production --output mesh.svg`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "n1",
				Usage: "Number of points along the 1st axis",
			},
			&cli.StringFlag{
				Name:  "n2",
				Usage: "Number of points along the 2nd axis",
			},
			&cli.StringFlag{
				Name:  "n3",
				Usage: "Number of points along the 3rd axis",
			},
			presetFlag,
			presetFileFlag,
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "mesh.png",
				Usage:   "Image file path; the extension selects the image format",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			spec, err := specFromCmd(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("output")
			if err := plot.Save(spec, path); err != nil {
				return err
			}

			slog.Info("plot saved", "path", path,
				"n1", spec.Counts[0], "n2", spec.Counts[1], "n3", spec.Counts[2])
			return nil
		},
	}
}
