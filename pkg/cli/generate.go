/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/elphtools/kmesh/pkg/defaults"
	"github.com/elphtools/kmesh/pkg/mesh"
	"github.com/elphtools/kmesh/pkg/preset"
	"github.com/elphtools/kmesh/pkg/prompt"
	"github.com/elphtools/kmesh/pkg/serializer"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		Aliases:               []string{"gen"},
		EnableShellCompletion: true,
		Usage:                 "Generate a uniform sampling mesh",
		Description: `Generate a uniform mesh of fractional sampling points over the unit cell.

Axis counts can come from three sources:
  - explicit flags:     kmesh generate --n1 6 --n2 6 --n3 1
  - a named preset:     kmesh generate --preset coarse
  - interactive prompts: kmesh generate --interactive

Each axis with count n contributes the samples 0/n, 1/n, ..., (n-1)/n.
The mesh lists all n1*n2*n3 combinations, third axis varying fastest.
With --weights every line carries the uniform weight 1/N.

The native format prints a count line followed by one fixed-width line per
point, suitable for direct consumption by solver input decks. JSON, YAML,
and table formats materialize the full point list.

# Examples

Shifted-free 6x6x1 surface mesh to stdout:
  kmesh generate --n1 6 --n2 6 --n3 1

Weighted production mesh to a file, committed atomically:
  kmesh generate --preset production --weights --output mesh.dat

Full grid as JSON for programmatic consumption:
  kmesh generate --n1 4 --n2 4 --n3 4 --format json`,
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
			&cli.BoolFlag{
				Name:    "weights",
				Aliases: []string{"w"},
				Usage:   "Append the uniform weight 1/N to every mesh point",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Read axis counts and the weight choice from stdin prompts",
			},
			presetFlag,
			presetFileFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			spec, err := specFromCmd(cmd)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err := serializeSpec(ctx, ser, outFormat, spec); err != nil {
				if cerr := ser.Close(); cerr != nil {
					slog.Warn("failed to close serializer", "error", cerr)
				}
				return err
			}
			return ser.Close()
		},
	}
}

// specFromCmd resolves a mesh spec from the command flags, preferring
// interactive prompts, then a named preset, then explicit axis counts.
func specFromCmd(cmd *cli.Command) (mesh.Spec, error) {
	if cmd.Bool("interactive") {
		return prompt.Run(os.Stdin, os.Stderr)
	}

	if name := cmd.String("preset"); name != "" {
		extra, err := loadExtraPresets(cmd)
		if err != nil {
			return mesh.Spec{}, err
		}

		p, err := preset.Resolve(name, extra)
		if err != nil {
			return mesh.Spec{}, err
		}

		spec := p.Spec()
		if cmd.IsSet("weights") {
			spec.Weighted = cmd.Bool("weights")
		}
		return spec, nil
	}

	var counts [3]int
	flags := [3]string{"n1", "n2", "n3"}
	for i, flag := range flags {
		n, err := mesh.ParseCount(i+1, cmd.String(flag))
		if err != nil {
			return mesh.Spec{}, err
		}
		counts[i] = n
	}

	return mesh.New(counts[0], counts[1], counts[2], cmd.Bool("weights"))
}

// loadExtraPresets reads user presets when --preset-file is set.
func loadExtraPresets(cmd *cli.Command) ([]preset.Preset, error) {
	path := cmd.String("preset-file")
	if path == "" {
		return nil, nil
	}

	extra, err := preset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets from %q: %w", path, err)
	}
	return extra, nil
}

// serializeSpec writes the mesh in the requested format. The native format
// streams points without materializing them; structured formats carry the
// full grid.
func serializeSpec(ctx context.Context, ser *serializer.Writer, format serializer.Format, spec mesh.Spec) error {
	if format == serializer.FormatMesh {
		return ser.Serialize(ctx, spec)
	}

	grid, err := spec.Grid(defaults.MaxMaterializedPoints)
	if err != nil {
		return err
	}
	return ser.Serialize(ctx, grid)
}
