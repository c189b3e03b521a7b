/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/elphtools/kmesh/pkg/preset"
	"github.com/elphtools/kmesh/pkg/serializer"
)

func presetsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "presets",
		EnableShellCompletion: true,
		Usage:                 "List available mesh presets",
		Description: `List the built-in mesh presets, optionally merged with user presets
from a YAML file. Preset names are matched case-insensitively, and user
presets override built-in ones with the same name.`,
		Flags: []cli.Flag{
			presetFileFlag,
			outputFlag,
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage: fmt.Sprintf("Output format (supported values: %s)",
					strings.Join(structuredFormats(), ", ")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() || outFormat == serializer.FormatMesh {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			extra, err := loadExtraPresets(cmd)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err := ser.Serialize(ctx, preset.Merge(extra)); err != nil {
				if cerr := ser.Close(); cerr != nil {
					slog.Warn("failed to close serializer", "error", cerr)
				}
				return err
			}
			return ser.Close()
		},
	}
}

// structuredFormats lists the formats that can carry a preset list. The
// native mesh format only describes a single mesh.
func structuredFormats() []string {
	return []string{
		string(serializer.FormatJSON),
		string(serializer.FormatYAML),
		string(serializer.FormatTable),
	}
}
