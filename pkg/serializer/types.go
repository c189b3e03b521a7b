/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for writing generated meshes and
// other toolkit data to various formats.
//
// Supported output formats:
//   - mesh: the native point-list contract consumed by the plane-wave
//     solver (streamed, never materialized)
//   - JSON: machine-readable structured data
//   - YAML: human-readable configuration format
//   - Table: flattened key/value text for terminal viewing
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatMesh, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, spec); err != nil {
//		log.Fatal(err)
//	}
//
// File output via NewFileWriterOrStdout is atomic: content lands in the
// destination path only when serialization succeeded and Close commits.
package serializer

import "context"

// Serializer is an interface for writing toolkit data to an output
// destination in some format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers implement when they
// hold resources (e.g., a pending file) to release or commit.
type Closer interface {
	Close() error
}
