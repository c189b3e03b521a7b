package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/elphtools/kmesh/pkg/mesh"
)

// Format represents the output format type.
type Format string

const (
	// FormatMesh is the native point-list contract of the downstream solver.
	FormatMesh Format = "mesh"
	// FormatJSON outputs data in JSON format.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format.
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format.
	FormatTable Format = "table"
)

const defaultValueKey = "value"

func (f Format) IsUnknown() bool {
	switch f {
	case FormatMesh, FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatMesh),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// Writer serializes toolkit data to an output destination. Close must be
// called when using NewFileWriterOrStdout: the destination file appears
// only when Close commits a successful serialization.
type Writer struct {
	format  Format
	output  io.Writer
	pending *renameio.PendingFile
	failed  bool
}

// NewWriter creates a new Writer with the specified format and output
// destination. If output is nil, os.Stdout is used. An unknown format
// defaults to the native mesh format.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to mesh", "format", format)
		format = FormatMesh
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewStdoutWriter creates a new Writer that outputs to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer that outputs to the given file
// path, falling back to stdout when the path is empty or the file cannot
// be staged. File output is atomic (write to a temp file, fsync, rename
// on Close), so a half-written mesh never replaces an existing one.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format)
	}

	pending, err := renameio.NewPendingFile(trimmed)
	if err != nil {
		slog.Error("failed to stage output file, falling back to stdout",
			"error", err, "path", trimmed)
		return NewStdoutWriter(format)
	}

	w := NewWriter(format, pending)
	w.pending = pending
	return w
}

// Close releases resources held by the Writer. For file-backed writers
// it atomically moves the staged content into place, unless a previous
// Serialize failed, in which case the staged file is discarded and the
// destination is left untouched. Safe to call on stdout-backed writers.
func (w *Writer) Close() error {
	if w.pending == nil {
		return nil
	}
	pending := w.pending
	w.pending = nil

	if w.failed {
		return pending.Cleanup()
	}
	return pending.CloseAtomicallyReplace()
}

// Serialize writes v in the configured format. The context is accepted
// for interface consistency; file and stdout writes are blocking.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	var err error
	switch w.format {
	case FormatMesh:
		err = w.serializeMesh(v)
	case FormatJSON:
		err = w.serializeJSON(v)
	case FormatYAML:
		err = w.serializeYAML(v)
	case FormatTable:
		err = w.serializeTable(v)
	default:
		err = fmt.Errorf("unsupported format: %s", w.format)
	}
	if err != nil {
		w.failed = true
	}
	return err
}

// serializeMesh streams the native point-list contract. Only mesh specs
// (or materialized grids, via their spec) can be rendered natively.
func (w *Writer) serializeMesh(v any) error {
	switch m := v.(type) {
	case mesh.Spec:
		return m.Encode(w.output)
	case *mesh.Spec:
		return m.Encode(w.output)
	case *mesh.Grid:
		return m.Spec.Encode(w.output)
	default:
		return fmt.Errorf("mesh format cannot render %T", v)
	}
}

func (w *Writer) serializeJSON(v any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(v any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return nil
}

func (w *Writer) serializeTable(v any) error {
	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(v), "")
	if len(flat) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", key, flat[key])
	}
	return tw.Flush()
}

func flattenValue(out map[string]any, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				out[prefix] = nil
			}
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			flattenValue(out, val.Field(i), joinKey(prefix, field.Name))
		}
	case reflect.Map:
		for _, mapKey := range val.MapKeys() {
			flattenValue(out, val.MapIndex(mapKey),
				joinKey(prefix, fmt.Sprintf("%v", mapKey.Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			flattenValue(out, val.Index(i), joinKey(prefix, fmt.Sprintf("[%d]", i)))
		}
	default:
		if prefix == "" {
			prefix = defaultValueKey
		}
		out[prefix] = val.Interface()
	}
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}
