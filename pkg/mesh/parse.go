package mesh

import (
	"strconv"
	"strings"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
)

// ParseCount parses a textual axis count as supplied on a console, CLI
// flag, or query string. The axis number (1-based) is used only for
// error context. Surrounding whitespace is tolerated; the value itself
// must be a positive decimal integer.
func ParseCount(axis int, text string) (int, error) {
	trimmed := strings.TrimSpace(text)

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, kerrors.WrapWithContext(kerrors.ErrCodeInvalidInput,
			"axis count must be a positive integer", err,
			map[string]any{"axis": axis, "input": text})
	}
	if n < 1 {
		return 0, kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
			"axis count must be a positive integer",
			map[string]any{"axis": axis, "input": text})
	}
	return n, nil
}
