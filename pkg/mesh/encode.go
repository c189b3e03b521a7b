package mesh

import (
	"bufio"
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
)

// fieldPrecision is the number of fractional digits per numeric field.
// Together with values confined to [0, 1] this yields a fixed 12-char
// field, which the downstream solver parses by whitespace splitting and
// expects column-aligned. Do not change.
const fieldPrecision = 10

// linePool recycles the per-line scratch buffer across Encode calls.
var linePool bytebufferpool.Pool

// Encode writes the mesh in the native point-list format consumed by the
// plane-wave solver: one line with the total point count N, then N lines
// of 3 (or 4, when weighted) space-separated fixed-format fields.
//
// Output is deterministic: identical specs produce byte-identical bytes.
// Points are formatted and written one at a time, so memory stays
// bounded regardless of N.
func (s Spec) Encode(w io.Writer) error {
	n, err := s.Points()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	bb := linePool.Get()
	defer linePool.Put(bb)

	bb.B = strconv.AppendInt(bb.B[:0], n, 10)
	bb.B = append(bb.B, '\n')
	if _, err := bw.Write(bb.B); err != nil {
		return kerrors.Wrap(kerrors.ErrCodeInternal, "write point count", err)
	}

	err = s.Walk(func(p Point) error {
		bb.B = appendField(bb.B[:0], p.X1)
		bb.B = append(bb.B, ' ')
		bb.B = appendField(bb.B, p.X2)
		bb.B = append(bb.B, ' ')
		bb.B = appendField(bb.B, p.X3)
		if s.Weighted {
			bb.B = append(bb.B, ' ')
			bb.B = appendField(bb.B, p.Weight)
		}
		bb.B = append(bb.B, '\n')
		_, werr := bw.Write(bb.B)
		return werr
	})
	if err != nil {
		return kerrors.Wrap(kerrors.ErrCodeInternal, "write point list", err)
	}

	if err := bw.Flush(); err != nil {
		return kerrors.Wrap(kerrors.ErrCodeInternal, "flush point list", err)
	}
	return nil
}

// appendField appends one coordinate or weight in fixed-point notation.
// Values are always in [0, 1], so the result is exactly 12 characters.
func appendField(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'f', fieldPrecision, 64)
}
