/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
	"github.com/elphtools/kmesh/pkg/mesh"
)

// Prompt texts, in protocol order. These are part of the interactive
// contract and must match the tool this utility replaces.
var axisPrompts = [3]string{
	"number of points along 1st axis: ",
	"number of points along 2nd axis: ",
	"number of points along 3rd axis: ",
}

const weightsPrompt = "print weights (y/n): "

// Run drives the interactive prompt sequence: three axis counts, then
// the weighting choice. Prompts are written to w (the CLI passes
// stderr, keeping stdout clean for the point list) and answers are read
// line by line from r. Malformed or non-positive counts fail fast with
// an INVALID_INPUT error naming the axis; no output is produced.
func Run(r io.Reader, w io.Writer) (mesh.Spec, error) {
	lines := bufio.NewScanner(r)

	var counts [3]int
	for axis := 0; axis < 3; axis++ {
		fmt.Fprint(w, axisPrompts[axis])

		answer, err := readLine(lines, axis+1)
		if err != nil {
			return mesh.Spec{}, err
		}

		counts[axis], err = mesh.ParseCount(axis+1, answer)
		if err != nil {
			return mesh.Spec{}, err
		}
	}

	fmt.Fprint(w, weightsPrompt)
	answer, err := readLine(lines, 0)
	if err != nil {
		return mesh.Spec{}, err
	}

	return mesh.New(counts[0], counts[1], counts[2], WantsWeights(answer))
}

// WantsWeights interprets the free-text weighting answer: any response
// containing the character 'y' is affirmative. The match is
// case-sensitive, preserving parity with the original convention.
func WantsWeights(text string) bool {
	return strings.ContainsRune(text, 'y')
}

func readLine(lines *bufio.Scanner, axis int) (string, error) {
	if lines.Scan() {
		return lines.Text(), nil
	}
	ctx := map[string]any{}
	if axis > 0 {
		ctx["axis"] = axis
	}
	if err := lines.Err(); err != nil {
		return "", kerrors.WrapWithContext(kerrors.ErrCodeInvalidInput,
			"failed reading answer", err, ctx)
	}
	return "", kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
		"unexpected end of input", ctx)
}
