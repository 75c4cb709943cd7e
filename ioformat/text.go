// Package ioformat decodes external grid representations (delimited text,
// raster images) into a *grid.Grid.
//
// Grounded on the teacher pack's plain bufio.Scanner row-scanning idiom
// (no third-party CSV/text library in the retrieval pack beats
// bufio+strconv for this single-boundary concern — see DESIGN.md) and, for
// images, github.com/disintegration/imaging.
package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcppgo/mcpp/grid"
)

// ErrEmptyInput is returned when r has no non-blank lines.
var ErrEmptyInput = errors.New("ioformat: input has no rows")

// DecodeText reads delimiter-separated integer rows from r, where 0 marks
// FREE and any non-zero value marks OCCUPIED, and builds a *grid.Grid from
// them.
func DecodeText(r io.Reader, delim rune) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	var rows [][]grid.Kind
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == delim })
		row := make([]grid.Kind, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("ioformat: parsing cell %q: %w", f, err)
			}
			if v == 0 {
				row[i] = grid.FREE
			} else {
				row[i] = grid.OCCUPIED
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return grid.New(rows)
}
