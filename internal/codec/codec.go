// Package codec converts point lists to and from the line oriented text
// format used for curve files and the clipboard:
//
//	0.0000:0.5000
//	0.2000:0.3000
//	1.0000:0.5000
//
// Each record is "x:y" with four decimal places, sorted by x, and terminated
// by a newline.
package codec

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/olivier-w/curvedit/internal/curve"
)

const delimiter = ":"

// Field names the half of a record that failed to parse.
type Field string

const (
	FieldX Field = "x"
	FieldY Field = "y"
)

// DecodeError reports the first malformed line of a decoded text.
type DecodeError struct {
	Line    int    // 1-based
	Field   Field  // empty when the line has no delimiter
	Content string // the offending line
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: unexpected data %s", e.Line, e.Content)
	}
	return fmt.Sprintf("line %d: %s is not float32: %v at %s", e.Line, e.Field, e.Err, e.Content)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode sorts points by x and writes one record per point.
// The input slice is not modified.
func Encode(points []curve.Vec) string {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b curve.Vec) int {
		return cmp.Compare(a.X, b.X)
	})

	var b strings.Builder
	for _, p := range sorted {
		fmt.Fprintf(&b, "%.4f%s%.4f\n", p.X, delimiter, p.Y)
	}
	return b.String()
}

// Decode parses text produced by Encode. Records are returned in input
// order. On the first malformed line it returns a *DecodeError and no points.
func Decode(text string) ([]curve.Vec, error) {
	lines := splitLines(text)
	result := make([]curve.Vec, 0, len(lines))

	for i, line := range lines {
		xs, ys, ok := strings.Cut(line, delimiter)
		if !ok {
			return nil, &DecodeError{Line: i + 1, Content: line}
		}
		x, err := parseFloat(xs)
		if err != nil {
			return nil, &DecodeError{Line: i + 1, Field: FieldX, Content: line, Err: err}
		}
		y, err := parseFloat(ys)
		if err != nil {
			return nil, &DecodeError{Line: i + 1, Field: FieldY, Content: line, Err: err}
		}
		result = append(result, curve.V(x, y))
	}

	return result, nil
}

// splitLines splits on '\n', drops a trailing '\r' from each line and does
// not yield an empty final line for newline terminated text.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return float32(v), nil
}
