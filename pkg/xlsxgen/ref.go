package xlsxgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Ref is a 1-based cell coordinate.
type Ref struct {
	Column int
	Row    int
}

// ParseRef parses an A1-style cell reference.
func ParseRef(s string) (Ref, error) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return Ref{}, fmt.Errorf("invalid cell reference %q", s)
	}
	col := 0
	for _, c := range s[:i] {
		col = col*26 + int(c-'A'+1)
	}
	row, err := strconv.Atoi(s[i:])
	if err != nil || row < 1 {
		return Ref{}, fmt.Errorf("invalid cell reference %q", s)
	}
	return Ref{Column: col, Row: row}, nil
}

// String renders the reference in A1 notation.
func (r Ref) String() string {
	return ColumnName(r.Column) + strconv.Itoa(r.Row)
}

// ColumnName converts a 1-based column index to its letter form
// (1 -> "A", 27 -> "AA").
func ColumnName(column int) string {
	var b []byte
	for column > 0 {
		column--
		b = append([]byte{byte('A' + column%26)}, b...)
		column /= 26
	}
	return string(b)
}

// Range is an inclusive rectangular cell range.
type Range struct {
	From Ref
	To   Ref
}

// ParseRange parses an A1-style range ("A1:C3"). A bare cell reference is
// accepted as a single-cell range.
func ParseRange(s string) (Range, error) {
	from, to, ok := strings.Cut(s, ":")
	f, err := ParseRef(from)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q", s)
	}
	if !ok {
		return Range{From: f, To: f}, nil
	}
	t, err := ParseRef(to)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q", s)
	}
	return Range{From: f, To: t}, nil
}

// SingleCell reports whether the range spans exactly one cell.
func (r Range) SingleCell() bool {
	return r.From == r.To
}

// String renders the range in A1 notation, collapsing single-cell ranges.
func (r Range) String() string {
	if r.SingleCell() {
		return r.From.String()
	}
	return r.From.String() + ":" + r.To.String()
}

// Absolute renders the range with absolute markers ("$A$1:$C$3"), as used
// in defined names.
func (r Range) Absolute() string {
	abs := func(c Ref) string {
		return "$" + ColumnName(c.Column) + "$" + strconv.Itoa(c.Row)
	}
	if r.SingleCell() {
		return abs(r.From)
	}
	return abs(r.From) + ":" + abs(r.To)
}
