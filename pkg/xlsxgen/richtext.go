package xlsxgen

import (
	"fmt"
	"strings"
)

// TextRun is one run of a rich-text value, optionally with run-level
// formatting.
type TextRun struct {
	Text       string
	Formatting *RunFormatting
}

// RunFormatting holds run-level character formatting. Zero-valued fields
// are treated as absent.
type RunFormatting struct {
	Size   float64
	Color  string // ARGB hex, e.g. "FF445566"
	Font   string
	Family int
	Scheme string
}

// RichText is a string value composed of one or more runs. Cells and the
// shared-string table both carry RichText; a value built from PlainText has
// a single run without formatting.
type RichText struct {
	Runs []TextRun
}

// PlainText wraps a plain string as an unformatted single-run value.
func PlainText(s string) RichText {
	return RichText{Runs: []TextRun{{Text: s}}}
}

// Plain concatenates the text of all runs, discarding formatting.
func (t RichText) Plain() string {
	if len(t.Runs) == 1 {
		return t.Runs[0].Text
	}
	var b strings.Builder
	for _, run := range t.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// IsPlain reports whether the value is a single run with no formatting.
func (t RichText) IsPlain() bool {
	return len(t.Runs) == 1 && t.Runs[0].Formatting == nil
}

// key produces a deterministic identity used for deduplication in the
// shared-string table.
func (t RichText) key() string {
	if t.IsPlain() {
		return "p\x00" + t.Runs[0].Text
	}
	var b strings.Builder
	for _, run := range t.Runs {
		b.WriteString("r\x00")
		b.WriteString(run.Text)
		if f := run.Formatting; f != nil {
			fmt.Fprintf(&b, "\x00%v\x00%s\x00%s\x00%d\x00%s", f.Size, f.Color, f.Font, f.Family, f.Scheme)
		}
		b.WriteString("\x01")
	}
	return b.String()
}
