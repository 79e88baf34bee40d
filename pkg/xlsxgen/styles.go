package xlsxgen

import (
	"fmt"
	"strings"
)

// ColorType selects how a color is referenced.
type ColorType int

const (
	// ColorRGB is a literal ARGB color.
	ColorRGB ColorType = iota
	// ColorTheme references a theme palette slot.
	ColorTheme
	// ColorIndexed references the legacy indexed palette.
	ColorIndexed
)

// Color is a style color in one of the three OOXML reference forms.
type Color struct {
	Type    ColorType
	RGB     string // ARGB hex, e.g. "FF000000"
	Theme   int
	Indexed int
}

// RGBColor builds a literal ARGB color.
func RGBColor(argb string) *Color {
	return &Color{Type: ColorRGB, RGB: argb}
}

// NumberFormat pairs a numeric format id with its format code. IDs below
// 164 are reserved for the builtin formats.
type NumberFormat struct {
	ID         int
	FormatCode string
}

// GeneralFormat is the builtin "General" number format.
var GeneralFormat = NumberFormat{ID: 0}

// Font describes character formatting referenced from format records by
// position in the stylesheet's font table.
type Font struct {
	Bold          bool
	Italic        bool
	Underline     string // e.g. "single", "" when not underlined
	Strikethrough bool
	Size          float64
	Color         *Color
	Name          string
	Family        int
	Scheme        string
}

// PatternFill is a pattern-type fill.
type PatternFill struct {
	PatternType string // "none", "solid", "gray125", ...
	Foreground  *Color
	Background  *Color
}

// GradientStop is one stop of a gradient fill.
type GradientStop struct {
	Position float64
	Color    Color
}

// GradientFill is a gradient-type fill.
type GradientFill struct {
	Type   string // "linear" or "path"
	Degree float64
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Stops  []GradientStop
}

// Fill is either a pattern or a gradient fill; exactly one of the two
// fields should be set.
type Fill struct {
	Pattern  *PatternFill
	Gradient *GradientFill
}

// BorderSide describes one edge of a border.
type BorderSide struct {
	Style string // "thin", "medium", ... "" for style-less sides
	Color *Color
}

// DiagonalDirection selects which diagonal lines a border draws.
type DiagonalDirection int

const (
	// DiagonalNone draws no diagonal.
	DiagonalNone DiagonalDirection = iota
	// DiagonalUp draws bottom-left to top-right.
	DiagonalUp
	// DiagonalDown draws top-left to bottom-right.
	DiagonalDown
	// DiagonalBoth draws both diagonals.
	DiagonalBoth
)

// Border describes all edges of a cell border. Nil sides are absent.
type Border struct {
	Left     *BorderSide
	Right    *BorderSide
	Top      *BorderSide
	Bottom   *BorderSide
	Diagonal *BorderSide
	// DiagonalDirection is meaningful only when Diagonal is set.
	DiagonalDirection DiagonalDirection
}

// Alignment holds the optional alignment block of a format record. Empty
// strings and nil pointers are absent.
type Alignment struct {
	Horizontal   string
	Vertical     string
	TextRotation int
	Indent       int
	WrapText     *bool
	ShrinkToFit  *bool
}

// Protection holds the optional protection block of a format record.
type Protection struct {
	Locked bool
	Hidden bool
}

// Format is a cell format record (an entry of cellXfs). It references its
// font, fill, and border by value; serialization resolves each to a
// positional index against the stylesheet tables and fails when no table
// entry matches.
type Format struct {
	NumberFormat NumberFormat
	Font         Font
	Fill         Fill
	Border       Border

	ApplyNumberFormat bool
	ApplyFont         bool
	ApplyFill         bool
	ApplyBorder       bool

	Alignment  *Alignment
	Protection *Protection

	// StyleName links the record to a named style; resolved to an xfId.
	StyleName string
}

// NamedStyle is a named cell style (an entry of cellStyles plus its
// cellStyleXfs record). Cross-referencing follows the same rules as Format.
type NamedStyle struct {
	Name          string
	BuiltinID     *int
	Hidden        bool
	CustomBuiltin *bool

	NumberFormat NumberFormat
	Font         Font
	Fill         Fill
	Border       Border

	ApplyNumberFormat bool
	ApplyFont         bool
	ApplyFill         bool
	ApplyBorder       bool

	Alignment  *Alignment
	Protection *Protection
}

// DifferentialFormat is a partial style record used by conditional
// formatting, independent of the positional tables.
type DifferentialFormat struct {
	Font *Font
	Fill *Fill
}

// Stylesheet is the workbook's canonical style state. The slices are the
// positional tables that cell formats index into.
type Stylesheet struct {
	NumberFormats       []NumberFormat
	Fonts               []Font
	Fills               []Fill
	Borders             []Border
	Formats             []Format
	Styles              []NamedStyle
	DifferentialFormats []DifferentialFormat
	IndexedColors       []Color
}

// DefaultStylesheet builds the minimal stylesheet every new workbook
// starts with: one default font, the two mandatory fills, an empty border,
// one format record, and the builtin Normal style.
func DefaultStylesheet() *Stylesheet {
	font := Font{Size: 12, Color: &Color{Type: ColorTheme, Theme: 1}, Name: "Calibri", Family: 2, Scheme: "minor"}
	fills := []Fill{
		{Pattern: &PatternFill{PatternType: "none"}},
		{Pattern: &PatternFill{PatternType: "gray125"}},
	}
	border := Border{}
	builtin := 0
	return &Stylesheet{
		Fonts:   []Font{font},
		Fills:   fills,
		Borders: []Border{border},
		Formats: []Format{{Font: font, Fill: fills[0], Border: border, StyleName: "Normal"}},
		Styles:  []NamedStyle{{Name: "Normal", BuiltinID: &builtin, Font: font, Fill: fills[0], Border: border}},
	}
}

// AddNumberFormat appends a custom number format and returns its id.
func (s *Stylesheet) AddNumberFormat(nf NumberFormat) int {
	s.NumberFormats = append(s.NumberFormats, nf)
	return nf.ID
}

// AddFont appends a font to the font table and returns its position.
func (s *Stylesheet) AddFont(f Font) int {
	s.Fonts = append(s.Fonts, f)
	return len(s.Fonts) - 1
}

// AddFill appends a fill to the fill table and returns its position.
func (s *Stylesheet) AddFill(f Fill) int {
	s.Fills = append(s.Fills, f)
	return len(s.Fills) - 1
}

// AddBorder appends a border to the border table and returns its position.
func (s *Stylesheet) AddBorder(b Border) int {
	s.Borders = append(s.Borders, b)
	return len(s.Borders) - 1
}

// AddFormat appends a cell format record and returns its id, which is what
// Cell.SetFormat takes. The referenced font, fill, and border must already
// be present in their tables or serialization will fail.
func (s *Stylesheet) AddFormat(f Format) int {
	s.Formats = append(s.Formats, f)
	return len(s.Formats) - 1
}

// AddStyle appends a named style record and returns its position.
func (s *Stylesheet) AddStyle(st NamedStyle) int {
	s.Styles = append(s.Styles, st)
	return len(s.Styles) - 1
}

// Value-identity keys for the positional tables. Serialization builds one
// key -> position map per table per pass, replacing the linear scans of a
// naive implementation.

func colorKey(c *Color) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%s:%d:%d", c.Type, c.RGB, c.Theme, c.Indexed)
}

func fontKey(f Font) string {
	return fmt.Sprintf("%t|%t|%s|%t|%v|%s|%s|%d|%s",
		f.Bold, f.Italic, f.Underline, f.Strikethrough, f.Size, colorKey(f.Color), f.Name, f.Family, f.Scheme)
}

func fillKey(f Fill) string {
	var b strings.Builder
	if p := f.Pattern; p != nil {
		fmt.Fprintf(&b, "p|%s|%s|%s", p.PatternType, colorKey(p.Foreground), colorKey(p.Background))
	}
	if g := f.Gradient; g != nil {
		fmt.Fprintf(&b, "g|%s|%v|%v|%v|%v|%v", g.Type, g.Degree, g.Left, g.Right, g.Top, g.Bottom)
		for _, stop := range g.Stops {
			fmt.Fprintf(&b, "|%v:%s", stop.Position, colorKey(&stop.Color))
		}
	}
	return b.String()
}

func borderSideKey(s *BorderSide) string {
	if s == nil {
		return "-"
	}
	return s.Style + ":" + colorKey(s.Color)
}

func borderKey(b Border) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d",
		borderSideKey(b.Left), borderSideKey(b.Right), borderSideKey(b.Top),
		borderSideKey(b.Bottom), borderSideKey(b.Diagonal), b.DiagonalDirection)
}
