package xlsxgen

import (
	"strconv"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/xmlwriter"
)

// styleIndex holds the value-to-position maps for one serialization pass.
// Format records reference fonts, fills, and borders by value; the maps
// resolve each to its table position exactly once.
type styleIndex struct {
	fonts   map[string]int
	fills   map[string]int
	borders map[string]int
	styles  map[string]int
}

func newStyleIndex(s *Stylesheet) *styleIndex {
	idx := &styleIndex{
		fonts:   make(map[string]int, len(s.Fonts)),
		fills:   make(map[string]int, len(s.Fills)),
		borders: make(map[string]int, len(s.Borders)),
		styles:  make(map[string]int, len(s.Styles)),
	}
	for i, f := range s.Fonts {
		if _, ok := idx.fonts[fontKey(f)]; !ok {
			idx.fonts[fontKey(f)] = i
		}
	}
	for i, f := range s.Fills {
		if _, ok := idx.fills[fillKey(f)]; !ok {
			idx.fills[fillKey(f)] = i
		}
	}
	for i, b := range s.Borders {
		if _, ok := idx.borders[borderKey(b)]; !ok {
			idx.borders[borderKey(b)] = i
		}
	}
	for i, st := range s.Styles {
		if _, ok := idx.styles[st.Name]; !ok {
			idx.styles[st.Name] = i
		}
	}
	return idx
}

func (idx *styleIndex) fontID(f Font) (int, error) {
	i, ok := idx.fonts[fontKey(f)]
	if !ok {
		return 0, NewCrossReferenceError("fonts", f.Name)
	}
	return i, nil
}

func (idx *styleIndex) fillID(f Fill) (int, error) {
	i, ok := idx.fills[fillKey(f)]
	if !ok {
		return 0, NewCrossReferenceError("fills", fillKey(f))
	}
	return i, nil
}

func (idx *styleIndex) borderID(b Border) (int, error) {
	i, ok := idx.borders[borderKey(b)]
	if !ok {
		return 0, NewCrossReferenceError("borders", borderKey(b))
	}
	return i, nil
}

// renderStyles writes /xl/styles.xml. Section order is fixed: numFmts,
// fonts, fills, borders, cellStyleXfs, cellXfs, cellStyles, dxfs,
// tableStyles, colors, extLst.
func renderStyles(p *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	sheet := p.source.stylesheet
	idx := newStyleIndex(sheet)
	x := c.xml

	x.StartElement("styleSheet")
	x.NamespaceDecl(nsSpreadsheetML, "")
	if p.source.x15 {
		x.NamespaceDecl(nsMarkupCompat, "mc")
		x.Attr("mc:Ignorable", "x14ac")
		x.NamespaceDecl(nsX14ac, "x14ac")
	}

	if len(sheet.NumberFormats) > 0 {
		x.StartElement("numFmts")
		x.Attr("count", strconv.Itoa(len(sheet.NumberFormats)))
		for _, nf := range sheet.NumberFormats {
			x.StartElement("numFmt")
			x.Attr("numFmtId", strconv.Itoa(nf.ID))
			x.Attr("formatCode", nf.FormatCode)
			x.EndElement()
		}
		x.EndElement()
	}

	if len(sheet.Fonts) > 0 {
		x.StartElement("fonts")
		x.Attr("count", strconv.Itoa(len(sheet.Fonts)))
		if p.source.x15 {
			x.Attr("x14ac:knownFonts", strconv.Itoa(len(sheet.Fonts)))
		}
		for _, f := range sheet.Fonts {
			writeFont(p, x, f)
		}
		x.EndElement()
	}

	if len(sheet.Fills) > 0 {
		x.StartElement("fills")
		x.Attr("count", strconv.Itoa(len(sheet.Fills)))
		for _, f := range sheet.Fills {
			writeFill(x, f)
		}
		x.EndElement()
	}

	if len(sheet.Borders) > 0 {
		x.StartElement("borders")
		x.Attr("count", strconv.Itoa(len(sheet.Borders)))
		for _, b := range sheet.Borders {
			writeBorder(x, b)
		}
		x.EndElement()
	}

	x.StartElement("cellStyleXfs")
	x.Attr("count", strconv.Itoa(len(sheet.Styles)))
	for _, st := range sheet.Styles {
		if err := writeStyleXf(p, x, idx, st); err != nil {
			return NewPartError(c.path, err)
		}
	}
	x.EndElement()

	x.StartElement("cellXfs")
	x.Attr("count", strconv.Itoa(len(sheet.Formats)))
	for _, f := range sheet.Formats {
		if err := writeFormatXf(p, x, idx, f); err != nil {
			return NewPartError(c.path, err)
		}
	}
	x.EndElement()

	x.StartElement("cellStyles")
	x.Attr("count", strconv.Itoa(len(sheet.Styles)))
	for i, st := range sheet.Styles {
		x.StartElement("cellStyle")
		x.Attr("name", st.Name)
		x.Attr("xfId", strconv.Itoa(i))
		if st.BuiltinID != nil {
			x.Attr("builtinId", strconv.Itoa(*st.BuiltinID))
		}
		if st.Hidden {
			x.Attr("hidden", p.writeBool(true))
		}
		if st.CustomBuiltin != nil {
			x.Attr("customBuiltin", p.writeBool(*st.CustomBuiltin))
		}
		x.EndElement()
	}
	x.EndElement()

	x.StartElement("dxfs")
	x.Attr("count", strconv.Itoa(len(sheet.DifferentialFormats)))
	for _, dxf := range sheet.DifferentialFormats {
		x.StartElement("dxf")
		if dxf.Font != nil {
			writeFont(p, x, *dxf.Font)
		}
		if dxf.Fill != nil {
			writeFill(x, *dxf.Fill)
		}
		x.EndElement()
	}
	x.EndElement()

	x.StartElement("tableStyles")
	x.Attr("count", "0")
	x.Attr("defaultTableStyle", "TableStyleMedium9")
	x.Attr("defaultPivotStyle", "PivotStyleMedium7")
	x.EndElement()

	if len(sheet.IndexedColors) > 0 {
		x.StartElement("colors")
		x.StartElement("indexedColors")
		for _, col := range sheet.IndexedColors {
			x.StartElement("rgbColor")
			x.Attr("rgb", col.RGB)
			x.EndElement()
		}
		x.EndElement()
		x.EndElement()
	}

	x.StartElement("extLst")
	x.StartElement("ext")
	x.Attr("uri", "{EB79DEF2-80B8-43e5-95BD-54CBDDF9020C}")
	x.NamespaceDecl(nsX14, "x14")
	x.StartElement("x14:slicerStyles")
	x.Attr("defaultSlicerStyle", "SlicerStyleLight1")
	x.EndElement()
	x.EndElement()
	x.EndElement()

	x.EndElement()
	return nil
}

// writeColorAttrs writes the single reference attribute of a color element.
func writeColorAttrs(x *xmlwriter.Writer, c Color) {
	switch c.Type {
	case ColorTheme:
		x.Attr("theme", strconv.Itoa(c.Theme))
	case ColorIndexed:
		x.Attr("indexed", strconv.Itoa(c.Indexed))
	default:
		x.Attr("rgb", c.RGB)
	}
}

func writeFont(p *Producer, x *xmlwriter.Writer, f Font) {
	x.StartElement("font")
	if f.Bold {
		x.StartElement("b")
		x.Attr("val", p.writeBool(true))
		x.EndElement()
	}
	if f.Italic {
		x.StartElement("i")
		x.Attr("val", p.writeBool(true))
		x.EndElement()
	}
	if f.Underline != "" {
		x.StartElement("u")
		x.Attr("val", f.Underline)
		x.EndElement()
	}
	if f.Strikethrough {
		x.StartElement("strike")
		x.Attr("val", p.writeBool(true))
		x.EndElement()
	}
	x.StartElement("sz")
	x.Attr("val", formatNumber(f.Size))
	x.EndElement()
	if f.Color != nil {
		x.StartElement("color")
		writeColorAttrs(x, *f.Color)
		x.EndElement()
	}
	x.StartElement("name")
	x.Attr("val", f.Name)
	x.EndElement()
	if f.Family != 0 {
		x.StartElement("family")
		x.Attr("val", strconv.Itoa(f.Family))
		x.EndElement()
	}
	if f.Scheme != "" {
		x.StartElement("scheme")
		x.Attr("val", f.Scheme)
		x.EndElement()
	}
	x.EndElement()
}

func writeFill(x *xmlwriter.Writer, f Fill) {
	x.StartElement("fill")
	if pat := f.Pattern; pat != nil {
		x.StartElement("patternFill")
		x.Attr("patternType", pat.PatternType)
		if pat.Foreground != nil {
			x.StartElement("fgColor")
			writeColorAttrs(x, *pat.Foreground)
			x.EndElement()
		}
		if pat.Background != nil {
			x.StartElement("bgColor")
			writeColorAttrs(x, *pat.Background)
			x.EndElement()
		}
		x.EndElement()
	} else if grad := f.Gradient; grad != nil {
		x.StartElement("gradientFill")
		x.Attr("gradientType", grad.Type)
		if grad.Degree != 0 {
			x.Attr("degree", formatNumber(grad.Degree))
		}
		if grad.Left != 0 {
			x.Attr("left", formatNumber(grad.Left))
		}
		if grad.Right != 0 {
			x.Attr("right", formatNumber(grad.Right))
		}
		if grad.Top != 0 {
			x.Attr("top", formatNumber(grad.Top))
		}
		if grad.Bottom != 0 {
			x.Attr("bottom", formatNumber(grad.Bottom))
		}
		for _, stop := range grad.Stops {
			x.StartElement("stop")
			x.Attr("position", formatNumber(stop.Position))
			x.StartElement("color")
			writeColorAttrs(x, stop.Color)
			x.EndElement()
			x.EndElement()
		}
		x.EndElement()
	}
	x.EndElement()
}

func writeBorder(x *xmlwriter.Writer, b Border) {
	x.StartElement("border")
	if b.Diagonal != nil {
		up := b.DiagonalDirection == DiagonalUp || b.DiagonalDirection == DiagonalBoth
		down := b.DiagonalDirection == DiagonalDown || b.DiagonalDirection == DiagonalBoth
		x.Attr("diagonalUp", boolWord(up))
		x.Attr("diagonalDown", boolWord(down))
	}
	sides := []struct {
		name string
		side *BorderSide
	}{
		{"left", b.Left},
		{"right", b.Right},
		{"top", b.Top},
		{"bottom", b.Bottom},
		{"diagonal", b.Diagonal},
	}
	for _, s := range sides {
		if s.side == nil {
			continue
		}
		x.StartElement(s.name)
		if s.side.Style != "" {
			x.Attr("style", s.side.Style)
		}
		if s.side.Color != nil {
			x.StartElement("color")
			writeColorAttrs(x, *s.side.Color)
			x.EndElement()
		}
		x.EndElement()
	}
	x.EndElement()
}

// writeFormatXf writes one cellXfs record, resolving the embedded font,
// fill, and border against the positional tables. A record referencing a
// value absent from its table is a cross-reference error.
func writeFormatXf(p *Producer, x *xmlwriter.Writer, idx *styleIndex, f Format) error {
	fontID, err := idx.fontID(f.Font)
	if err != nil {
		return err
	}
	fillID, err := idx.fillID(f.Fill)
	if err != nil {
		return err
	}
	borderID, err := idx.borderID(f.Border)
	if err != nil {
		return err
	}

	x.StartElement("xf")
	x.Attr("numFmtId", strconv.Itoa(f.NumberFormat.ID))
	x.Attr("fontId", strconv.Itoa(fontID))
	x.Attr("fillId", strconv.Itoa(fillID))
	x.Attr("borderId", strconv.Itoa(borderID))

	if f.ApplyNumberFormat {
		x.Attr("applyNumberFormat", p.writeBool(true))
	}
	if f.ApplyFill {
		x.Attr("applyFill", p.writeBool(true))
	}
	if f.ApplyFont {
		x.Attr("applyFont", p.writeBool(true))
	}
	if f.ApplyBorder {
		x.Attr("applyBorder", p.writeBool(true))
	}
	if f.Alignment != nil {
		x.Attr("applyAlignment", p.writeBool(true))
	}
	if f.Protection != nil {
		x.Attr("applyProtection", p.writeBool(true))
	}
	if f.StyleName != "" {
		styleID, ok := idx.styles[f.StyleName]
		if !ok {
			return NewCrossReferenceError("styles", f.StyleName)
		}
		x.Attr("xfId", strconv.Itoa(styleID))
	}

	if a := f.Alignment; a != nil {
		writeAlignment(p, x, *a)
	}
	if pr := f.Protection; pr != nil {
		x.StartElement("protection")
		x.Attr("locked", p.writeBool(pr.Locked))
		x.Attr("hidden", p.writeBool(pr.Hidden))
		x.EndElement()
	}

	x.EndElement()
	return nil
}

// writeStyleXf writes one cellStyleXfs record for a named style.
func writeStyleXf(p *Producer, x *xmlwriter.Writer, idx *styleIndex, st NamedStyle) error {
	fontID, err := idx.fontID(st.Font)
	if err != nil {
		return err
	}
	fillID, err := idx.fillID(st.Fill)
	if err != nil {
		return err
	}
	borderID, err := idx.borderID(st.Border)
	if err != nil {
		return err
	}

	x.StartElement("xf")
	x.Attr("numFmtId", strconv.Itoa(st.NumberFormat.ID))
	x.Attr("fontId", strconv.Itoa(fontID))
	x.Attr("fillId", strconv.Itoa(fillID))
	x.Attr("borderId", strconv.Itoa(borderID))

	if st.ApplyNumberFormat {
		x.Attr("applyNumberFormat", p.writeBool(true))
	}
	if st.ApplyFill {
		x.Attr("applyFill", p.writeBool(true))
	}
	if st.ApplyFont {
		x.Attr("applyFont", p.writeBool(true))
	}
	if st.ApplyBorder {
		x.Attr("applyBorder", p.writeBool(true))
	}
	if st.Alignment != nil {
		x.Attr("applyAlignment", p.writeBool(true))
	}
	if st.Protection != nil {
		x.Attr("applyProtection", p.writeBool(true))
	}

	if a := st.Alignment; a != nil {
		writeAlignment(p, x, *a)
	}
	if pr := st.Protection; pr != nil {
		x.StartElement("protection")
		x.Attr("locked", p.writeBool(pr.Locked))
		x.Attr("hidden", p.writeBool(pr.Hidden))
		x.EndElement()
	}

	x.EndElement()
	return nil
}

func writeAlignment(p *Producer, x *xmlwriter.Writer, a Alignment) {
	x.StartElement("alignment")
	if a.Vertical != "" {
		x.Attr("vertical", a.Vertical)
	}
	if a.Horizontal != "" {
		x.Attr("horizontal", a.Horizontal)
	}
	if a.TextRotation != 0 {
		x.Attr("textRotation", strconv.Itoa(a.TextRotation))
	}
	if a.WrapText != nil {
		x.Attr("wrapText", p.writeBool(*a.WrapText))
	}
	if a.Indent != 0 {
		x.Attr("indent", strconv.Itoa(a.Indent))
	}
	if a.ShrinkToFit != nil {
		x.Attr("shrinkToFit", p.writeBool(*a.ShrinkToFit))
	}
	x.EndElement()
}
