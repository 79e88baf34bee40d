package xlsxgen

import (
	"strconv"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/xmlwriter"
)

// formatNumber renders a float with the fewest digits that round-trip.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderWorksheet writes one /xl/worksheets/sheetN.xml part. The sheet is
// located through the workbook relationship ID so reordering sheets never
// detaches a part from its relationship.
func renderWorksheet(p *Producer, _ *opc.Archive, c *cursor, rel opc.Relationship) error {
	var ws *Worksheet
	for _, candidate := range p.source.Sheets() {
		if id, ok := p.source.SheetRelID(candidate.Title()); ok && id == rel.ID {
			ws = candidate
			break
		}
	}
	if ws == nil {
		return NewPartError(c.path, NewStructuralError("no worksheet for relationship "+rel.ID))
	}

	x := c.xml

	x.StartElement("worksheet")
	x.NamespaceDecl(nsSpreadsheetML, "")
	x.NamespaceDecl(nsOfficeDocRels, "r")
	if ws.x14ac {
		x.NamespaceDecl(nsMarkupCompat, "mc")
		x.Attr("mc:Ignorable", "x14ac")
		x.NamespaceDecl(nsX14ac, "x14ac")
	}

	if ps := ws.pageSetup; ps != nil {
		x.StartElement("sheetPr")
		x.StartElement("outlinePr")
		x.Attr("summaryBelow", "1")
		x.Attr("summaryRight", "1")
		x.EndElement()
		x.StartElement("pageSetUpPr")
		x.Attr("fitToPage", p.writeBool(ps.FitToPage))
		x.EndElement()
		x.EndElement()
	}

	if dim, ok := ws.dimension(); ok {
		x.StartElement("dimension")
		if dim.SingleCell() {
			x.Attr("ref", dim.From.String())
		} else {
			x.Attr("ref", dim.String())
		}
		x.EndElement()
	}

	if ws.view != nil || ws.frozenPanes != nil {
		writeSheetViews(x, ws)
	}

	if ws.formatProperties {
		x.StartElement("sheetFormatPr")
		x.Attr("baseColWidth", "10")
		x.Attr("defaultRowHeight", "16")
		if ws.x14ac {
			x.Attr("x14ac:dyDescent", "0.2")
		}
		x.EndElement()
	}

	if lo, hi, ok := ws.columnRange(); ok {
		x.StartElement("cols")
		for col := lo; col <= hi; col++ {
			props, ok := ws.colProps[col]
			if !ok {
				continue
			}
			x.StartElement("col")
			x.Attr("min", strconv.Itoa(col))
			x.Attr("max", strconv.Itoa(col))
			x.Attr("width", formatNumber(props.Width))
			x.Attr("style", strconv.Itoa(props.Style))
			x.Attr("customWidth", p.writeBool(props.Custom))
			x.EndElement()
		}
		x.EndElement()
	}

	x.StartElement("sheetData")
	for _, row := range ws.rowNumbers() {
		writeRow(p, x, ws, row)
	}
	x.EndElement()

	if ws.autoFilter != nil {
		x.StartElement("autoFilter")
		x.Attr("ref", ws.autoFilter.String())
		x.EndElement()
	}

	if len(ws.mergedRanges) > 0 {
		x.StartElement("mergeCells")
		x.Attr("count", strconv.Itoa(len(ws.mergedRanges)))
		for _, r := range ws.mergedRanges {
			x.StartElement("mergeCell")
			x.Attr("ref", r.String())
			x.EndElement()
		}
		x.EndElement()
	}

	if len(ws.hyperlinks) > 0 {
		x.StartElement("hyperlinks")
		for _, link := range ws.hyperlinks {
			x.StartElement("hyperlink")
			x.Attr("display", link.Display)
			x.Attr("ref", link.Ref.String())
			x.AttrNS(nsOfficeDocRels, "id", link.relID)
			x.EndElement()
		}
		x.EndElement()
	}

	if ps := ws.pageSetup; ps != nil {
		x.StartElement("printOptions")
		x.Attr("horizontalCentered", p.writeBool(ps.HorizontalCentered))
		x.Attr("verticalCentered", p.writeBool(ps.VerticalCentered))
		x.EndElement()
	}

	if pm := ws.pageMargins; pm != nil {
		x.StartElement("pageMargins")
		x.Attr("left", formatNumber(pm.Left))
		x.Attr("right", formatNumber(pm.Right))
		x.Attr("top", formatNumber(pm.Top))
		x.Attr("bottom", formatNumber(pm.Bottom))
		x.Attr("header", formatNumber(pm.Header))
		x.Attr("footer", formatNumber(pm.Footer))
		x.EndElement()
	}

	if ps := ws.pageSetup; ps != nil {
		orientation := "portrait"
		if ps.Orientation == "landscape" {
			orientation = "landscape"
		}
		x.StartElement("pageSetup")
		x.Attr("orientation", orientation)
		x.Attr("paperSize", strconv.Itoa(ps.PaperSize))
		x.Attr("fitToHeight", p.writeBool(ps.FitToHeight))
		x.Attr("fitToWidth", p.writeBool(ps.FitToWidth))
		x.EndElement()
	}

	if hf := ws.headerFooter; hf != nil {
		x.StartElement("headerFooter")
		x.Element("oddHeader", hf.OddHeader)
		x.Element("oddFooter", hf.OddFooter)
		x.EndElement()
	}

	x.EndElement()
	return nil
}

// writeSheetViews emits the sheetViews block, including the frozen-pane
// element and its selections when panes are frozen.
func writeSheetViews(x *xmlwriter.Writer, ws *Worksheet) {
	x.StartElement("sheetViews")
	x.StartElement("sheetView")
	x.Attr("tabSelected", "1")
	x.Attr("workbookViewId", "0")

	if ws.frozenPanes == nil {
		if ws.view != nil && len(ws.view.Selections) > 0 {
			first := ws.view.Selections[0]
			if first.ActiveCell != nil {
				x.StartElement("selection")
				x.Attr("activeCell", first.ActiveCell.String())
				x.Attr("sqref", first.ActiveCell.String())
				x.EndElement()
			}
		}
		x.EndElement()
		x.EndElement()
		return
	}

	panes := *ws.frozenPanes
	splitCols := panes.Column > 1
	splitRows := panes.Row > 1

	activePane := "bottomRight"
	x.StartElement("pane")
	if splitCols {
		x.Attr("xSplit", strconv.Itoa(panes.Column-1))
		activePane = "topRight"
	}
	if splitRows {
		x.Attr("ySplit", strconv.Itoa(panes.Row-1))
		activePane = "bottomLeft"
	}
	if splitCols && splitRows {
		activePane = "bottomRight"
	}
	x.Attr("topLeftCell", panes.String())
	x.Attr("activePane", activePane)
	x.Attr("state", "frozen")
	x.EndElement()

	if splitCols && splitRows {
		x.StartElement("selection")
		x.Attr("pane", "topRight")
		x.EndElement()
		x.StartElement("selection")
		x.Attr("pane", "bottomLeft")
		x.EndElement()
	}

	x.StartElement("selection")
	switch {
	case splitCols && splitRows:
		x.Attr("pane", "bottomRight")
	case splitRows:
		x.Attr("pane", "bottomLeft")
	case splitCols:
		x.Attr("pane", "topRight")
	}
	x.EndElement()

	x.EndElement()
	x.EndElement()
}

// writeRow emits one sheetData row. Rows whose cells are all empty are
// dropped entirely; the spans attribute still covers every cell slot the
// row ever held.
func writeRow(p *Producer, x *xmlwriter.Writer, ws *Worksheet, row int) {
	cells := ws.rowCells(row)

	minCol, maxCol := 0, 0
	anyLive := false
	for i, c := range cells {
		col := c.ref.Column
		if i == 0 {
			minCol, maxCol = col, col
		}
		if col < minCol {
			minCol = col
		}
		if col > maxCol {
			maxCol = col
		}
		if !c.GarbageCollectible() {
			anyLive = true
		}
	}
	if !anyLive {
		return
	}

	x.StartElement("row")
	x.Attr("r", strconv.Itoa(row))
	x.Attr("spans", strconv.Itoa(minCol)+":"+strconv.Itoa(maxCol))

	if props, ok := ws.rowProps[row]; ok {
		x.Attr("customHeight", "1")
		if numberIsIntegral(props.Height) {
			x.Attr("ht", strconv.FormatInt(int64(props.Height), 10)+".0")
		} else {
			x.Attr("ht", formatNumber(props.Height))
		}
	}

	for _, c := range cells {
		if c.GarbageCollectible() {
			continue
		}
		writeCell(p, x, c)
	}

	x.EndElement()
}

// writeCell emits one c element. String cells resolve against the
// shared-string table; a miss falls back to an inline string (or a bare
// t="s" cell when the text is empty). Formula cells carry the cached value
// in v and never a style attribute.
func writeCell(p *Producer, x *xmlwriter.Writer, c *Cell) {
	x.StartElement("c")
	x.Attr("r", c.ref.String())

	switch c.typ {
	case TypeString:
		if c.HasFormula() {
			x.Attr("t", "str")
			x.Element("f", c.formula)
			x.Element("v", c.text)
			x.EndElement()
			return
		}
		if i, ok := p.source.SharedStringIndex(c.text); ok {
			x.Attr("t", "s")
			writeCellStyle(x, c)
			x.Element("v", strconv.Itoa(i))
		} else if c.text == "" {
			x.Attr("t", "s")
			writeCellStyle(x, c)
		} else {
			x.Attr("t", "inlineStr")
			writeCellStyle(x, c)
			x.StartElement("is")
			x.Element("t", c.text)
			x.EndElement()
		}

	case TypeBool:
		x.Attr("t", "b")
		writeCellStyle(x, c)
		if c.boolean {
			x.Element("v", "1")
		} else {
			x.Element("v", "0")
		}

	case TypeNumeric:
		if c.HasFormula() {
			x.Element("f", c.formula)
			x.Element("v", formatNumber(c.number))
			x.EndElement()
			return
		}
		x.Attr("t", "n")
		writeCellStyle(x, c)
		if numberIsIntegral(c.number) {
			x.Element("v", strconv.FormatInt(int64(c.number), 10))
		} else {
			x.Element("v", formatNumber(c.number))
		}

	case TypeNull:
		if c.HasFormula() {
			x.Element("f", c.formula)
			x.Element("v", "")
			x.EndElement()
			return
		}
		writeCellStyle(x, c)
	}

	x.EndElement()
}

func writeCellStyle(x *xmlwriter.Writer, c *Cell) {
	if id, ok := c.Format(); ok {
		x.Attr("s", strconv.Itoa(id))
	}
}
