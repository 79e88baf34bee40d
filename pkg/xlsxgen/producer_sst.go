package xlsxgen

import (
	"strconv"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
)

// renderSharedStringTable writes /xl/sharedStrings.xml. count is the number
// of string-typed cells across all sheets; uniqueCount is the table size.
func renderSharedStringTable(p *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	x := c.xml

	x.StartElement("sst")
	x.NamespaceDecl(nsSpreadsheetML, "")
	x.Attr("count", strconv.Itoa(p.source.stringCellCount()))
	x.Attr("uniqueCount", strconv.Itoa(len(p.source.SharedStrings())))

	for _, entry := range p.source.SharedStrings() {
		x.StartElement("si")
		if entry.IsPlain() {
			x.Element("t", entry.Runs[0].Text)
			x.EndElement()
			continue
		}
		for _, run := range entry.Runs {
			x.StartElement("r")
			if f := run.Formatting; f != nil {
				x.StartElement("rPr")
				if f.Size != 0 {
					x.StartElement("sz")
					x.Attr("val", formatNumber(f.Size))
					x.EndElement()
				}
				if f.Color != "" {
					x.StartElement("color")
					x.Attr("rgb", f.Color)
					x.EndElement()
				}
				if f.Font != "" {
					x.StartElement("rFont")
					x.Attr("val", f.Font)
					x.EndElement()
				}
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
			x.Element("t", run.Text)
			x.EndElement()
		}
		x.EndElement()
	}

	x.EndElement()
	return nil
}
