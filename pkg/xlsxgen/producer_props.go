package xlsxgen

import (
	"strconv"
	"time"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
)

// w3cdtf formats a timestamp in the W3C date/time profile used by the
// core-properties part.
func w3cdtf(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// boolWord renders the property-part booleans, which are always spelled
// out regardless of the workbook's short-bool mode.
func boolWord(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// renderCoreProperties writes /docProps/core.xml. Timestamps appear only
// when the model carries them, keeping serialization free of implicit
// clock reads.
func renderCoreProperties(p *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	core := p.source.Core
	x := c.xml

	x.StartElement("cp:coreProperties")
	x.NamespaceDecl(nsCoreProps, "cp")
	x.NamespaceDecl(nsDublinCore, "dc")
	x.NamespaceDecl(nsDCTerms, "dcterms")
	x.NamespaceDecl(nsDCMIType, "dcmitype")
	x.NamespaceDecl(nsXSI, "xsi")

	x.Element("dc:creator", core.Creator)
	x.Element("cp:lastModifiedBy", core.LastModifiedBy)

	if !core.Created.IsZero() {
		x.StartElement("dcterms:created")
		x.Attr("xsi:type", "dcterms:W3CDTF")
		x.Text(w3cdtf(core.Created))
		x.EndElement()
	}
	if !core.Modified.IsZero() {
		x.StartElement("dcterms:modified")
		x.Attr("xsi:type", "dcterms:W3CDTF")
		x.Text(w3cdtf(core.Modified))
		x.EndElement()
	}
	if core.Title != "" {
		x.Element("dc:title", core.Title)
	}

	x.EndElement()
	return nil
}

// renderExtendedProperties writes /docProps/app.xml, including the
// HeadingPairs/TitlesOfParts vectors listing the worksheet titles.
func renderExtendedProperties(p *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	app := p.source.App
	sheets := p.source.Sheets()
	x := c.xml

	x.StartElement("Properties")
	x.NamespaceDecl(nsExtendedProps, "")
	x.NamespaceDecl(nsVTypes, "vt")

	x.Element("Application", app.Application)
	x.Element("DocSecurity", strconv.Itoa(app.DocSecurity))
	x.Element("ScaleCrop", boolWord(app.ScaleCrop))

	x.StartElement("HeadingPairs")
	x.StartElement("vt:vector")
	x.Attr("size", "2")
	x.Attr("baseType", "variant")
	x.StartElement("vt:variant")
	x.Element("vt:lpstr", "Worksheets")
	x.EndElement()
	x.StartElement("vt:variant")
	x.Element("vt:i4", strconv.Itoa(len(sheets)))
	x.EndElement()
	x.EndElement()
	x.EndElement()

	x.StartElement("TitlesOfParts")
	x.StartElement("vt:vector")
	x.Attr("size", strconv.Itoa(len(sheets)))
	x.Attr("baseType", "lpstr")
	for _, ws := range sheets {
		x.Element("vt:lpstr", ws.Title())
	}
	x.EndElement()
	x.EndElement()

	x.Element("Company", app.Company)
	x.Element("LinksUpToDate", boolWord(app.LinksUpToDate))
	x.Element("SharedDoc", boolWord(app.SharedDoc))
	x.Element("HyperlinksChanged", boolWord(app.HyperlinksChanged))
	x.Element("AppVersion", app.AppVersion)

	x.EndElement()
	return nil
}

// renderCustomProperties writes the /docProps/custom.xml stub; the model
// carries no custom property values.
func renderCustomProperties(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	x := c.xml
	x.StartElement("Properties")
	x.NamespaceDecl(nsCustomProps, "")
	x.NamespaceDecl(nsVTypes, "vt")
	x.EndElement()
	return nil
}
