package xlsxgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/xmlwriter"
)

// Namespace URIs used across the package parts.
const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsSpreadsheetML = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsOfficeDocRels = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsMarkupCompat  = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	nsX15           = "http://schemas.microsoft.com/office/spreadsheetml/2010/11/main"
	nsX14ac         = "http://schemas.microsoft.com/office/spreadsheetml/2009/9/ac"
	nsX14           = "http://schemas.microsoft.com/office/spreadsheetml/2009/9/main"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDublinCore    = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsDCMIType      = "http://purl.org/dc/dcmitype/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"
	nsExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsVTypes        = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsCustomProps   = "http://schemas.openxmlformats.org/officeDocument/2006/custom-properties"
	nsDrawingML     = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsThm15         = "http://schemas.microsoft.com/office/thememl/2012/main"
)

// cursor binds one XML writer to one in-progress part's output buffer.
// Exactly one cursor is live at a time; rendering is single-part-at-a-time,
// depth-first.
type cursor struct {
	path string
	buf  bytes.Buffer
	xml  *xmlwriter.Writer
}

func newCursor(path string) *cursor {
	c := &cursor{path: path}
	c.xml = xmlwriter.New(&c.buf)
	return c
}

// finish releases the cursor, returning the part's bytes or the writer's
// first error.
func (c *cursor) finish() ([]byte, error) {
	if err := c.xml.Err(); err != nil {
		return nil, NewPartError(c.path, err)
	}
	return c.buf.Bytes(), nil
}

// renderFunc renders one part into the cursor's buffer. The archive is
// passed through so the workbook renderer can recurse into its child
// parts; leaf renderers ignore it.
type renderFunc func(p *Producer, dest *opc.Archive, c *cursor, rel opc.Relationship) error

// Renderer dispatch tables keyed by relationship type. Types without an
// entry are skipped, which keeps the producer forward compatible with
// package features it does not model.
var rootRenderers = map[opc.RelationshipType]renderFunc{
	opc.RelCoreProperties:     renderCoreProperties,
	opc.RelExtendedProperties: renderExtendedProperties,
	opc.RelCustomProperties:   renderCustomProperties,
	opc.RelOfficeDocument:     renderWorkbook,
}

var workbookRenderers = map[opc.RelationshipType]renderFunc{
	opc.RelCalcChain:            renderCalcChain,
	opc.RelChartsheet:           renderChartsheet,
	opc.RelConnections:          renderConnections,
	opc.RelCustomXMLMappings:    renderCustomXMLMappings,
	opc.RelDialogsheet:          renderDialogsheet,
	opc.RelExternalLink:         renderExternalWorkbookReferences,
	opc.RelSheetMetadata:        renderMetadata,
	opc.RelPivotTable:           renderPivotTable,
	opc.RelSharedStrings:        renderSharedStringTable,
	opc.RelRevisionHeaders:      renderRevisionHeaders,
	opc.RelStyles:               renderStyles,
	opc.RelTheme:                renderTheme,
	opc.RelVolatileDependencies: renderVolatileDependencies,
	opc.RelWorksheet:            renderWorksheet,
}

// Producer serializes one workbook into an OOXML package. It reads the
// workbook as an immutable snapshot; the same state always yields
// byte-identical output.
type Producer struct {
	source *Workbook
	log    *Logger
	strict bool
}

// NewProducer creates a producer over the given workbook.
func NewProducer(wb *Workbook) *Producer {
	return &Producer{
		source: wb,
		log:    GetLogger().WithField("component", "producer"),
		strict: GetGlobalConfig().StrictMode,
	}
}

// Save writes the package to an .xlsx file. On any error nothing is
// written to disk.
func (p *Producer) Save(path string) error {
	dest, err := p.populate()
	if err != nil {
		return err
	}
	return dest.SaveToFile(path)
}

// WriteTo writes the package to a stream. On a rendering error nothing is
// written; archive I/O errors propagate unchanged.
func (p *Producer) WriteTo(w io.Writer) (int64, error) {
	dest, err := p.populate()
	if err != nil {
		return 0, err
	}
	return dest.WriteTo(w)
}

// Bytes renders the package into memory.
func (p *Producer) Bytes() ([]byte, error) {
	dest, err := p.populate()
	if err != nil {
		return nil, err
	}
	return dest.Bytes()
}

// populate runs the whole write pass: content types first, then the root
// relationships and their parts, recursing through the workbook into its
// child parts. Everything lands in an in-memory archive so a failure never
// leaves a partial package behind.
func (p *Producer) populate() (*opc.Archive, error) {
	if p.source.visibleSheetCount() == 0 {
		return nil, NewStructuralError("workbook has no visible worksheets")
	}

	dest := opc.NewArchive()
	manifest := p.source.manifest

	if err := p.writeContentTypes(dest); err != nil {
		return nil, err
	}

	rootRels := manifest.Relationships(opc.RootPath)
	if err := p.writeRelationships(dest, opc.RootPath, rootRels); err != nil {
		return nil, err
	}

	for _, rel := range rootRels {
		target := opc.ResolveTarget(opc.RootPath, rel.Target)

		// The thumbnail is a binary part; its bytes bypass the XML layer.
		if rel.Type == opc.RelThumbnail {
			dest.WritePart(target, p.source.thumbnail)
			continue
		}

		render, ok := rootRenderers[rel.Type]
		if !ok {
			if err := p.skipRelationship(rel); err != nil {
				return nil, err
			}
			continue
		}

		c := newCursor(target)
		if err := render(p, dest, c, rel); err != nil {
			return nil, err
		}
		content, err := c.finish()
		if err != nil {
			return nil, err
		}
		dest.WritePart(target, content)
	}

	return dest, nil
}

// skipRelationship handles a relationship type with no renderer. In strict
// mode this is an error; otherwise it is logged and ignored.
func (p *Producer) skipRelationship(rel opc.Relationship) error {
	if p.strict {
		return fmt.Errorf("no renderer for relationship type %s (id %s)", rel.Type, rel.ID)
	}
	p.log.Debug("skipping relationship %s with unhandled type %s", rel.ID, rel.Type)
	return nil
}

// writeContentTypes renders [Content_Types].xml from the manifest's
// extension defaults and part overrides, defaults first, each group in
// registration order.
func (p *Producer) writeContentTypes(dest *opc.Archive) error {
	c := newCursor(opc.ContentTypesPath)
	x := c.xml

	x.StartElement("Types")
	x.NamespaceDecl(nsContentTypes, "")

	for _, def := range p.source.manifest.Defaults() {
		x.StartElement("Default")
		x.Attr("Extension", def.Extension)
		x.Attr("ContentType", def.ContentType)
		x.EndElement()
	}

	for _, ov := range p.source.manifest.Overrides() {
		x.StartElement("Override")
		x.Attr("PartName", ov.PartName)
		x.Attr("ContentType", ov.ContentType)
		x.EndElement()
	}

	x.EndElement()

	content, err := c.finish()
	if err != nil {
		return err
	}
	dest.WritePart(opc.ContentTypesPath, content)
	return nil
}

// writeRelationships renders the .rels sibling part for the given source
// part. Callers only invoke it for parts with at least one outgoing
// relationship.
func (p *Producer) writeRelationships(dest *opc.Archive, source string, rels []opc.Relationship) error {
	relsPath := opc.RelsPath(source)
	c := newCursor(relsPath)
	x := c.xml

	x.StartElement("Relationships")
	x.NamespaceDecl(nsRelationships, "")

	for _, rel := range rels {
		x.StartElement("Relationship")
		x.Attr("Id", rel.ID)
		x.Attr("Type", string(rel.Type))
		x.Attr("Target", rel.Target)
		if rel.TargetMode == opc.TargetModeExternal {
			x.Attr("TargetMode", "External")
		}
		x.EndElement()
	}

	x.EndElement()

	content, err := c.finish()
	if err != nil {
		return err
	}
	dest.WritePart(relsPath, content)
	return nil
}

// writeBool renders a boolean attribute value honoring the workbook's
// short-bool mode.
func (p *Producer) writeBool(v bool) string {
	if p.source.shortBools {
		if v {
			return "1"
		}
		return "0"
	}
	if v {
		return "true"
	}
	return "false"
}
