package xlsxgen

import (
	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
)

// The minor workbook and sheet parts are structural stubs: each renders
// only its root element so the package stays well-formed when a manifest
// carries one of these relationships.

var sheetRenderers = map[opc.RelationshipType]renderFunc{
	opc.RelComments: renderComments,
	opc.RelDrawing:  renderDrawings,
}

func renderStub(c *cursor, root string) error {
	c.xml.StartElement(root)
	c.xml.EndElement()
	return nil
}

func renderCalcChain(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "calcChain")
}

func renderChartsheet(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "chartsheet")
}

func renderConnections(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "connections")
}

func renderCustomXMLMappings(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "MapInfo")
}

func renderDialogsheet(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "dialogsheet")
}

func renderExternalWorkbookReferences(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "externalLink")
}

func renderMetadata(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "metadata")
}

func renderPivotTable(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "pivotTableDefinition")
}

func renderRevisionHeaders(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "headers")
}

func renderVolatileDependencies(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "volTypes")
}

func renderComments(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "comments")
}

func renderDrawings(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	return renderStub(c, "wsDr")
}
