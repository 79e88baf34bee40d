package opc

// RelationshipType identifies the schema relationship type of a package
// edge. The value is the full schema URI so it can be written verbatim into
// a .rels part.
type RelationshipType string

// Relationship types understood by the producer. Anything outside this set
// is carried through the manifest but skipped during part rendering.
const (
	RelCoreProperties     RelationshipType = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelThumbnail          RelationshipType = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
	RelExtendedProperties RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelCustomProperties   RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/custom-properties"
	RelOfficeDocument     RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"

	RelWorksheet            RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	RelChartsheet           RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chartsheet"
	RelDialogsheet          RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/dialogsheet"
	RelStyles               RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTheme                RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelSharedStrings        RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
	RelCalcChain            RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/calcChain"
	RelConnections          RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/connections"
	RelCustomXMLMappings    RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/xmlMaps"
	RelExternalLink         RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/externalLink"
	RelSheetMetadata        RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sheetMetadata"
	RelPivotTable           RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/pivotTable"
	RelRevisionHeaders      RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/revisionHeaders"
	RelVolatileDependencies RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/volatileDependencies"

	RelHyperlink RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelComments  RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	RelDrawing   RelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing"
)

// TargetMode distinguishes package-internal relationship targets from
// external URIs.
type TargetMode int

const (
	// TargetModeInternal marks a target that is a part inside the package.
	TargetModeInternal TargetMode = iota
	// TargetModeExternal marks a target outside the package, e.g. a URL.
	TargetModeExternal
)

// Relationship is a typed, identified edge from one part (or the package
// root) to another part or an external resource. Internal targets are
// expressed relative to the source part's directory.
type Relationship struct {
	ID         string
	Type       RelationshipType
	Target     string
	TargetMode TargetMode
}
