package xlsxgen

import (
	"fmt"
	"io"
	"time"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
)

// CoreProperties are the package-level Dublin Core metadata. Zero-valued
// timestamps are not serialized, which keeps output byte-identical across
// runs unless the caller models them explicitly.
type CoreProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
}

// AppProperties are the extended (application) properties.
type AppProperties struct {
	Application       string
	AppVersion        string
	Company           string
	DocSecurity       int
	ScaleCrop         bool
	LinksUpToDate     bool
	SharedDoc         bool
	HyperlinksChanged bool
}

// FileVersion identifies the application that last edited the workbook.
type FileVersion struct {
	AppName      string
	LastEdited   int
	LowestEdited int
	RupBuild     int
}

// WorkbookView holds the workbook window geometry.
type WorkbookView struct {
	XWindow      int
	YWindow      int
	WindowWidth  int
	WindowHeight int
	TabRatio     int
}

// Workbook is the root of the document model: the sheets, the shared-string
// table, the stylesheet, and the package manifest that ties the parts
// together. Workbooks are not safe for concurrent mutation.
type Workbook struct {
	sheets      []*Worksheet
	sheetRelIDs map[string]string // sheet title -> workbook relationship ID
	nextSheetID int

	sharedStrings []RichText
	sharedIndex   map[string]int

	stylesheet *Stylesheet
	manifest   *opc.Manifest

	Core CoreProperties
	App  AppProperties

	fileVersion    *FileVersion
	view           *WorkbookView
	codeName       string
	calcProperties bool
	customProps    bool
	thumbnail      []byte
	x15            bool
	shortBools     bool
}

// Workbook part locations inside the package.
const (
	workbookPath      = "/xl/workbook.xml"
	stylesPath        = "/xl/styles.xml"
	themePath         = "/xl/theme/theme1.xml"
	sharedStringsPath = "/xl/sharedStrings.xml"
	corePropsPath     = "/docProps/core.xml"
	appPropsPath      = "/docProps/app.xml"
	customPropsPath   = "/docProps/custom.xml"
	thumbnailPath     = "/docProps/thumbnail.png"
)

// NewWorkbook creates an empty workbook with the standard package skeleton:
// content-type defaults, the root relationships (office document, core and
// extended properties), and the workbook's styles, theme, and shared-string
// parts.
func NewWorkbook() *Workbook {
	wb := &Workbook{
		sheetRelIDs: make(map[string]string),
		sharedIndex: make(map[string]int),
		stylesheet:  DefaultStylesheet(),
		manifest:    opc.NewManifest(),
		App: AppProperties{
			Application: "go-xlsxgen",
			AppVersion:  "1.0",
		},
		shortBools: GetGlobalConfig().ShortBools,
	}

	m := wb.manifest
	m.RegisterDefault("rels", opc.ContentTypeRelationships)
	m.RegisterDefault("xml", opc.ContentTypeXML)

	m.AddRelationship(opc.RootPath, opc.Relationship{Type: opc.RelOfficeDocument, Target: "xl/workbook.xml"})
	m.AddRelationship(opc.RootPath, opc.Relationship{Type: opc.RelCoreProperties, Target: "docProps/core.xml"})
	m.AddRelationship(opc.RootPath, opc.Relationship{Type: opc.RelExtendedProperties, Target: "docProps/app.xml"})

	m.RegisterOverride(workbookPath, opc.ContentTypeWorkbook)
	m.RegisterOverride(corePropsPath, opc.ContentTypeCoreProperties)
	m.RegisterOverride(appPropsPath, opc.ContentTypeExtendedProperties)

	m.AddRelationship(workbookPath, opc.Relationship{Type: opc.RelStyles, Target: "styles.xml"})
	m.AddRelationship(workbookPath, opc.Relationship{Type: opc.RelTheme, Target: "theme/theme1.xml"})
	m.AddRelationship(workbookPath, opc.Relationship{Type: opc.RelSharedStrings, Target: "sharedStrings.xml"})

	m.RegisterOverride(stylesPath, opc.ContentTypeStyles)
	m.RegisterOverride(themePath, opc.ContentTypeTheme)
	m.RegisterOverride(sharedStringsPath, opc.ContentTypeSharedStrings)

	return wb
}

// AddSheet appends a worksheet with the given title. The sheet receives the
// next free sheetId, a part path under xl/worksheets/, and a workbook
// relationship.
func (wb *Workbook) AddSheet(title string) (*Worksheet, error) {
	if title == "" {
		return nil, fmt.Errorf("worksheet title must not be empty")
	}
	if _, ok := wb.sheetRelIDs[title]; ok {
		return nil, fmt.Errorf("worksheet %q already exists", title)
	}

	wb.nextSheetID++
	n := len(wb.sheets) + 1
	ws := &Worksheet{
		workbook: wb,
		title:    title,
		id:       wb.nextSheetID,
		path:     fmt.Sprintf("/xl/worksheets/sheet%d.xml", n),
		cells:    make(map[Ref]*Cell),
		rowProps: make(map[int]RowProperties),
		colProps: make(map[int]ColumnProperties),
	}

	rel := wb.manifest.AddRelationship(workbookPath, opc.Relationship{
		Type:   opc.RelWorksheet,
		Target: fmt.Sprintf("worksheets/sheet%d.xml", n),
	})
	wb.manifest.RegisterOverride(ws.path, opc.ContentTypeWorksheet)
	wb.sheetRelIDs[title] = rel.ID
	wb.sheets = append(wb.sheets, ws)
	return ws, nil
}

// Sheets returns the worksheets in the order they were added.
func (wb *Workbook) Sheets() []*Worksheet {
	return wb.sheets
}

// Sheet finds a worksheet by title.
func (wb *Workbook) Sheet(title string) (*Worksheet, bool) {
	for _, ws := range wb.sheets {
		if ws.title == title {
			return ws, true
		}
	}
	return nil, false
}

// SheetRelID returns the workbook relationship ID assigned to a sheet
// title.
func (wb *Workbook) SheetRelID(title string) (string, bool) {
	id, ok := wb.sheetRelIDs[title]
	return id, ok
}

// AddSharedString registers a plain string in the shared-string table and
// returns its zero-based index. Re-adding an existing string returns the
// original index; insertion order is stable.
func (wb *Workbook) AddSharedString(s string) int {
	return wb.AddRichSharedString(PlainText(s))
}

// AddRichSharedString registers a rich-text value in the shared-string
// table with the same deduplication rules as AddSharedString.
func (wb *Workbook) AddRichSharedString(t RichText) int {
	key := t.key()
	if i, ok := wb.sharedIndex[key]; ok {
		return i
	}
	i := len(wb.sharedStrings)
	wb.sharedStrings = append(wb.sharedStrings, t)
	wb.sharedIndex[key] = i
	return i
}

// SharedStrings returns the table entries in insertion order.
func (wb *Workbook) SharedStrings() []RichText {
	return wb.sharedStrings
}

// SharedStringIndex finds the table index of a plain string.
func (wb *Workbook) SharedStringIndex(s string) (int, bool) {
	i, ok := wb.sharedIndex[PlainText(s).key()]
	return i, ok
}

// Stylesheet returns the workbook's mutable stylesheet.
func (wb *Workbook) Stylesheet() *Stylesheet {
	return wb.stylesheet
}

// Manifest returns the package manifest.
func (wb *Workbook) Manifest() *opc.Manifest {
	return wb.manifest
}

// SetThumbnail attaches a PNG thumbnail, registered as a package-level
// binary part.
func (wb *Workbook) SetThumbnail(png []byte) {
	if wb.thumbnail == nil {
		wb.manifest.RegisterDefault("png", opc.ContentTypePNG)
		wb.manifest.AddRelationship(opc.RootPath, opc.Relationship{Type: opc.RelThumbnail, Target: "docProps/thumbnail.png"})
	}
	wb.thumbnail = png
}

// Thumbnail returns the attached thumbnail bytes, or nil.
func (wb *Workbook) Thumbnail() []byte {
	return wb.thumbnail
}

// EnableCustomProperties adds the custom-properties part to the package.
func (wb *Workbook) EnableCustomProperties() {
	if wb.customProps {
		return
	}
	wb.customProps = true
	wb.manifest.AddRelationship(opc.RootPath, opc.Relationship{Type: opc.RelCustomProperties, Target: "docProps/custom.xml"})
	wb.manifest.RegisterOverride(customPropsPath, opc.ContentTypeCustomProperties)
}

// EnableExtensions turns on the x15 vendor-extension namespace in the
// workbook part.
func (wb *Workbook) EnableExtensions() {
	wb.x15 = true
}

// ExtensionsEnabled reports whether x15 extensions are on.
func (wb *Workbook) ExtensionsEnabled() bool {
	return wb.x15
}

// SetShortBools selects between "1"/"0" (the default) and "true"/"false"
// boolean rendering.
func (wb *Workbook) SetShortBools(short bool) {
	wb.shortBools = short
}

// SetFileVersion attaches fileVersion metadata to the workbook part.
func (wb *Workbook) SetFileVersion(fv FileVersion) {
	wb.fileVersion = &fv
}

// SetView attaches workbook window geometry.
func (wb *Workbook) SetView(v WorkbookView) {
	wb.view = &v
}

// SetCodeName sets the VBA code name emitted in workbookPr.
func (wb *Workbook) SetCodeName(name string) {
	wb.codeName = name
}

// SetCalculationProperties enables emission of the calcPr element.
func (wb *Workbook) SetCalculationProperties(enabled bool) {
	wb.calcProperties = enabled
}

// visibleSheetCount counts sheets that are not explicitly hidden.
func (wb *Workbook) visibleSheetCount() int {
	n := 0
	for _, ws := range wb.sheets {
		if ws.Visible() {
			n++
		}
	}
	return n
}

// stringCellCount counts string-typed cells across all sheets; it feeds
// the shared-string table's count attribute.
func (wb *Workbook) stringCellCount() int {
	n := 0
	for _, ws := range wb.sheets {
		for _, c := range ws.cells {
			if c.typ == TypeString {
				n++
			}
		}
	}
	return n
}

// Save serializes the workbook to an .xlsx file.
func (wb *Workbook) Save(path string) error {
	return NewProducer(wb).Save(path)
}

// WriteTo serializes the workbook to a stream.
func (wb *Workbook) WriteTo(w io.Writer) (int64, error) {
	return NewProducer(wb).WriteTo(w)
}

// Bytes serializes the workbook into memory.
func (wb *Workbook) Bytes() ([]byte, error) {
	return NewProducer(wb).Bytes()
}
