package xlsxgen

import (
	"fmt"
	"sort"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
)

// SheetState is the visibility of a worksheet tab.
type SheetState int

const (
	// StateVisible is the normal, shown state.
	StateVisible SheetState = iota
	// StateHidden hides the sheet tab.
	StateHidden
)

// PageSetup carries a worksheet's print and visibility settings. A sheet
// without page setup is treated as visible with default printing.
type PageSetup struct {
	State              SheetState
	Orientation        string // "portrait" or "landscape"
	PaperSize          int
	FitToPage          bool
	FitToHeight        bool
	FitToWidth         bool
	HorizontalCentered bool
	VerticalCentered   bool
}

// PageMargins holds the six page margins in inches.
type PageMargins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Header float64
	Footer float64
}

// RowProperties carries explicit per-row metadata.
type RowProperties struct {
	Height float64
}

// ColumnProperties carries explicit per-column metadata.
type ColumnProperties struct {
	Width  float64
	Style  int
	Custom bool
}

// Selection is one selected region of a sheet view.
type Selection struct {
	ActiveCell *Ref
}

// SheetView describes how a worksheet is displayed.
type SheetView struct {
	Selections []Selection
}

// HeaderFooter holds header and footer text in the OOXML encoded form
// (with &L/&C/&R section markers).
type HeaderFooter struct {
	OddHeader string
	OddFooter string
}

// Hyperlink ties a cell to an external target through a sheet-level
// relationship.
type Hyperlink struct {
	Ref     Ref
	Target  string
	Display string
	relID   string
}

// Worksheet is one sheet of a workbook. Create worksheets with
// Workbook.AddSheet; the zero value is not usable.
type Worksheet struct {
	workbook *Workbook
	title    string
	id       int
	path     string

	cells    map[Ref]*Cell
	rowProps map[int]RowProperties
	colProps map[int]ColumnProperties

	pageSetup    *PageSetup
	pageMargins  *PageMargins
	view         *SheetView
	frozenPanes  *Ref
	mergedRanges []Range
	autoFilter   *Range
	headerFooter *HeaderFooter
	hyperlinks   []Hyperlink

	formatProperties bool
	x14ac            bool
}

// Title returns the sheet's tab name.
func (ws *Worksheet) Title() string {
	return ws.title
}

// ID returns the sheet's persistent numeric identifier (sheetId). It is
// assigned at creation and does not change when sheets are reordered.
func (ws *Worksheet) ID() int {
	return ws.id
}

// Path returns the sheet part's archive-absolute path.
func (ws *Worksheet) Path() string {
	return ws.path
}

// Visible reports whether the sheet is shown. A sheet with no page setup
// information is visible.
func (ws *Worksheet) Visible() bool {
	return ws.pageSetup == nil || ws.pageSetup.State == StateVisible
}

// Cell returns the cell at an A1-style reference, creating it if needed.
func (ws *Worksheet) Cell(ref string) (*Cell, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	return ws.CellAt(r), nil
}

// CellAt returns the cell at a coordinate, creating it if needed.
func (ws *Worksheet) CellAt(r Ref) *Cell {
	if c, ok := ws.cells[r]; ok {
		return c
	}
	c := &Cell{ref: r}
	ws.cells[r] = c
	return c
}

// SetNumber stores a numeric value at an A1-style reference.
func (ws *Worksheet) SetNumber(ref string, v float64) error {
	c, err := ws.Cell(ref)
	if err != nil {
		return err
	}
	c.SetNumber(v)
	return nil
}

// SetBool stores a boolean value at an A1-style reference.
func (ws *Worksheet) SetBool(ref string, v bool) error {
	c, err := ws.Cell(ref)
	if err != nil {
		return err
	}
	c.SetBool(v)
	return nil
}

// SetString stores a string value and registers it in the workbook's
// shared-string table, so the cell serializes as a table reference.
func (ws *Worksheet) SetString(ref, s string) error {
	c, err := ws.Cell(ref)
	if err != nil {
		return err
	}
	c.typ = TypeString
	c.text = s
	ws.workbook.AddSharedString(s)
	return nil
}

// SetInlineString stores a string value without touching the shared-string
// table; unless the same text happens to be in the table already, the cell
// serializes as an inline string.
func (ws *Worksheet) SetInlineString(ref, s string) error {
	c, err := ws.Cell(ref)
	if err != nil {
		return err
	}
	c.typ = TypeString
	c.text = s
	return nil
}

// SetFormula attaches a formula at an A1-style reference.
func (ws *Worksheet) SetFormula(ref, formula string) error {
	c, err := ws.Cell(ref)
	if err != nil {
		return err
	}
	c.SetFormula(formula)
	return nil
}

// SetRowHeight records an explicit height for a row.
func (ws *Worksheet) SetRowHeight(row int, height float64) {
	ws.rowProps[row] = RowProperties{Height: height}
}

// RowProperties returns a row's explicit metadata and whether any is set.
func (ws *Worksheet) RowProperties(row int) (RowProperties, bool) {
	p, ok := ws.rowProps[row]
	return p, ok
}

// SetColumnProperties records explicit metadata for a column.
func (ws *Worksheet) SetColumnProperties(column int, props ColumnProperties) {
	ws.colProps[column] = props
}

// ColumnProperties returns a column's explicit metadata and whether any is
// set.
func (ws *Worksheet) ColumnProperties(column int) (ColumnProperties, bool) {
	p, ok := ws.colProps[column]
	return p, ok
}

// SetPageSetup attaches page setup to the sheet. Passing a setup with
// StateHidden hides the sheet.
func (ws *Worksheet) SetPageSetup(ps PageSetup) {
	ws.pageSetup = &ps
}

// PageSetup returns the sheet's page setup, or nil when none is attached.
func (ws *Worksheet) PageSetup() *PageSetup {
	return ws.pageSetup
}

// SetPageMargins attaches page margins to the sheet.
func (ws *Worksheet) SetPageMargins(pm PageMargins) {
	ws.pageMargins = &pm
}

// SetView attaches a sheet view.
func (ws *Worksheet) SetView(v SheetView) {
	ws.view = &v
}

// FreezePanes freezes rows above and columns left of the given cell.
func (ws *Worksheet) FreezePanes(topLeft Ref) {
	ws.frozenPanes = &topLeft
}

// MergeCells records a merged range.
func (ws *Worksheet) MergeCells(rangeRef string) error {
	r, err := ParseRange(rangeRef)
	if err != nil {
		return err
	}
	ws.mergedRanges = append(ws.mergedRanges, r)
	return nil
}

// MergedRanges returns the recorded merged ranges.
func (ws *Worksheet) MergedRanges() []Range {
	return ws.mergedRanges
}

// SetAutoFilter records an auto-filter range. It also produces the hidden
// _xlnm._FilterDatabase defined name in the workbook part.
func (ws *Worksheet) SetAutoFilter(rangeRef string) error {
	r, err := ParseRange(rangeRef)
	if err != nil {
		return err
	}
	ws.autoFilter = &r
	return nil
}

// SetHeaderFooter attaches header and footer text.
func (ws *Worksheet) SetHeaderFooter(hf HeaderFooter) {
	ws.headerFooter = &hf
}

// AddHyperlink ties the cell at ref to an external target. The link is
// registered as an external relationship of the sheet part, which then
// gets its own .rels sibling.
func (ws *Worksheet) AddHyperlink(ref, target string) error {
	r, err := ParseRef(ref)
	if err != nil {
		return err
	}
	rel := ws.workbook.manifest.AddRelationship(ws.path, opc.Relationship{
		Type:       opc.RelHyperlink,
		Target:     target,
		TargetMode: opc.TargetModeExternal,
	})
	ws.hyperlinks = append(ws.hyperlinks, Hyperlink{Ref: r, Target: target, Display: target, relID: rel.ID})
	return nil
}

// EnableExtensions turns on the x14ac vendor-extension namespace for this
// sheet's part.
func (ws *Worksheet) EnableExtensions() {
	ws.x14ac = true
}

// SetFormatProperties enables emission of the sheetFormatPr defaults.
func (ws *Worksheet) SetFormatProperties(enabled bool) {
	ws.formatProperties = enabled
}

// rowNumbers returns the occupied row numbers in ascending order.
func (ws *Worksheet) rowNumbers() []int {
	seen := make(map[int]bool)
	var rows []int
	for ref := range ws.cells {
		if !seen[ref.Row] {
			seen[ref.Row] = true
			rows = append(rows, ref.Row)
		}
	}
	sort.Ints(rows)
	return rows
}

// rowCells returns the cells of one row ordered by column.
func (ws *Worksheet) rowCells(row int) []*Cell {
	var cells []*Cell
	for ref, c := range ws.cells {
		if ref.Row == row {
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].ref.Column < cells[j].ref.Column })
	return cells
}

// dimension computes the bounding range of all non-garbage-collectible
// cells. ok is false when the sheet has none.
func (ws *Worksheet) dimension() (Range, bool) {
	var dim Range
	found := false
	for ref, c := range ws.cells {
		if c.GarbageCollectible() {
			continue
		}
		if !found {
			dim = Range{From: ref, To: ref}
			found = true
			continue
		}
		if ref.Column < dim.From.Column {
			dim.From.Column = ref.Column
		}
		if ref.Row < dim.From.Row {
			dim.From.Row = ref.Row
		}
		if ref.Column > dim.To.Column {
			dim.To.Column = ref.Column
		}
		if ref.Row > dim.To.Row {
			dim.To.Row = ref.Row
		}
	}
	return dim, found
}

// columnRange returns the lowest and highest column that carry explicit
// column properties.
func (ws *Worksheet) columnRange() (lo, hi int, ok bool) {
	for col := range ws.colProps {
		if !ok {
			lo, hi, ok = col, col, true
			continue
		}
		if col < lo {
			lo = col
		}
		if col > hi {
			hi = col
		}
	}
	return lo, hi, ok
}

func (ws *Worksheet) String() string {
	return fmt.Sprintf("Worksheet(%q, id=%d)", ws.title, ws.id)
}
