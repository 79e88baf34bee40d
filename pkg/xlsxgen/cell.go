package xlsxgen

import "math"

// CellType classifies the value held by a cell.
type CellType int

const (
	// TypeNull marks a cell with no value. A null cell may still carry a
	// formula or a format.
	TypeNull CellType = iota
	// TypeNumeric marks a cell holding a floating-point number.
	TypeNumeric
	// TypeString marks a cell holding text.
	TypeString
	// TypeBool marks a cell holding a boolean.
	TypeBool
)

// Cell is one slot in a worksheet. Cells are created through their
// worksheet and keep their reference for the rest of their life.
type Cell struct {
	ref       Ref
	typ       CellType
	number    float64
	boolean   bool
	text      string
	formula   string
	formatID  int
	hasFormat bool
}

// Ref returns the cell's coordinate.
func (c *Cell) Ref() Ref {
	return c.ref
}

// Type returns the cell's value classification.
func (c *Cell) Type() CellType {
	return c.typ
}

// SetNumber stores a numeric value.
func (c *Cell) SetNumber(v float64) {
	c.typ = TypeNumeric
	c.number = v
}

// Number returns the numeric value; meaningful only for TypeNumeric.
func (c *Cell) Number() float64 {
	return c.number
}

// SetBool stores a boolean value.
func (c *Cell) SetBool(v bool) {
	c.typ = TypeBool
	c.boolean = v
}

// Bool returns the boolean value; meaningful only for TypeBool.
func (c *Cell) Bool() bool {
	return c.boolean
}

// Text returns the string value; meaningful only for TypeString.
func (c *Cell) Text() string {
	return c.text
}

// SetFormula attaches a formula to the cell. The current value, if any,
// becomes the formula's cached display value.
func (c *Cell) SetFormula(formula string) {
	c.formula = formula
}

// Formula returns the cell's formula, or "" when it has none.
func (c *Cell) Formula() string {
	return c.formula
}

// HasFormula reports whether the cell carries a formula.
func (c *Cell) HasFormula() bool {
	return c.formula != ""
}

// SetFormat assigns a format record by its position in the stylesheet's
// format list.
func (c *Cell) SetFormat(id int) {
	c.formatID = id
	c.hasFormat = true
}

// Format returns the assigned format id and whether one is set.
func (c *Cell) Format() (int, bool) {
	return c.formatID, c.hasFormat
}

// Clear resets the cell to an empty state, making it garbage collectible.
func (c *Cell) Clear() {
	*c = Cell{ref: c.ref}
}

// GarbageCollectible reports whether the cell holds no meaningful value,
// formula, or format and is therefore omitted from serialized output.
func (c *Cell) GarbageCollectible() bool {
	return c.typ == TypeNull && c.formula == "" && !c.hasFormat
}

// numberIsIntegral reports whether v is exactly equal to its truncation to
// an integer and fits in an int64, so it can be rendered without a decimal
// point.
func numberIsIntegral(v float64) bool {
	return v == math.Trunc(v) && math.Abs(v) < math.MaxInt64
}
