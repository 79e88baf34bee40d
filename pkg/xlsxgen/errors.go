// Package xlsxgen provides custom error types for better error handling and reporting.
package xlsxgen

import (
	"fmt"
)

// StructuralError reports a document precondition violated before any part
// of the package is written, e.g. a workbook without a visible worksheet.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s", e.Message)
}

// NewStructuralError creates a new structural precondition error.
func NewStructuralError(message string) error {
	return &StructuralError{Message: message}
}

// CrossReferenceError reports a style record referencing a font, fill,
// border, or number format that is absent from its canonical stylesheet
// table. It indicates an inconsistency in the upstream document model and
// is not recoverable during serialization.
type CrossReferenceError struct {
	Table     string // "fonts", "fills", "borders", "styles"
	Reference string
}

func (e *CrossReferenceError) Error() string {
	if e.Reference != "" {
		return fmt.Sprintf("cross-reference error: no entry in %s matches %s", e.Table, e.Reference)
	}
	return fmt.Sprintf("cross-reference error: unresolved reference into %s", e.Table)
}

// NewCrossReferenceError creates a new cross-reference integrity error.
func NewCrossReferenceError(table, reference string) error {
	return &CrossReferenceError{Table: table, Reference: reference}
}

// PartError reports a failure while rendering or storing a single package
// part.
type PartError struct {
	Path  string
	Cause error
}

func (e *PartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("part error at %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("part error at %s", e.Path)
}

func (e *PartError) Unwrap() error {
	return e.Cause
}

// NewPartError creates a new part rendering error.
func NewPartError(path string, cause error) error {
	return &PartError{Path: path, Cause: cause}
}
