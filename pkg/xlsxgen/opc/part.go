package opc

import (
	"path"
	"strings"
)

// Content types for the parts this module produces.
const (
	ContentTypeRelationships      = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML                = "application/xml"
	ContentTypePNG                = "image/png"
	ContentTypeCoreProperties     = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtendedProperties = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ContentTypeCustomProperties   = "application/vnd.openxmlformats-officedocument.custom-properties+xml"
	ContentTypeWorkbook           = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ContentTypeWorksheet          = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ContentTypeStyles             = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ContentTypeSharedStrings      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ContentTypeTheme              = "application/vnd.openxmlformats-officedocument.theme+xml"
)

// ContentTypesPath is the fixed location of the content-types part. It is
// the one part of the package that is not itself addressed by a
// relationship.
const ContentTypesPath = "/[Content_Types].xml"

// RootPath addresses the package root for relationship lookups.
const RootPath = "/"

// ResolveTarget resolves a relationship target against its source part and
// returns an archive-absolute path starting with "/". External targets are
// returned unchanged.
func ResolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(target)
	}
	dir := path.Dir(source)
	return path.Clean(path.Join(dir, target))
}

// RelsPath returns the path of the .rels part describing the given part:
// a "_rels" sibling directory holding "<filename>.rels". The package root
// maps to "/_rels/.rels".
func RelsPath(part string) string {
	if part == RootPath {
		return "/_rels/.rels"
	}
	dir := path.Dir(part)
	return path.Join(dir, "_rels", path.Base(part)+".rels")
}

// Extension returns the lower-cased file extension of a part path without
// the leading dot, or "" when the part has none.
func Extension(part string) string {
	ext := path.Ext(part)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
