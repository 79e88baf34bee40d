package xlsxgen

import (
	"strconv"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
)

// renderWorkbook writes /xl/workbook.xml, then recurses one level: the
// workbook's own .rels sibling and every part it references (styles,
// theme, shared strings, each worksheet, and the minor parts).
func renderWorkbook(p *Producer, dest *opc.Archive, c *cursor, rel opc.Relationship) error {
	wb := p.source
	x := c.xml

	anyDefinedNames := false
	for _, ws := range wb.Sheets() {
		if ws.autoFilter != nil {
			anyDefinedNames = true
		}
	}

	x.StartElement("workbook")
	x.NamespaceDecl(nsSpreadsheetML, "")
	x.NamespaceDecl(nsOfficeDocRels, "r")
	if wb.x15 {
		x.NamespaceDecl(nsMarkupCompat, "mc")
		x.Attr("mc:Ignorable", "x15")
		x.NamespaceDecl(nsX15, "x15")
	}

	if fv := wb.fileVersion; fv != nil {
		x.StartElement("fileVersion")
		x.Attr("appName", fv.AppName)
		x.Attr("lastEdited", strconv.Itoa(fv.LastEdited))
		x.Attr("lowestEdited", strconv.Itoa(fv.LowestEdited))
		x.Attr("rupBuild", strconv.Itoa(fv.RupBuild))
		x.EndElement()
	}

	if wb.codeName != "" {
		x.StartElement("workbookPr")
		x.Attr("codeName", wb.codeName)
		x.EndElement()
	}

	if v := wb.view; v != nil {
		x.StartElement("bookViews")
		x.StartElement("workbookView")
		x.Attr("xWindow", strconv.Itoa(v.XWindow))
		x.Attr("yWindow", strconv.Itoa(v.YWindow))
		x.Attr("windowWidth", strconv.Itoa(v.WindowWidth))
		x.Attr("windowHeight", strconv.Itoa(v.WindowHeight))
		x.Attr("tabRatio", strconv.Itoa(v.TabRatio))
		x.EndElement()
		x.EndElement()
	}

	x.StartElement("sheets")
	for _, ws := range wb.Sheets() {
		relID, ok := wb.SheetRelID(ws.Title())
		if !ok {
			return NewPartError(c.path, NewStructuralError("worksheet "+ws.Title()+" has no relationship"))
		}
		x.StartElement("sheet")
		x.Attr("name", ws.Title())
		x.Attr("sheetId", strconv.Itoa(ws.ID()))
		if ws.pageSetup != nil && ws.pageSetup.State == StateHidden {
			x.Attr("state", "hidden")
		}
		x.AttrNS(nsOfficeDocRels, "id", relID)
		x.EndElement()
	}
	x.EndElement()

	if anyDefinedNames {
		x.StartElement("definedNames")
		for i, ws := range wb.Sheets() {
			if ws.autoFilter == nil {
				continue
			}
			x.StartElement("definedName")
			x.Attr("name", "_xlnm._FilterDatabase")
			x.Attr("hidden", p.writeBool(true))
			x.Attr("localSheetId", strconv.Itoa(i))
			x.Text("'" + ws.Title() + "'!" + ws.autoFilter.Absolute())
			x.EndElement()
		}
		x.EndElement()
	}

	if wb.calcProperties {
		x.StartElement("calcPr")
		x.Attr("calcId", "150000")
		x.Attr("concurrentCalc", "0")
		x.EndElement()
	}

	x.EndElement()

	// Children of the workbook part: its .rels sibling plus one part per
	// relationship, each rendered into its own buffer.
	workbookTarget := opc.ResolveTarget(opc.RootPath, rel.Target)
	workbookRels := wb.manifest.Relationships(workbookTarget)
	if err := p.writeRelationships(dest, workbookTarget, workbookRels); err != nil {
		return err
	}

	for _, childRel := range workbookRels {
		if childRel.TargetMode == opc.TargetModeExternal {
			continue
		}
		render, ok := workbookRenderers[childRel.Type]
		if !ok {
			if err := p.skipRelationship(childRel); err != nil {
				return err
			}
			continue
		}

		childPath := opc.ResolveTarget(workbookTarget, childRel.Target)
		child := newCursor(childPath)
		if err := render(p, dest, child, childRel); err != nil {
			return err
		}
		content, err := child.finish()
		if err != nil {
			return err
		}
		dest.WritePart(childPath, content)

		// Parts that acquired dependents of their own (e.g. worksheets
		// with hyperlinks) get a .rels sibling and their child parts.
		if err := p.writePartChildren(dest, childPath); err != nil {
			return err
		}
	}

	return nil
}

// writePartChildren emits the .rels part and renderable child parts of a
// workbook-level part, typically a worksheet with hyperlinks, comments, or
// drawings.
func (p *Producer) writePartChildren(dest *opc.Archive, partPath string) error {
	rels := p.source.manifest.Relationships(partPath)
	if len(rels) == 0 {
		return nil
	}
	if err := p.writeRelationships(dest, partPath, rels); err != nil {
		return err
	}

	for _, rel := range rels {
		if rel.TargetMode == opc.TargetModeExternal {
			continue
		}
		render, ok := sheetRenderers[rel.Type]
		if !ok {
			if err := p.skipRelationship(rel); err != nil {
				return err
			}
			continue
		}
		childPath := opc.ResolveTarget(partPath, rel.Target)
		child := newCursor(childPath)
		if err := render(p, dest, child, rel); err != nil {
			return err
		}
		content, err := child.finish()
		if err != nil {
			return err
		}
		dest.WritePart(childPath, content)
	}
	return nil
}
