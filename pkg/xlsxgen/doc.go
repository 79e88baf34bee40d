/*
Package xlsxgen serializes an in-memory spreadsheet model into the OOXML
(.xlsx) package format.

A Workbook holds worksheets, cell values, a shared-string table, and a
stylesheet. The Producer walks the package's relationship graph, renders
each part's XML with schema-exact element and attribute ordering, and
writes the result into a ZIP container together with generated .rels
relationship parts:

	wb := xlsxgen.NewWorkbook()
	ws, err := wb.AddSheet("Sheet1")
	if err != nil {
	    log.Fatal(err)
	}
	ws.SetString("A1", "hello")
	ws.SetNumber("B1", 42)
	if err := wb.Save("out.xlsx"); err != nil {
	    log.Fatal(err)
	}

Serialization is deterministic: the same workbook state always produces
byte-identical output. A workbook with no visible worksheet fails before
any bytes are written, and style records that reference fonts, fills, or
borders missing from the stylesheet tables abort serialization with a
cross-reference error.

The package does not parse .xlsx files, evaluate formulas, or render
layout.
*/
package xlsxgen
