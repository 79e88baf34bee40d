package xlsxgen

import (
	"strings"
	"testing"
)

func sheetXML(t *testing.T, build func(ws *Worksheet)) string {
	t.Helper()
	wb, ws := singleSheetWorkbook(t)
	build(ws)
	return producePart(t, wb, "/xl/worksheets/sheet1.xml")
}

func TestCellSerialization(t *testing.T) {
	tests := []struct {
		name  string
		build func(ws *Worksheet)
		want  string
	}{
		{
			name: "integral number",
			build: func(ws *Worksheet) {
				ws.SetNumber("A1", 42)
			},
			want: `<c r="A1" t="n"><v>42</v></c>`,
		},
		{
			name: "non-integral number keeps full precision",
			build: func(ws *Worksheet) {
				ws.SetNumber("A1", 3.14159265358979)
			},
			want: `<c r="A1" t="n"><v>3.14159265358979</v></c>`,
		},
		{
			name: "negative number",
			build: func(ws *Worksheet) {
				ws.SetNumber("A1", -7)
			},
			want: `<c r="A1" t="n"><v>-7</v></c>`,
		},
		{
			name: "boolean true",
			build: func(ws *Worksheet) {
				ws.SetBool("A1", true)
			},
			want: `<c r="A1" t="b"><v>1</v></c>`,
		},
		{
			name: "boolean false",
			build: func(ws *Worksheet) {
				ws.SetBool("A1", false)
			},
			want: `<c r="A1" t="b"><v>0</v></c>`,
		},
		{
			name: "shared string",
			build: func(ws *Worksheet) {
				ws.SetString("A1", "hello")
			},
			want: `<c r="A1" t="s"><v>0</v></c>`,
		},
		{
			name: "inline string not in table",
			build: func(ws *Worksheet) {
				ws.SetInlineString("A1", "loner")
			},
			want: `<c r="A1" t="inlineStr"><is><t>loner</t></is></c>`,
		},
		{
			name: "inline string matching a table entry becomes shared",
			build: func(ws *Worksheet) {
				ws.SetString("A1", "shared")
				ws.SetInlineString("A2", "shared")
			},
			want: `<c r="A2" t="s"><v>0</v></c>`,
		},
		{
			name: "empty unmatched string",
			build: func(ws *Worksheet) {
				ws.SetInlineString("A1", "")
			},
			want: `<c r="A1" t="s"/>`,
		},
		{
			name: "string formula",
			build: func(ws *Worksheet) {
				ws.SetInlineString("A1", "cached")
				ws.SetFormula("A1", `CONCATENATE("ca","ched")`)
			},
			want: `<c r="A1" t="str"><f>CONCATENATE("ca","ched")</f><v>cached</v></c>`,
		},
		{
			name: "numeric formula has no type attribute",
			build: func(ws *Worksheet) {
				ws.SetNumber("A1", 3)
				ws.SetFormula("A1", "1+2")
			},
			want: `<c r="A1"><f>1+2</f><v>3</v></c>`,
		},
		{
			name: "formula without value",
			build: func(ws *Worksheet) {
				ws.SetFormula("A1", "NOW()")
			},
			want: `<c r="A1"><f>NOW()</f><v/></c>`,
		},
		{
			name: "format reference",
			build: func(ws *Worksheet) {
				ws.SetNumber("A1", 1)
				c, _ := ws.Cell("A1")
				c.SetFormat(0)
			},
			want: `<c r="A1" t="n" s="0"><v>1</v></c>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := sheetXML(t, tt.build)
			if !strings.Contains(content, tt.want) {
				t.Errorf("sheet XML missing fragment\n got: %s\nwant: %s", content, tt.want)
			}
		})
	}
}

func TestRowSerialization(t *testing.T) {
	t.Run("empty rows are dropped", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.CellAt(Ref{Column: 1, Row: 2}) // created but empty
			ws.SetNumber("A3", 3)
		})
		if strings.Contains(content, `<row r="2"`) {
			t.Errorf("empty row serialized: %s", content)
		}
		if !strings.Contains(content, `<row r="1" spans="1:1">`) || !strings.Contains(content, `<row r="3" spans="1:1">`) {
			t.Errorf("live rows missing: %s", content)
		}
	})

	t.Run("spans cover empty cell slots", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("B1", 1)
			ws.CellAt(Ref{Column: 5, Row: 1}) // widens the span only
		})
		if !strings.Contains(content, `<row r="1" spans="2:5">`) {
			t.Errorf("spans should include the empty slot: %s", content)
		}
		if strings.Contains(content, `r="E1"`) {
			t.Errorf("empty cell serialized: %s", content)
		}
	})

	t.Run("integral row height gets trailing .0", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.SetRowHeight(1, 30)
		})
		if !strings.Contains(content, `customHeight="1" ht="30.0"`) {
			t.Errorf("row height wrong: %s", content)
		}
	})

	t.Run("fractional row height", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.SetRowHeight(1, 22.5)
		})
		if !strings.Contains(content, `ht="22.5"`) {
			t.Errorf("row height wrong: %s", content)
		}
	})
}

func TestWorksheetDimension(t *testing.T) {
	t.Run("single cell", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("B2", 1)
		})
		if !strings.Contains(content, `<dimension ref="B2"/>`) {
			t.Errorf("dimension wrong: %s", content)
		}
	})

	t.Run("bounding range ignores empty cells", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("B2", 1)
			ws.SetNumber("D5", 2)
			ws.CellAt(Ref{Column: 10, Row: 10})
		})
		if !strings.Contains(content, `<dimension ref="B2:D5"/>`) {
			t.Errorf("dimension wrong: %s", content)
		}
	})

	t.Run("no dimension for an empty sheet", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {})
		if strings.Contains(content, "<dimension") {
			t.Errorf("empty sheet should have no dimension: %s", content)
		}
	})
}

func TestWorksheetFeatures(t *testing.T) {
	t.Run("merged cells", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			if err := ws.MergeCells("A1:C3"); err != nil {
				t.Fatalf("MergeCells: %v", err)
			}
			if err := ws.MergeCells("E1:F1"); err != nil {
				t.Fatalf("MergeCells: %v", err)
			}
		})
		if !strings.Contains(content, `<mergeCells count="2"><mergeCell ref="A1:C3"/><mergeCell ref="E1:F1"/></mergeCells>`) {
			t.Errorf("merge cells wrong: %s", content)
		}
	})

	t.Run("auto filter", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			if err := ws.SetAutoFilter("A1:C10"); err != nil {
				t.Fatalf("SetAutoFilter: %v", err)
			}
		})
		if !strings.Contains(content, `<autoFilter ref="A1:C10"/>`) {
			t.Errorf("auto filter wrong: %s", content)
		}
	})

	t.Run("frozen panes both axes", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.FreezePanes(Ref{Column: 2, Row: 3})
		})
		if !strings.Contains(content, `<pane xSplit="1" ySplit="2" topLeftCell="B3" activePane="bottomRight" state="frozen"/>`) {
			t.Errorf("pane wrong: %s", content)
		}
		if !strings.Contains(content, `<selection pane="topRight"/><selection pane="bottomLeft"/><selection pane="bottomRight"/>`) {
			t.Errorf("pane selections wrong: %s", content)
		}
	})

	t.Run("frozen rows only", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.FreezePanes(Ref{Column: 1, Row: 2})
		})
		if !strings.Contains(content, `<pane ySplit="1" topLeftCell="A2" activePane="bottomLeft" state="frozen"/>`) {
			t.Errorf("pane wrong: %s", content)
		}
	})

	t.Run("column properties", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.SetColumnProperties(2, ColumnProperties{Width: 24.5, Style: 0, Custom: true})
		})
		if !strings.Contains(content, `<col min="2" max="2" width="24.5" style="0" customWidth="1"/>`) {
			t.Errorf("cols wrong: %s", content)
		}
	})

	t.Run("page margins trim trailing zeros", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.SetPageMargins(PageMargins{Left: 0.75, Right: 0.75, Top: 1, Bottom: 1, Header: 0.5, Footer: 0.5})
		})
		if !strings.Contains(content, `<pageMargins left="0.75" right="0.75" top="1" bottom="1" header="0.5" footer="0.5"/>`) {
			t.Errorf("page margins wrong: %s", content)
		}
	})

	t.Run("header and footer", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.SetHeaderFooter(HeaderFooter{OddHeader: "&LQuarterly", OddFooter: "&RPage &P"})
		})
		if !strings.Contains(content, `<headerFooter><oddHeader>&amp;LQuarterly</oddHeader><oddFooter>&amp;RPage &amp;P</oddFooter></headerFooter>`) {
			t.Errorf("header footer wrong: %s", content)
		}
	})

	t.Run("sheet format properties", func(t *testing.T) {
		content := sheetXML(t, func(ws *Worksheet) {
			ws.SetNumber("A1", 1)
			ws.SetFormatProperties(true)
		})
		if !strings.Contains(content, `<sheetFormatPr baseColWidth="10" defaultRowHeight="16"/>`) {
			t.Errorf("sheetFormatPr wrong: %s", content)
		}
	})
}

func TestWorksheetHyperlinks(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "click")
	if err := ws.AddHyperlink("A1", "https://example.com/"); err != nil {
		t.Fatalf("AddHyperlink: %v", err)
	}

	dest, err := NewProducer(wb).populate()
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	sheet, _ := dest.Part("/xl/worksheets/sheet1.xml")
	if !strings.Contains(string(sheet), `<hyperlinks><hyperlink display="https://example.com/" ref="A1" r:id="rId1"/></hyperlinks>`) {
		t.Errorf("hyperlinks block wrong: %s", sheet)
	}

	rels, ok := dest.Part("/xl/worksheets/_rels/sheet1.xml.rels")
	if !ok {
		t.Fatal("sheet rels part missing")
	}
	if !strings.Contains(string(rels), `Target="https://example.com/" TargetMode="External"`) {
		t.Errorf("external hyperlink relationship wrong: %s", rels)
	}
}

func TestHiddenSheetState(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")
	hidden, err := wb.AddSheet("Secrets")
	if err != nil {
		t.Fatalf("AddSheet: %v", err)
	}
	hidden.SetPageSetup(PageSetup{State: StateHidden})

	content := producePart(t, wb, "/xl/workbook.xml")

	if !strings.Contains(content, `<sheet name="Sheet1" sheetId="1" r:id="rId4"/>`) {
		t.Errorf("visible sheet entry wrong: %s", content)
	}
	if !strings.Contains(content, `<sheet name="Secrets" sheetId="2" state="hidden" r:id="rId5"/>`) {
		t.Errorf("hidden sheet entry wrong: %s", content)
	}
}

func TestAutoFilterDefinedName(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "h")
	if err := ws.SetAutoFilter("A1:B5"); err != nil {
		t.Fatalf("SetAutoFilter: %v", err)
	}

	content := producePart(t, wb, "/xl/workbook.xml")

	want := `<definedNames><definedName name="_xlnm._FilterDatabase" hidden="1" localSheetId="0">'Sheet1'!$A$1:$B$5</definedName></definedNames>`
	if !strings.Contains(content, want) {
		t.Errorf("defined names wrong\n got: %s\nwant fragment: %s", content, want)
	}
}
