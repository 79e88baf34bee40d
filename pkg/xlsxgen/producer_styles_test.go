package xlsxgen

import (
	"errors"
	"strings"
	"testing"
)

func stylesXML(t *testing.T, wb *Workbook) string {
	t.Helper()
	return producePart(t, wb, "/xl/styles.xml")
}

func TestDefaultStylesheetSerialization(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")

	content := stylesXML(t, wb)

	fragments := []string{
		`<fonts count="1"><font><sz val="12"/><color theme="1"/><name val="Calibri"/><family val="2"/><scheme val="minor"/></font></fonts>`,
		`<fills count="2"><fill><patternFill patternType="none"/></fill><fill><patternFill patternType="gray125"/></fill></fills>`,
		`<borders count="1"><border/></borders>`,
		`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>`,
		`<cellXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/></cellXfs>`,
		`<cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>`,
		`<dxfs count="0"/>`,
		`<tableStyles count="0" defaultTableStyle="TableStyleMedium9" defaultPivotStyle="PivotStyleMedium7"/>`,
		`<extLst><ext uri="{EB79DEF2-80B8-43e5-95BD-54CBDDF9020C}" xmlns:x14="http://schemas.microsoft.com/office/spreadsheetml/2009/9/main"><x14:slicerStyles defaultSlicerStyle="SlicerStyleLight1"/></ext></extLst>`,
	}
	for _, fragment := range fragments {
		if !strings.Contains(content, fragment) {
			t.Errorf("styles part missing fragment:\n%s\nin:\n%s", fragment, content)
		}
	}

	if strings.Contains(content, "<numFmts") {
		t.Errorf("empty numFmts must be omitted: %s", content)
	}
}

func TestStylesheetSectionOrder(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")
	wb.Stylesheet().AddNumberFormat(NumberFormat{ID: 164, FormatCode: "0.00%"})

	content := stylesXML(t, wb)

	order := []string{"<numFmts", "<fonts", "<fills", "<borders", "<cellStyleXfs", "<cellXfs", "<cellStyles", "<dxfs", "<tableStyles", "<extLst"}
	last := -1
	for _, section := range order {
		pos := strings.Index(content, section)
		if pos == -1 {
			t.Fatalf("section %s missing: %s", section, content)
		}
		if pos < last {
			t.Errorf("section %s out of order", section)
		}
		last = pos
	}
}

func TestCustomFormatSerialization(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetNumber("A1", 0.5)

	sheet := wb.Stylesheet()
	bold := Font{Bold: true, Size: 12, Color: &Color{Type: ColorTheme, Theme: 1}, Name: "Calibri", Family: 2, Scheme: "minor"}
	sheet.AddFont(bold)
	sheet.AddNumberFormat(NumberFormat{ID: 164, FormatCode: "0.00%"})
	wrap := true
	id := sheet.AddFormat(Format{
		NumberFormat:      NumberFormat{ID: 164},
		Font:              bold,
		Fill:              sheet.Fills[0],
		Border:            sheet.Borders[0],
		ApplyNumberFormat: true,
		ApplyFont:         true,
		Alignment:         &Alignment{Horizontal: "center", WrapText: &wrap},
		StyleName:         "Normal",
	})
	c, _ := ws.Cell("A1")
	c.SetFormat(id)

	content := stylesXML(t, wb)

	if !strings.Contains(content, `<numFmts count="1"><numFmt numFmtId="164" formatCode="0.00%"/></numFmts>`) {
		t.Errorf("numFmts wrong: %s", content)
	}
	if !strings.Contains(content, `<font><b val="1"/><sz val="12"/><color theme="1"/><name val="Calibri"/><family val="2"/><scheme val="minor"/></font>`) {
		t.Errorf("bold font wrong: %s", content)
	}
	want := `<xf numFmtId="164" fontId="1" fillId="0" borderId="0" applyNumberFormat="1" applyFont="1" applyAlignment="1" xfId="0"><alignment horizontal="center" wrapText="1"/></xf>`
	if !strings.Contains(content, want) {
		t.Errorf("custom xf wrong\n got: %s\nwant fragment: %s", content, want)
	}
}

func TestBorderSerialization(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetNumber("A1", 1)

	sheet := wb.Stylesheet()
	border := Border{
		Left:              &BorderSide{Style: "thin", Color: RGBColor("FF000000")},
		Diagonal:          &BorderSide{Style: "thin"},
		DiagonalDirection: DiagonalUp,
	}
	sheet.AddBorder(border)

	content := stylesXML(t, wb)

	want := `<border diagonalUp="true" diagonalDown="false"><left style="thin"><color rgb="FF000000"/></left><diagonal style="thin"/></border>`
	if !strings.Contains(content, want) {
		t.Errorf("border wrong\n got: %s\nwant fragment: %s", content, want)
	}
}

func TestCrossReferenceErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(s *Stylesheet)
	}{
		{
			name: "font missing from table",
			build: func(s *Stylesheet) {
				s.AddFormat(Format{Font: Font{Name: "Ghost", Size: 9}, Fill: s.Fills[0], Border: s.Borders[0]})
			},
		},
		{
			name: "fill missing from table",
			build: func(s *Stylesheet) {
				s.AddFormat(Format{Font: s.Fonts[0], Fill: Fill{Pattern: &PatternFill{PatternType: "solid"}}, Border: s.Borders[0]})
			},
		},
		{
			name: "border missing from table",
			build: func(s *Stylesheet) {
				s.AddFormat(Format{Font: s.Fonts[0], Fill: s.Fills[0], Border: Border{Left: &BorderSide{Style: "thick"}}})
			},
		},
		{
			name: "unknown style name",
			build: func(s *Stylesheet) {
				s.AddFormat(Format{Font: s.Fonts[0], Fill: s.Fills[0], Border: s.Borders[0], StyleName: "NoSuchStyle"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, ws := singleSheetWorkbook(t)
			ws.SetNumber("A1", 1)
			tt.build(wb.Stylesheet())

			_, err := NewProducer(wb).populate()
			var crossRef *CrossReferenceError
			if !errors.As(err, &crossRef) {
				t.Fatalf("err = %v, want CrossReferenceError", err)
			}
			var partErr *PartError
			if !errors.As(err, &partErr) || partErr.Path != "/xl/styles.xml" {
				t.Errorf("error should carry the styles part path, got %v", err)
			}
		})
	}
}

func TestStylesExtensionsEnabled(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetNumber("A1", 1)
	wb.EnableExtensions()

	content := stylesXML(t, wb)

	if !strings.Contains(content, `mc:Ignorable="x14ac"`) {
		t.Errorf("x14ac ignorable missing: %s", content)
	}
	if !strings.Contains(content, `<fonts count="1" x14ac:knownFonts="1">`) {
		t.Errorf("knownFonts missing: %s", content)
	}
}
