package xlsxgen

import (
	"strings"
	"testing"
)

func TestAddSheet(t *testing.T) {
	wb := NewWorkbook()

	ws, err := wb.AddSheet("First")
	if err != nil {
		t.Fatalf("AddSheet: %v", err)
	}
	if ws.Title() != "First" || ws.ID() != 1 {
		t.Errorf("sheet = %v, want First/1", ws)
	}
	if ws.Path() != "/xl/worksheets/sheet1.xml" {
		t.Errorf("Path = %s", ws.Path())
	}

	if _, err := wb.AddSheet(""); err == nil {
		t.Error("empty title should fail")
	}
	if _, err := wb.AddSheet("First"); err == nil {
		t.Error("duplicate title should fail")
	}

	second, err := wb.AddSheet("Second")
	if err != nil {
		t.Fatalf("AddSheet: %v", err)
	}
	if second.ID() != 2 || second.Path() != "/xl/worksheets/sheet2.xml" {
		t.Errorf("second sheet = id %d path %s", second.ID(), second.Path())
	}

	if _, ok := wb.Sheet("Second"); !ok {
		t.Error("Sheet lookup failed")
	}
	if _, ok := wb.Sheet("Missing"); ok {
		t.Error("Sheet lookup should miss")
	}

	// Sheet relationships follow the fixed styles/theme/sharedStrings trio.
	if id, _ := wb.SheetRelID("First"); id != "rId4" {
		t.Errorf("First rel ID = %s, want rId4", id)
	}
	if id, _ := wb.SheetRelID("Second"); id != "rId5" {
		t.Errorf("Second rel ID = %s, want rId5", id)
	}
}

func TestSharedStringDeduplication(t *testing.T) {
	wb := NewWorkbook()

	if i := wb.AddSharedString("alpha"); i != 0 {
		t.Errorf("first index = %d, want 0", i)
	}
	if i := wb.AddSharedString("beta"); i != 1 {
		t.Errorf("second index = %d, want 1", i)
	}
	if i := wb.AddSharedString("alpha"); i != 0 {
		t.Errorf("duplicate index = %d, want 0", i)
	}
	if len(wb.SharedStrings()) != 2 {
		t.Errorf("table size = %d, want 2", len(wb.SharedStrings()))
	}

	if i, ok := wb.SharedStringIndex("beta"); !ok || i != 1 {
		t.Errorf("SharedStringIndex(beta) = %d, %v", i, ok)
	}
	if _, ok := wb.SharedStringIndex("gamma"); ok {
		t.Error("SharedStringIndex(gamma) should miss")
	}

	// A rich value with formatting is distinct from its plain text.
	rich := RichText{Runs: []TextRun{{Text: "alpha", Formatting: &RunFormatting{Size: 14}}}}
	if i := wb.AddRichSharedString(rich); i != 2 {
		t.Errorf("rich index = %d, want 2", i)
	}
}

func TestWorkbookOptionalBlocks(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")
	wb.SetFileVersion(FileVersion{AppName: "xl", LastEdited: 4, LowestEdited: 4, RupBuild: 4505})
	wb.SetCodeName("ThisWorkbook")
	wb.SetView(WorkbookView{XWindow: 0, YWindow: 460, WindowWidth: 28800, WindowHeight: 17460, TabRatio: 500})
	wb.SetCalculationProperties(true)

	content := producePart(t, wb, "/xl/workbook.xml")

	if !strings.Contains(content, `<fileVersion appName="xl" lastEdited="4" lowestEdited="4" rupBuild="4505"/>`) {
		t.Errorf("fileVersion wrong: %s", content)
	}
	if !strings.Contains(content, `<workbookPr codeName="ThisWorkbook"/>`) {
		t.Errorf("workbookPr wrong: %s", content)
	}
	if !strings.Contains(content, `<bookViews><workbookView xWindow="0" yWindow="460" windowWidth="28800" windowHeight="17460" tabRatio="500"/></bookViews>`) {
		t.Errorf("bookViews wrong: %s", content)
	}
	if !strings.Contains(content, `<calcPr calcId="150000" concurrentCalc="0"/>`) {
		t.Errorf("calcPr wrong: %s", content)
	}

	// Document order: fileVersion, workbookPr, bookViews, sheets, calcPr.
	order := []string{"<fileVersion", "<workbookPr", "<bookViews", "<sheets>", "<calcPr"}
	last := -1
	for _, marker := range order {
		pos := strings.Index(content, marker)
		if pos < last {
			t.Errorf("%s out of document order: %s", marker, content)
		}
		last = pos
	}
}

func TestWorkbookExtensionsNamespace(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")
	wb.EnableExtensions()

	content := producePart(t, wb, "/xl/workbook.xml")

	if !strings.Contains(content, `xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006" mc:Ignorable="x15" xmlns:x15="http://schemas.microsoft.com/office/spreadsheetml/2010/11/main"`) {
		t.Errorf("x15 namespace block wrong: %s", content)
	}
}

func TestCustomPropertiesPart(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")
	wb.EnableCustomProperties()
	wb.EnableCustomProperties() // idempotent

	dest, err := NewProducer(wb).populate()
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	content, ok := dest.Part("/docProps/custom.xml")
	if !ok {
		t.Fatal("custom properties part missing")
	}
	if !strings.Contains(string(content), `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/custom-properties"`) {
		t.Errorf("custom properties root wrong: %s", content)
	}

	rels := wb.Manifest().Relationships("/")
	count := 0
	for _, rel := range rels {
		if rel.Target == "docProps/custom.xml" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("custom properties registered %d times, want 1", count)
	}
}

func TestShortBoolRendering(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")
	ws.SetAutoFilter("A1:A2")
	wb.SetShortBools(false)

	content := producePart(t, wb, "/xl/workbook.xml")

	if !strings.Contains(content, `hidden="true"`) {
		t.Errorf("long bools should render as words: %s", content)
	}
}
