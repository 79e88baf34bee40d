package xlsxgen

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// These tests open produced packages with an independent reader to make
// sure other tooling accepts them.

func TestRoundTripCellValues(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "name")
	ws.SetString("B1", "score")
	ws.SetString("A2", "alice")
	ws.SetNumber("B2", 41.5)
	ws.SetNumber("A3", 7)
	ws.SetBool("B3", true)

	content, err := wb.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Sheet1" {
		t.Fatalf("GetSheetList = %v, want [Sheet1]", sheets)
	}

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "name"},
		{"B1", "score"},
		{"A2", "alice"},
		{"B2", "41.5"},
		{"A3", "7"},
		{"B3", "TRUE"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Sheet1", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("GetCellValue(%s) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestRoundTripSheetVisibility(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "x")
	hidden, err := wb.AddSheet("Hidden")
	if err != nil {
		t.Fatalf("AddSheet: %v", err)
	}
	hidden.SetPageSetup(PageSetup{State: StateHidden})

	content, err := wb.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	visible, err := f.GetSheetVisible("Sheet1")
	if err != nil {
		t.Fatalf("GetSheetVisible: %v", err)
	}
	if !visible {
		t.Error("Sheet1 should be visible")
	}

	visible, err = f.GetSheetVisible("Hidden")
	if err != nil {
		t.Fatalf("GetSheetVisible: %v", err)
	}
	if visible {
		t.Error("Hidden sheet should not be visible")
	}
}

func TestRoundTripMergedCells(t *testing.T) {
	wb, ws := singleSheetWorkbook(t)
	ws.SetString("A1", "header")
	if err := ws.MergeCells("A1:C1"); err != nil {
		t.Fatalf("MergeCells: %v", err)
	}

	content, err := wb.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	merged, err := f.GetMergeCells("Sheet1")
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("merged ranges = %d, want 1", len(merged))
	}
	if merged[0].GetStartAxis() != "A1" || merged[0].GetEndAxis() != "C1" {
		t.Errorf("merged range = %s:%s, want A1:C1", merged[0].GetStartAxis(), merged[0].GetEndAxis())
	}
}
