package opc

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestArchiveWriteOrderAndReplace(t *testing.T) {
	a := NewArchive()
	a.WritePart("/[Content_Types].xml", []byte("types"))
	a.WritePart("/xl/workbook.xml", []byte("workbook"))
	a.WritePart("/[Content_Types].xml", []byte("types v2"))

	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	names := a.PartNames()
	if names[0] != "/[Content_Types].xml" || names[1] != "/xl/workbook.xml" {
		t.Errorf("PartNames = %v, want write order preserved", names)
	}
	if content, _ := a.Part("/[Content_Types].xml"); string(content) != "types v2" {
		t.Errorf("rewritten part = %q, want types v2", content)
	}
}

func TestArchiveZipRoundTrip(t *testing.T) {
	a := NewArchive()
	a.WritePart("/[Content_Types].xml", []byte("<Types/>"))
	a.WritePart("/xl/workbook.xml", []byte("<workbook/>"))

	content, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}

	if len(zr.File) != 2 {
		t.Fatalf("zip entries = %d, want 2", len(zr.File))
	}
	// Entry names drop the leading slash.
	if zr.File[0].Name != "[Content_Types].xml" {
		t.Errorf("first entry = %q, want [Content_Types].xml", zr.File[0].Name)
	}
	if zr.File[1].Name != "xl/workbook.xml" {
		t.Errorf("second entry = %q, want xl/workbook.xml", zr.File[1].Name)
	}

	rc, err := zr.File[1].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if string(data) != "<workbook/>" {
		t.Errorf("entry content = %q, want <workbook/>", data)
	}
}

func TestArchiveWriteToReportsLength(t *testing.T) {
	a := NewArchive()
	a.WritePart("/a.xml", []byte("content"))

	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d bytes", n, buf.Len())
	}
}

func TestArchiveSaveToFile(t *testing.T) {
	a := NewArchive()
	a.WritePart("/a.xml", []byte("content"))

	path := filepath.Join(t.TempDir(), "out.zip")
	if err := a.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved file is empty")
	}
}
