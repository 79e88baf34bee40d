package xmlwriter

import (
	"bytes"
	"strings"
	"testing"
)

func render(build func(x *Writer)) (string, error) {
	var buf bytes.Buffer
	x := New(&buf)
	build(x)
	return buf.String(), x.Err()
}

func TestWriterDocuments(t *testing.T) {
	tests := []struct {
		name  string
		build func(x *Writer)
		want  string
	}{
		{
			name: "self closing empty element",
			build: func(x *Writer) {
				x.StartElement("root")
				x.EndElement()
			},
			want: Header + "<root/>",
		},
		{
			name: "element with attribute and text",
			build: func(x *Writer) {
				x.StartElement("root")
				x.Attr("id", "1")
				x.Text("hello")
				x.EndElement()
			},
			want: Header + `<root id="1">hello</root>`,
		},
		{
			name: "nested elements",
			build: func(x *Writer) {
				x.StartElement("a")
				x.StartElement("b")
				x.Text("c")
				x.EndElement()
				x.EndElement()
			},
			want: Header + "<a><b>c</b></a>",
		},
		{
			name: "default namespace declaration",
			build: func(x *Writer) {
				x.StartElement("Types")
				x.NamespaceDecl("urn:example", "")
				x.EndElement()
			},
			want: Header + `<Types xmlns="urn:example"/>`,
		},
		{
			name: "prefixed namespace and qualified attribute",
			build: func(x *Writer) {
				x.StartElement("sheet")
				x.NamespaceDecl("urn:rels", "r")
				x.AttrNS("urn:rels", "id", "rId1")
				x.EndElement()
			},
			want: Header + `<sheet xmlns:r="urn:rels" r:id="rId1"/>`,
		},
		{
			name: "undeclared namespace falls back to bare attribute",
			build: func(x *Writer) {
				x.StartElement("sheet")
				x.AttrNS("urn:unknown", "id", "rId1")
				x.EndElement()
			},
			want: Header + `<sheet id="rId1"/>`,
		},
		{
			name: "element helper with empty content self closes",
			build: func(x *Writer) {
				x.StartElement("root")
				x.Element("v", "")
				x.EndElement()
			},
			want: Header + "<root><v/></root>",
		},
		{
			name: "text escaping",
			build: func(x *Writer) {
				x.Element("t", `a < b & c > d`)
			},
			want: Header + "<t>a &lt; b &amp; c &gt; d</t>",
		},
		{
			name: "attribute escaping",
			build: func(x *Writer) {
				x.StartElement("t")
				x.Attr("v", `say "hi" & <go>`)
				x.EndElement()
			},
			want: Header + `<t v="say &quot;hi&quot; &amp; &lt;go&gt;"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(tt.build)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriterErrors(t *testing.T) {
	t.Run("end element without open element", func(t *testing.T) {
		_, err := render(func(x *Writer) {
			x.EndElement()
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("attribute outside start tag", func(t *testing.T) {
		_, err := render(func(x *Writer) {
			x.StartElement("a")
			x.Text("content")
			x.Attr("late", "1")
			x.EndElement()
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("unclosed element reported by Err", func(t *testing.T) {
		_, err := render(func(x *Writer) {
			x.StartElement("a")
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "unclosed") {
			t.Errorf("error = %v, want mention of unclosed elements", err)
		}
	})
}

func TestWriterDepth(t *testing.T) {
	var buf bytes.Buffer
	x := New(&buf)

	if x.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", x.Depth())
	}
	x.StartElement("a")
	x.StartElement("b")
	if x.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", x.Depth())
	}
	x.EndElement()
	x.EndElement()
	if x.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", x.Depth())
	}
}
