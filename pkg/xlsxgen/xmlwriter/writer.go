// Package xmlwriter provides a small streaming XML writer used to render
// OOXML package parts. It supports start/end elements, attributes,
// namespace declarations, and character data, and produces deterministic
// output for identical call sequences.
package xmlwriter

import (
	"fmt"
	"io"
	"strings"
)

// Header is the XML declaration written before the first element.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Writer emits XML to an underlying io.Writer. One Writer serializes one
// document; calls must follow document order (attributes and namespace
// declarations directly after StartElement, before any content).
type Writer struct {
	out     io.Writer
	stack   []string
	openTag bool
	started bool
	prefix  map[string]string // namespace URI -> declared prefix
	err     error
}

// New creates a Writer emitting to w.
func New(w io.Writer) *Writer {
	return &Writer{
		out:    w,
		prefix: make(map[string]string),
	}
}

// StartElement opens an element. The name may carry a prefix ("a:theme").
func (x *Writer) StartElement(name string) {
	if x.err != nil {
		return
	}
	if !x.started {
		x.write(Header)
		x.started = true
	}
	x.closeOpenTag()
	x.stack = append(x.stack, name)
	x.write("<" + name)
	x.openTag = true
}

// EndElement closes the most recently opened element. An element with no
// content is emitted self-closing.
func (x *Writer) EndElement() {
	if x.err != nil {
		return
	}
	if len(x.stack) == 0 {
		x.err = fmt.Errorf("end element with no open element")
		return
	}
	name := x.stack[len(x.stack)-1]
	x.stack = x.stack[:len(x.stack)-1]
	if x.openTag {
		x.write("/>")
		x.openTag = false
		return
	}
	x.write("</" + name + ">")
}

// Attr writes an attribute on the currently open start tag.
func (x *Writer) Attr(name, value string) {
	if x.err != nil {
		return
	}
	if !x.openTag {
		x.err = fmt.Errorf("attribute %q written outside of a start tag", name)
		return
	}
	x.write(" " + name + `="` + escapeAttr(value) + `"`)
}

// AttrNS writes an attribute qualified by a previously declared namespace.
func (x *Writer) AttrNS(uri, name, value string) {
	prefix, ok := x.prefix[uri]
	if !ok || prefix == "" {
		x.Attr(name, value)
		return
	}
	x.Attr(prefix+":"+name, value)
}

// NamespaceDecl declares a namespace on the currently open start tag. An
// empty prefix declares the default namespace.
func (x *Writer) NamespaceDecl(uri, prefix string) {
	if prefix == "" {
		x.Attr("xmlns", uri)
	} else {
		x.Attr("xmlns:"+prefix, uri)
	}
	if x.err == nil {
		x.prefix[uri] = prefix
	}
}

// Text writes escaped character data inside the current element.
func (x *Writer) Text(content string) {
	if x.err != nil {
		return
	}
	x.closeOpenTag()
	x.write(escapeText(content))
}

// Element writes a complete element with text content in one call. Empty
// content yields a self-closing element.
func (x *Writer) Element(name, content string) {
	x.StartElement(name)
	if content != "" {
		x.Text(content)
	}
	x.EndElement()
}

// Depth reports the number of currently open elements.
func (x *Writer) Depth() int {
	return len(x.stack)
}

// Err returns the first error encountered while writing, if any. A non-nil
// error also indicates the document may be truncated.
func (x *Writer) Err() error {
	if x.err != nil {
		return x.err
	}
	if len(x.stack) > 0 {
		return fmt.Errorf("document has %d unclosed element(s), first open: %s", len(x.stack), x.stack[0])
	}
	return nil
}

func (x *Writer) closeOpenTag() {
	if x.openTag {
		x.write(">")
		x.openTag = false
	}
}

func (x *Writer) write(s string) {
	if x.err != nil {
		return
	}
	if _, err := io.WriteString(x.out, s); err != nil {
		x.err = err
	}
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
	"\t", "&#9;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
