// Package opc models the Open Packaging Conventions container: part paths,
// content types, relationships, and the ZIP archive the parts are stored
// in.
package opc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Archive collects finished parts in memory and finalizes them into a ZIP
// container. Parts are stored in the order they are first written; nothing
// touches the destination until the archive is finalized, so a failed
// production pass never leaves a partial package behind.
type Archive struct {
	names []string
	parts map[string][]byte
}

// NewArchive creates an empty archive.
func NewArchive() *Archive {
	return &Archive{parts: make(map[string][]byte)}
}

// WritePart stores the content of one part under its archive-absolute path.
// Writing the same path again replaces the content in place.
func (a *Archive) WritePart(partPath string, content []byte) {
	if _, ok := a.parts[partPath]; !ok {
		a.names = append(a.names, partPath)
	}
	a.parts[partPath] = content
}

// PartNames returns the stored part paths in write order.
func (a *Archive) PartNames() []string {
	return a.names
}

// Part returns the content of a stored part.
func (a *Archive) Part(partPath string) ([]byte, bool) {
	content, ok := a.parts[partPath]
	return content, ok
}

// Len reports the number of stored parts.
func (a *Archive) Len() int {
	return len(a.names)
}

// WriteTo finalizes the archive as a ZIP stream. Part paths lose their
// leading slash to become ZIP entry names.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, name := range a.names {
		entry, err := zw.Create(strings.TrimPrefix(name, "/"))
		if err != nil {
			zw.Close()
			return cw.n, fmt.Errorf("failed to create archive entry %s: %w", name, err)
		}
		if _, err := entry.Write(a.parts[name]); err != nil {
			zw.Close()
			return cw.n, fmt.Errorf("failed to write archive entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return cw.n, nil
}

// Bytes finalizes the archive into an in-memory buffer.
func (a *Archive) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := a.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveToFile finalizes the archive to a file. The ZIP is assembled in
// memory first so the file is only created once the content is complete.
func (a *Archive) SaveToFile(path string) error {
	content, err := a.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to save archive to %s: %w", path, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
