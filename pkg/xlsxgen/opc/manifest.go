package opc

import (
	"fmt"
)

// Default maps a file extension to its package-wide default content type.
type Default struct {
	Extension   string
	ContentType string
}

// Override assigns a content type to a single part, superseding the default
// for its extension.
type Override struct {
	PartName    string
	ContentType string
}

// Manifest is the registry of parts, their content types, and the
// relationships between them. Enumeration order is insertion order
// throughout, which keeps serialization deterministic.
type Manifest struct {
	defaults      []Default
	defaultIndex  map[string]int
	overrides     []Override
	overrideIndex map[string]int
	rels          map[string][]Relationship
	nextRelID     map[string]int
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		defaultIndex:  make(map[string]int),
		overrideIndex: make(map[string]int),
		rels:          make(map[string][]Relationship),
		nextRelID:     make(map[string]int),
	}
}

// RegisterDefault records a default content type for an extension.
// Re-registering an extension updates it in place.
func (m *Manifest) RegisterDefault(extension, contentType string) {
	if i, ok := m.defaultIndex[extension]; ok {
		m.defaults[i].ContentType = contentType
		return
	}
	m.defaultIndex[extension] = len(m.defaults)
	m.defaults = append(m.defaults, Default{Extension: extension, ContentType: contentType})
}

// RegisterOverride records a part-specific content type.
func (m *Manifest) RegisterOverride(partName, contentType string) {
	if i, ok := m.overrideIndex[partName]; ok {
		m.overrides[i].ContentType = contentType
		return
	}
	m.overrideIndex[partName] = len(m.overrides)
	m.overrides = append(m.overrides, Override{PartName: partName, ContentType: contentType})
}

// Defaults returns the extension defaults in registration order.
func (m *Manifest) Defaults() []Default {
	return m.defaults
}

// Overrides returns the part overrides in registration order.
func (m *Manifest) Overrides() []Override {
	return m.overrides
}

// DefaultType looks up the default content type for an extension.
func (m *Manifest) DefaultType(extension string) (string, bool) {
	i, ok := m.defaultIndex[extension]
	if !ok {
		return "", false
	}
	return m.defaults[i].ContentType, true
}

// OverrideType looks up the override content type for a part.
func (m *Manifest) OverrideType(partName string) (string, bool) {
	i, ok := m.overrideIndex[partName]
	if !ok {
		return "", false
	}
	return m.overrides[i].ContentType, true
}

// AddRelationship appends a relationship to the given source part. An empty
// ID is filled in with the next free "rIdN" for that source. The assigned
// relationship is returned.
func (m *Manifest) AddRelationship(source string, rel Relationship) Relationship {
	if rel.ID == "" {
		rel.ID = m.NextID(source)
	}
	m.rels[source] = append(m.rels[source], rel)
	return rel
}

// NextID returns the next unused relationship ID for a source part and
// reserves it.
func (m *Manifest) NextID(source string) string {
	m.nextRelID[source]++
	return fmt.Sprintf("rId%d", m.nextRelID[source])
}

// Relationships returns the outgoing relationships of a part in insertion
// order. The result is nil when the part has none.
func (m *Manifest) Relationships(source string) []Relationship {
	return m.rels[source]
}

// Relationship finds a relationship of a part by ID.
func (m *Manifest) Relationship(source, id string) (Relationship, bool) {
	for _, rel := range m.rels[source] {
		if rel.ID == id {
			return rel, true
		}
	}
	return Relationship{}, false
}
