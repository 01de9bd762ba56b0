package model

// AttributeMap is an insertion-ordered collection of attributes. Order is
// preserved so variable listings stay deterministic across runs.
type AttributeMap struct {
	order []string
	byKey map[string]Attribute
}

// NewAttributeMap returns an empty map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{byKey: make(map[string]Attribute)}
}

// Set inserts or overwrites the attribute under its name. An overwrite
// keeps the original position; only unseen names extend the order.
func (m *AttributeMap) Set(attr Attribute) {
	if attr.Name == "" {
		return
	}
	if _, ok := m.byKey[attr.Name]; !ok {
		m.order = append(m.order, attr.Name)
	}
	m.byKey[attr.Name] = attr
}

// Get returns the attribute stored under name.
func (m *AttributeMap) Get(name string) (Attribute, bool) {
	attr, ok := m.byKey[name]
	return attr, ok
}

// Names returns the attribute names in insertion order.
func (m *AttributeMap) Names() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Len reports the number of attributes.
func (m *AttributeMap) Len() int {
	return len(m.order)
}

// Merge copies every attribute of other into m, preserving other's order
// for names m has not seen yet.
func (m *AttributeMap) Merge(other *AttributeMap) {
	if other == nil {
		return
	}
	for _, name := range other.order {
		m.Set(other.byKey[name])
	}
}
