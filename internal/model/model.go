package model

// Model is the document-scoped collection of named attributes available to
// every task of a run. It is filled during the read phase and read-only
// afterwards; task results never overwrite model attributes.
type Model struct {
	data *AttributeMap
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{data: NewAttributeMap()}
}

// Data exposes the model's attribute map.
func (m *Model) Data() *AttributeMap {
	return m.data
}
