package pipeline

import "github.com/vk/taskpipego/internal/model"

// Document is the complete parsed pipeline definition: the shared model
// plus the ordered list of task groups. It is the top-level entry point
// for a run and holds no state between runs.
type Document struct {
	model  *model.Model
	groups []*TaskGroup
}

// NewDocument returns an empty document with an empty model.
func NewDocument() *Document {
	return &Document{model: model.NewModel()}
}

// Model returns the document's model.
func (d *Document) Model() *model.Model {
	return d.model
}

// AddGroup appends a task group in declaration order.
func (d *Document) AddGroup(g *TaskGroup) {
	d.groups = append(d.groups, g)
}

// Groups returns the task groups in declaration order.
func (d *Document) Groups() []*TaskGroup {
	out := make([]*TaskGroup, len(d.groups))
	copy(out, d.groups)
	return out
}
