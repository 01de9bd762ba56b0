package model

// Params is the ephemeral, read-only view handed to a single task
// invocation: the document's model plus a snapshot of the owning group's
// variables accumulated so far. It is built per invocation and never
// persisted.
type Params struct {
	model     *Model
	variables map[string]Variable
}

// NewParams builds the parameter view for one task invocation. The
// variables map is copied so a parallel group's concurrent writes cannot
// race a task still reading its snapshot.
func NewParams(m *Model, variables map[string]Variable) Params {
	snapshot := make(map[string]Variable, len(variables))
	for name, v := range variables {
		snapshot[name] = v
	}
	return Params{model: m, variables: snapshot}
}

// Model returns the document model.
func (p Params) Model() *Model {
	return p.model
}

// Variable returns the group variable stored under name.
func (p Params) Variable(name string) (Variable, bool) {
	v, ok := p.variables[name]
	return v, ok
}

// VariableValues returns the group variables as a plain name→value map,
// the shape execution collaborators take as process environment.
func (p Params) VariableValues() map[string]string {
	values := make(map[string]string, len(p.variables))
	for name, v := range p.variables {
		values[name] = v.Value
	}
	return values
}

// TemplateData flattens the view into the single map handed to template
// rendering: model attributes first, overlaid by group variables, so a
// variable shadows a model attribute of the same name.
func (p Params) TemplateData() map[string]any {
	data := make(map[string]any)
	if p.model != nil {
		for _, name := range p.model.Data().Names() {
			attr, _ := p.model.Data().Get(name)
			data[name] = attr.Any()
		}
	}
	for name, v := range p.variables {
		data[name] = v.Value
	}
	return data
}
