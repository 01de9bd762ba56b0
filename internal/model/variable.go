package model

// DefaultVariableName is the result variable name every task starts with
// until a variable node in the document renames it.
const DefaultVariableName = "default"

// Variable is a task's named result: the name under which the produced
// value is published into the owning group's variable map.
type Variable struct {
	Name  string
	Value string
}

// NewVariable returns a variable carrying the default name and no value.
func NewVariable() Variable {
	return Variable{Name: DefaultVariableName}
}
