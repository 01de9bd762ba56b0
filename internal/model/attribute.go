package model

// Attribute is a named value: either a single string or an ordered list of
// strings. The name is never empty and is unique within its owning map.
type Attribute struct {
	Name   string
	Value  string
	Values []string
	IsList bool
}

// NewStringAttribute returns a single-string attribute.
func NewStringAttribute(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// NewListAttribute returns a list-of-strings attribute.
func NewListAttribute(name string, values []string) Attribute {
	return Attribute{Name: name, Values: values, IsList: true}
}

// Any returns the attribute's value in the shape template rendering wants:
// a string for single values, a []string for lists.
func (a Attribute) Any() any {
	if a.IsList {
		return a.Values
	}
	return a.Value
}
