package reader

import (
	"github.com/vk/taskpipego/internal/doctree"
	"github.com/vk/taskpipego/internal/schema"
)

// VariableReader reads a task's variable node and renames the task's
// result variable.
type VariableReader struct {
	task configurableTask
}

// Read validates the variable fields and applies the name.
func (r *VariableReader) Read(node *doctree.Node) error {
	if node.Kind() != doctree.Mapping {
		return formatErrorf(node.Line(), "variable must be a mapping, got %s", node.Kind())
	}

	matcher := schema.NewMatcher()
	matcher.RequireExactlyOnce(FieldName)
	if !matcher.Matches(node.SortedFields()) {
		return formatErrorf(node.Line(), "variable fields are not correct (got %v)", node.Fields())
	}

	nameNode := node.Field(FieldName)
	if nameNode.Kind() != doctree.Scalar || nameNode.Text() == "" {
		return formatErrorf(nameNode.Line(), "variable %q must be a non-empty string", FieldName)
	}

	r.task.SetVariableName(nameNode.Text())
	return nil
}

// TagsReader reads a task's tags node: a sequence of string labels, added
// with the task's add-if-absent rule.
type TagsReader struct {
	task configurableTask
}

// Read validates the sequence shape and adds each tag.
func (r *TagsReader) Read(node *doctree.Node) error {
	if node.Kind() != doctree.Sequence {
		return formatErrorf(node.Line(), "tags must be a sequence of strings, got %s", node.Kind())
	}

	for _, item := range node.Items() {
		if item.Kind() != doctree.Scalar || item.Text() == "" {
			return formatErrorf(item.Line(), "tags entries must be non-empty strings")
		}
		r.task.AddTag(item.Text())
	}
	return nil
}
