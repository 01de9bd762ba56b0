package reader

import (
	"github.com/vk/taskpipego/internal/doctree"
	"github.com/vk/taskpipego/internal/model"
)

// ModelReader fills the document model from the "model" node.
type ModelReader struct {
	model *model.Model
}

// Read converts the node into attributes and merges them into the model.
func (r *ModelReader) Read(node *doctree.Node) error {
	attrs, err := readAttributeMap(node)
	if err != nil {
		return err
	}
	r.model.Data().Merge(attrs)
	return nil
}

// readAttributeMap converts a mapping of scalars or sequences of scalars
// into an ordered attribute map. Nested mappings are not part of the
// format.
func readAttributeMap(node *doctree.Node) (*model.AttributeMap, error) {
	if node.Kind() != doctree.Mapping {
		return nil, formatErrorf(node.Line(), "model must be a mapping of attributes, got %s", node.Kind())
	}

	attrs := model.NewAttributeMap()
	for _, name := range node.Fields() {
		value := node.Field(name)
		switch value.Kind() {
		case doctree.Scalar:
			attrs.Set(model.NewStringAttribute(name, value.Text()))
		case doctree.Sequence:
			items := value.Items()
			values := make([]string, 0, len(items))
			for _, item := range items {
				if item.Kind() != doctree.Scalar {
					return nil, formatErrorf(item.Line(),
						"attribute %q must be a list of strings", name)
				}
				values = append(values, item.Text())
			}
			attrs.Set(model.NewListAttribute(name, values))
		default:
			return nil, formatErrorf(value.Line(),
				"attribute %q must be a string or a list of strings", name)
		}
	}
	return attrs, nil
}
