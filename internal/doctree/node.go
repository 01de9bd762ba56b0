package doctree

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Kind classifies a node the same way the readers think about documents:
// a mapping of named fields, a sequence of nodes, or a scalar value.
type Kind int

const (
	// Mapping is a node with named fields.
	Mapping Kind = iota
	// Sequence is an ordered list of nodes.
	Sequence
	// Scalar is a single text value.
	Scalar
)

// String returns a human readable kind name for error messages.
func (k Kind) String() string {
	switch k {
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Node is one node of a parsed hierarchical document. Field order follows
// the source document.
type Node struct {
	raw *yaml.Node
}

// Load parses a document from a file.
func Load(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses a document from a reader into its root node.
func Parse(r io.Reader) (*Node, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	// The decoder hands back a DocumentNode wrapping the real root.
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("document is empty")
		}
		return &Node{raw: root.Content[0]}, nil
	}
	return &Node{raw: &root}, nil
}

// Kind reports the node's classification.
func (n *Node) Kind() Kind {
	switch n.raw.Kind {
	case yaml.MappingNode:
		return Mapping
	case yaml.SequenceNode:
		return Sequence
	default:
		return Scalar
	}
}

// Fields enumerates the field names of a mapping node in document order.
// Non-mapping nodes have no fields.
func (n *Node) Fields() []string {
	if n.raw.Kind != yaml.MappingNode {
		return nil
	}
	names := make([]string, 0, len(n.raw.Content)/2)
	for i := 0; i+1 < len(n.raw.Content); i += 2 {
		names = append(names, n.raw.Content[i].Value)
	}
	return names
}

// SortedFields returns the field names sorted lexicographically, the form
// the schema matcher consumes.
func (n *Node) SortedFields() []string {
	names := n.Fields()
	sort.Strings(names)
	return names
}

// Has reports whether a mapping node carries the named field.
func (n *Node) Has(name string) bool {
	return n.Field(name) != nil
}

// Field returns the sub-node stored under the named field, or nil when the
// field is absent or the node is not a mapping.
func (n *Node) Field(name string) *Node {
	if n.raw.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.raw.Content); i += 2 {
		if n.raw.Content[i].Value == name {
			return &Node{raw: n.raw.Content[i+1]}
		}
	}
	return nil
}

// Text returns the scalar text of the node. Non-scalar nodes yield an empty
// string; callers that care use Kind first.
func (n *Node) Text() string {
	if n.raw.Kind != yaml.ScalarNode {
		return ""
	}
	return n.raw.Value
}

// FieldText is shorthand for reading an optional scalar field, returning
// the fallback when the field is absent.
func (n *Node) FieldText(name, fallback string) string {
	sub := n.Field(name)
	if sub == nil {
		return fallback
	}
	return sub.Text()
}

// Bool converts the node's scalar text to a boolean.
func (n *Node) Bool() (bool, error) {
	switch n.Text() {
	case "true", "True", "yes", "on":
		return true, nil
	case "false", "False", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("value %q is not a boolean", n.Text())
	}
}

// Items returns the elements of a sequence node in order. Non-sequence
// nodes have no items.
func (n *Node) Items() []*Node {
	if n.raw.Kind != yaml.SequenceNode {
		return nil
	}
	items := make([]*Node, 0, len(n.raw.Content))
	for _, c := range n.raw.Content {
		items = append(items, &Node{raw: c})
	}
	return items
}

// Line reports the source line of the node for error messages.
func (n *Node) Line() int {
	return n.raw.Line
}
