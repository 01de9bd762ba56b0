package reader

import (
	"github.com/vk/taskpipego/internal/docker"
	"github.com/vk/taskpipego/internal/doctree"
	"github.com/vk/taskpipego/internal/pipeline"
	"github.com/vk/taskpipego/internal/schema"
	"github.com/vk/taskpipego/internal/shell"
)

// Collaborators are the external capabilities tasks are constructed
// against. Tests inject fakes; production wiring uses the local shell and
// docker CLI runners.
type Collaborators struct {
	Shell           shell.Runner
	Docker          docker.Runner
	DockerAvailable func() bool
}

// defaults fills every unset collaborator with its production value.
func (c Collaborators) defaults() Collaborators {
	if c.Shell == nil {
		c.Shell = shell.NewLocalRunner()
	}
	if c.Docker == nil {
		c.Docker = docker.NewCLIRunner()
	}
	if c.DockerAvailable == nil {
		c.DockerAvailable = docker.Available
	}
	return c
}

// DocumentReader reads the top-level document node.
type DocumentReader struct {
	deps Collaborators
}

// NewDocumentReader constructs a document reader over the given
// collaborators.
func NewDocumentReader(deps Collaborators) *DocumentReader {
	return &DocumentReader{deps: deps.defaults()}
}

// ReadFile parses and reads a document from disk.
func (r *DocumentReader) ReadFile(path string) (*pipeline.Document, error) {
	node, err := doctree.Load(path)
	if err != nil {
		return nil, err
	}
	return r.Read(node)
}

// Read validates the top-level field set and assembles the document.
func (r *DocumentReader) Read(node *doctree.Node) (*pipeline.Document, error) {
	if node.Kind() != doctree.Mapping {
		return nil, formatErrorf(node.Line(), "document root must be a mapping, got %s", node.Kind())
	}

	matcher := schema.NewMatcher()
	matcher.RequireExactlyOnce(FieldTaskGroups)
	matcher.Allow(FieldModel)
	if !matcher.Matches(node.SortedFields()) {
		return nil, formatErrorf(node.Line(),
			"document fields are not correct (got %v, want %q plus optional %q)",
			node.Fields(), FieldTaskGroups, FieldModel)
	}

	doc := pipeline.NewDocument()

	if modelNode := node.Field(FieldModel); modelNode != nil {
		if err := (&ModelReader{model: doc.Model()}).Read(modelNode); err != nil {
			return nil, err
		}
	}

	groupsNode := node.Field(FieldTaskGroups)
	if groupsNode.Kind() != doctree.Sequence {
		return nil, formatErrorf(groupsNode.Line(), "%q must be a sequence", FieldTaskGroups)
	}
	for _, groupNode := range groupsNode.Items() {
		groupReader := &TaskGroupReader{doc: doc, deps: r.deps}
		if err := groupReader.Read(groupNode); err != nil {
			return nil, err
		}
	}

	return doc, nil
}
