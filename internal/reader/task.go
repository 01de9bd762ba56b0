package reader

import (
	"github.com/vk/taskpipego/internal/doctree"
	"github.com/vk/taskpipego/internal/pipeline"
	"github.com/vk/taskpipego/internal/schema"
	"github.com/vk/taskpipego/internal/task"
)

// nodeReader is the common contract of every reader in this package.
type nodeReader interface {
	Read(node *doctree.Node) error
}

// taskReaderFactory constructs the concrete reader for one task kind.
type taskReaderFactory func(group *pipeline.TaskGroup, deps Collaborators) nodeReader

// taskReaders maps the "type" discriminator to its reader constructor.
// The set of task kinds is closed; extending it means adding a reader and
// a task type here.
var taskReaders = map[string]taskReaderFactory{
	TaskTypeShell: func(group *pipeline.TaskGroup, deps Collaborators) nodeReader {
		return &ShellTaskReader{taskReaderBase{group: group, deps: deps}}
	},
	TaskTypeDockerContainer: func(group *pipeline.TaskGroup, deps Collaborators) nodeReader {
		return &DockerContainerTaskReader{taskReaderBase{group: group, deps: deps}}
	},
	TaskTypeDockerImage: func(group *pipeline.TaskGroup, deps Collaborators) nodeReader {
		return &DockerImageTaskReader{taskReaderBase{group: group, deps: deps}}
	},
}

// readTask dispatches one task node to the reader its discriminator
// selects. Nodes without a type field are shell tasks.
func readTask(node *doctree.Node, group *pipeline.TaskGroup, deps Collaborators) error {
	if node.Kind() != doctree.Mapping {
		return formatErrorf(node.Line(), "task must be a mapping, got %s", node.Kind())
	}

	kind := node.FieldText(FieldType, TaskTypeShell)
	factory, ok := taskReaders[kind]
	if !ok {
		return formatErrorf(node.Line(), "unknown task type %q", kind)
	}
	return factory(group, deps).Read(node)
}

// taskReaderBase supplies the field contract and sub-node handling shared
// by every task kind.
type taskReaderBase struct {
	group *pipeline.TaskGroup
	deps  Collaborators
}

// configurableTask is what the shared sub-readers need from a task under
// construction.
type configurableTask interface {
	task.Task
	SetVariableName(name string)
	AddTag(tag string)
}

// newMatcher returns the matcher pre-loaded with the fields common to all
// task kinds; concrete readers add their own before matching.
func (b *taskReaderBase) newMatcher() *schema.Matcher {
	m := schema.NewMatcher()
	m.RequireExactlyOnce(FieldCode)
	m.Allow(FieldType)
	m.Allow(FieldTitle)
	m.Allow(FieldVariable)
	m.Allow(FieldTags)
	return m
}

// code extracts the required code field, rejecting non-scalar values.
func (b *taskReaderBase) code(node *doctree.Node) (string, error) {
	codeNode := node.Field(FieldCode)
	if codeNode.Kind() != doctree.Scalar {
		return "", formatErrorf(codeNode.Line(), "%q must be a string", FieldCode)
	}
	return codeNode.Text(), nil
}

// finish reads the optional variable and tags sub-nodes and appends the
// constructed task to the owning group.
func (b *taskReaderBase) finish(node *doctree.Node, t configurableTask) error {
	if variableNode := node.Field(FieldVariable); variableNode != nil {
		if err := (&VariableReader{task: t}).Read(variableNode); err != nil {
			return err
		}
	}
	if tagsNode := node.Field(FieldTags); tagsNode != nil {
		if err := (&TagsReader{task: t}).Read(tagsNode); err != nil {
			return err
		}
	}
	b.group.Add(t)
	return nil
}

// ShellTaskReader reads a plain script task node.
type ShellTaskReader struct {
	taskReaderBase
}

// Read validates the field set and constructs a script task.
func (r *ShellTaskReader) Read(node *doctree.Node) error {
	if !r.newMatcher().Matches(node.SortedFields()) {
		return formatErrorf(node.Line(), "shell task fields are not correct (got %v)", node.Fields())
	}

	code, err := r.code(node)
	if err != nil {
		return err
	}

	t := task.NewScriptTask(node.FieldText(FieldTitle, ""), code, r.deps.Shell)
	return r.finish(node, t)
}
