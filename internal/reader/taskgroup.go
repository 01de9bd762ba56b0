package reader

import (
	"github.com/vk/taskpipego/internal/doctree"
	"github.com/vk/taskpipego/internal/pipeline"
	"github.com/vk/taskpipego/internal/schema"
)

// TaskGroupReader reads one task group node and appends the group to its
// document.
type TaskGroupReader struct {
	doc  *pipeline.Document
	deps Collaborators
}

// Read validates the group fields, constructs the group and dispatches
// every task node to its concrete reader.
func (r *TaskGroupReader) Read(node *doctree.Node) error {
	if node.Kind() != doctree.Mapping {
		return formatErrorf(node.Line(), "task group must be a mapping, got %s", node.Kind())
	}

	matcher := schema.NewMatcher()
	matcher.RequireExactlyOnce(FieldTitle)
	matcher.RequireExactlyOnce(FieldTasks)
	matcher.Allow(FieldParallel)
	if !matcher.Matches(node.SortedFields()) {
		return formatErrorf(node.Line(), "task group fields are not correct (got %v)", node.Fields())
	}

	parallel := false
	if parallelNode := node.Field(FieldParallel); parallelNode != nil {
		value, err := parallelNode.Bool()
		if err != nil {
			return formatErrorf(parallelNode.Line(), "%q: %v", FieldParallel, err)
		}
		parallel = value
	}

	group := pipeline.NewTaskGroup(node.FieldText(FieldTitle, ""), parallel)

	tasksNode := node.Field(FieldTasks)
	if tasksNode.Kind() != doctree.Sequence {
		return formatErrorf(tasksNode.Line(), "%q must be a sequence", FieldTasks)
	}
	for _, taskNode := range tasksNode.Items() {
		if err := readTask(taskNode, group, r.deps); err != nil {
			return err
		}
	}

	r.doc.AddGroup(group)
	return nil
}
