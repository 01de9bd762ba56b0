package reader

import (
	"github.com/vk/taskpipego/internal/doctree"
	"github.com/vk/taskpipego/internal/task"
)

// DockerContainerTaskReader reads a docker container task node.
type DockerContainerTaskReader struct {
	taskReaderBase
}

// Read verifies the container runtime capability, validates the field set
// and constructs a container task. A missing runtime fails the whole
// document before any task object exists.
func (r *DockerContainerTaskReader) Read(node *doctree.Node) error {
	if !r.deps.DockerAvailable() {
		return formatErrorf(node.Line(), "docker seems to be missing; cannot process document")
	}

	matcher := r.newMatcher()
	matcher.RequireExactlyOnce(FieldImageName)
	matcher.Allow(FieldImageVersion)
	matcher.Allow(FieldPlatform)
	if !matcher.Matches(node.SortedFields()) {
		return formatErrorf(node.Line(), "docker container task fields are not correct (got %v)", node.Fields())
	}

	code, err := r.code(node)
	if err != nil {
		return err
	}

	t := task.NewDockerContainerTask(node.FieldText(FieldTitle, ""), code, r.deps.Docker)
	t.SetImageName(node.Field(FieldImageName).Text())
	t.SetImageVersion(node.FieldText(FieldImageVersion, ""))
	t.SetPlatform(node.FieldText(FieldPlatform, ""))

	return r.finish(node, t)
}

// DockerImageTaskReader reads a docker image build task node; the task's
// code is the Dockerfile.
type DockerImageTaskReader struct {
	taskReaderBase
}

// Read verifies the container runtime capability, validates the field set
// and constructs an image build task.
func (r *DockerImageTaskReader) Read(node *doctree.Node) error {
	if !r.deps.DockerAvailable() {
		return formatErrorf(node.Line(), "docker seems to be missing; cannot process document")
	}

	matcher := r.newMatcher()
	matcher.RequireExactlyOnce(FieldImageName)
	matcher.Allow(FieldImageVersion)
	if !matcher.Matches(node.SortedFields()) {
		return formatErrorf(node.Line(), "docker image task fields are not correct (got %v)", node.Fields())
	}

	code, err := r.code(node)
	if err != nil {
		return err
	}

	t := task.NewDockerImageTask(node.FieldText(FieldTitle, ""), code, r.deps.Docker)
	t.SetImageName(node.Field(FieldImageName).Text())
	t.SetImageVersion(node.FieldText(FieldImageVersion, ""))

	return r.finish(node, t)
}
