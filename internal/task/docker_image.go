package task

import (
	"context"

	"github.com/vk/taskpipego/internal/ctxlog"
	"github.com/vk/taskpipego/internal/docker"
	"github.com/vk/taskpipego/internal/model"
)

// DockerImageTask builds a docker image; the task's code is the Dockerfile,
// inline or as a path to an existing file.
type DockerImageTask struct {
	Base
	imageName    string
	imageVersion string
	runner       docker.Runner
}

// NewDockerImageTask constructs an image-build task bound to its docker
// collaborator.
func NewDockerImageTask(title, code string, runner docker.Runner) *DockerImageTask {
	return &DockerImageTask{Base: NewBase(title, code), runner: runner}
}

// SetImageName sets the required tag the built image is stored under.
func (t *DockerImageTask) SetImageName(name string) {
	t.imageName = name
}

// SetImageVersion sets the optional version part of the tag.
func (t *DockerImageTask) SetImageVersion(version string) {
	t.imageVersion = version
}

// ImageName returns the image tag name.
func (t *DockerImageTask) ImageName() string {
	return t.imageName
}

// Run resolves the Dockerfile and hands it to docker build.
func (t *DockerImageTask) Run(ctx context.Context, params model.Params) model.Result {
	logger := ctxlog.FromContext(ctx)

	dockerfile, err := t.resolve(params)
	if err != nil {
		logger.Error("Failed to resolve Dockerfile.", "task", t.Title(), "error", err)
		return t.failed()
	}
	dockerfile, err = inlineCode(dockerfile)
	if err != nil {
		logger.Error("Failed to read Dockerfile.", "task", t.Title(), "error", err)
		return t.failed()
	}

	out, err := t.runner.BuildImage(ctx, docker.ImageRequest{
		ImageName:    t.imageName,
		ImageVersion: t.imageVersion,
		Dockerfile:   dockerfile,
	})
	if err != nil {
		logger.Error("Failed to spawn image build.", "task", t.Title(), "error", err)
		return t.failed()
	}

	return t.resultOf(out.Lines, out.Success())
}
