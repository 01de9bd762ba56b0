package task

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/taskpipego/internal/ctxlog"
	"github.com/vk/taskpipego/internal/docker"
	"github.com/vk/taskpipego/internal/model"
)

// DockerContainerTask runs its code inside a throwaway container.
type DockerContainerTask struct {
	Base
	imageName    string
	imageVersion string
	platform     string
	runner       docker.Runner
}

// NewDockerContainerTask constructs a container task bound to its docker
// collaborator. The reader has already verified the runtime capability.
func NewDockerContainerTask(title, code string, runner docker.Runner) *DockerContainerTask {
	return &DockerContainerTask{Base: NewBase(title, code), runner: runner}
}

// SetImageName sets the required container image name.
func (t *DockerContainerTask) SetImageName(name string) {
	t.imageName = name
}

// SetImageVersion sets the optional image version tag.
func (t *DockerContainerTask) SetImageVersion(version string) {
	t.imageVersion = version
}

// SetPlatform sets the optional container platform.
func (t *DockerContainerTask) SetPlatform(platform string) {
	t.platform = platform
}

// ImageName returns the container image name.
func (t *DockerContainerTask) ImageName() string {
	return t.imageName
}

// Run resolves the code and streams it into a container shell. Code given
// as a file path is read here, since the file does not exist inside the
// container.
func (t *DockerContainerTask) Run(ctx context.Context, params model.Params) model.Result {
	logger := ctxlog.FromContext(ctx)

	code, err := t.resolve(params)
	if err != nil {
		logger.Error("Failed to resolve container code.", "task", t.Title(), "error", err)
		return t.failed()
	}
	code, err = inlineCode(code)
	if err != nil {
		logger.Error("Failed to read script file.", "task", t.Title(), "error", err)
		return t.failed()
	}

	out, err := t.runner.RunContainer(ctx, docker.ContainerRequest{
		ImageName:    t.imageName,
		ImageVersion: t.imageVersion,
		Platform:     t.platform,
		Code:         code,
		Env:          params.VariableValues(),
	})
	if err != nil {
		logger.Error("Failed to spawn container.", "task", t.Title(), "error", err)
		return t.failed()
	}

	return t.resultOf(out.Lines, out.Success())
}

// inlineCode turns file-path code into its content.
func inlineCode(code string) (string, error) {
	if !IsRegularFile(code) {
		return code, nil
	}
	content, err := os.ReadFile(code)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", code, err)
	}
	return string(content), nil
}
