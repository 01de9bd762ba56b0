// Package docker is the execution collaborator for container tasks. It
// shells out to the docker CLI: a container run streams the task's code
// into a shell inside the container, an image build streams the Dockerfile
// into docker build. Available is the capability probe the readers consult
// before any container task object is constructed.
package docker

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/vk/taskpipego/internal/shell"
)

var (
	probeOnce sync.Once
	probeOK   bool
)

// Available reports whether a docker runtime is reachable. The probe runs
// once per process: locate the binary, then confirm it answers --version.
func Available() bool {
	probeOnce.Do(func() {
		path, err := exec.LookPath("docker")
		if err != nil {
			return
		}
		probeOK = exec.Command(path, "--version").Run() == nil
	})
	return probeOK
}

// ContainerRequest describes one container run.
type ContainerRequest struct {
	ImageName    string
	ImageVersion string
	Platform     string
	Code         string
	Env          map[string]string
}

// ImageRequest describes one image build; Dockerfile holds the resolved
// Dockerfile content.
type ImageRequest struct {
	ImageName    string
	ImageVersion string
	Dockerfile   string
}

// Runner runs container work. Non-zero container exits are regular
// Outputs; the error return covers spawn failures only.
type Runner interface {
	RunContainer(ctx context.Context, req ContainerRequest) (shell.Output, error)
	BuildImage(ctx context.Context, req ImageRequest) (shell.Output, error)
}

// CLIRunner drives the local docker binary.
type CLIRunner struct{}

// NewCLIRunner returns the docker CLI runner.
func NewCLIRunner() *CLIRunner {
	return &CLIRunner{}
}

// RunContainer executes the request's code inside a throwaway container.
func (r *CLIRunner) RunContainer(ctx context.Context, req ContainerRequest) (shell.Output, error) {
	args := []string{"run", "--rm", "-i"}
	if req.Platform != "" {
		args = append(args, "--platform", req.Platform)
	}
	for name, value := range req.Env {
		args = append(args, "-e", name+"="+value)
	}
	args = append(args, ImageRef(req.ImageName, req.ImageVersion), "sh")

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = strings.NewReader(req.Code)
	return shell.Capture(ctx, cmd)
}

// BuildImage builds an image from the request's Dockerfile content.
func (r *CLIRunner) BuildImage(ctx context.Context, req ImageRequest) (shell.Output, error) {
	args := []string{"build", "-t", ImageRef(req.ImageName, req.ImageVersion), "-"}

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = strings.NewReader(req.Dockerfile)
	return shell.Capture(ctx, cmd)
}

// ImageRef joins an image name with its optional version tag.
func ImageRef(name, version string) string {
	if version == "" {
		return name
	}
	return name + ":" + version
}
