package task

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/taskpipego/internal/docker"
	"github.com/vk/taskpipego/internal/model"
	"github.com/vk/taskpipego/internal/shell"
)

// fakeShell records the request and plays back a canned output.
type fakeShell struct {
	lastReq shell.Request
	out     shell.Output
}

func (f *fakeShell) Run(_ context.Context, req shell.Request) (shell.Output, error) {
	f.lastReq = req
	return f.out, nil
}

// fakeDocker records container and build requests.
type fakeDocker struct {
	lastContainer docker.ContainerRequest
	lastImage     docker.ImageRequest
	out           shell.Output
}

func (f *fakeDocker) RunContainer(_ context.Context, req docker.ContainerRequest) (shell.Output, error) {
	f.lastContainer = req
	return f.out, nil
}

func (f *fakeDocker) BuildImage(_ context.Context, req docker.ImageRequest) (shell.Output, error) {
	f.lastImage = req
	return f.out, nil
}

func emptyParams() model.Params {
	return model.NewParams(model.NewModel(), nil)
}

func TestBaseDefaults(t *testing.T) {
	b := NewBase("t1", "echo hi")

	assert.Equal(t, "t1", b.Title())
	assert.Equal(t, model.DefaultVariableName, b.VariableName())
	assert.Empty(t, b.Tags())
}

func TestAddTagIgnoresDuplicates(t *testing.T) {
	b := NewBase("", "code")
	b.AddTag("test1")
	b.AddTag("test2")
	b.AddTag("test1")

	assert.Equal(t, []string{"test1", "test2"}, b.Tags())
}

func TestSetVariableNameIgnoresEmpty(t *testing.T) {
	b := NewBase("", "code")
	b.SetVariableName("")
	assert.Equal(t, model.DefaultVariableName, b.VariableName())

	b.SetVariableName("out")
	assert.Equal(t, "out", b.VariableName())
}

func TestIsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo"), 0o644))

	assert.True(t, IsRegularFile(path))
	assert.False(t, IsRegularFile("echo hello"))
	assert.False(t, IsRegularFile(t.TempDir()))
}

func TestScriptTaskResolvesReferences(t *testing.T) {
	runner := &fakeShell{out: shell.Output{Lines: []string{"hello"}, ExitCode: 0}}
	st := NewScriptTask("t1", "echo {{ .greeting }}", runner)

	m := model.NewModel()
	m.Data().Set(model.NewStringAttribute("greeting", "hello"))

	result := st.Run(context.Background(), model.NewParams(m, nil))

	assert.True(t, result.Success)
	assert.Equal(t, "echo hello", runner.lastReq.Code)
	assert.Equal(t, model.DefaultVariableName, result.Variable.Name)
	assert.Equal(t, "hello", result.Variable.Value)
}

func TestScriptTaskUnresolvedReferenceFailsTask(t *testing.T) {
	runner := &fakeShell{out: shell.Output{ExitCode: 0}}
	st := NewScriptTask("t1", "echo {{ .missing }}", runner)

	result := st.Run(context.Background(), emptyParams())

	assert.False(t, result.Success)
	// The collaborator must never see unresolved code.
	assert.Empty(t, runner.lastReq.Code)
}

func TestScriptTaskNonZeroExitFails(t *testing.T) {
	runner := &fakeShell{out: shell.Output{ExitCode: 1}}
	st := NewScriptTask("t1", "exit 1", runner)

	result := st.Run(context.Background(), emptyParams())

	assert.False(t, result.Success)
}

func TestScriptTaskPassesVariablesAsEnvironment(t *testing.T) {
	runner := &fakeShell{out: shell.Output{ExitCode: 0}}
	st := NewScriptTask("t1", "echo ${previous}", runner)

	params := model.NewParams(model.NewModel(), map[string]model.Variable{
		"previous": {Name: "previous", Value: "42"},
	})
	st.Run(context.Background(), params)

	assert.Equal(t, map[string]string{"previous": "42"}, runner.lastReq.Env)
}

func TestDockerContainerTaskBuildsRequest(t *testing.T) {
	runner := &fakeDocker{out: shell.Output{Lines: []string{"ok"}, ExitCode: 0}}
	dt := NewDockerContainerTask("t1", "echo ok", runner)
	dt.SetImageName("alpine")
	dt.SetImageVersion("3.20")
	dt.SetPlatform("linux/amd64")

	result := dt.Run(context.Background(), emptyParams())

	assert.True(t, result.Success)
	assert.Equal(t, "alpine", runner.lastContainer.ImageName)
	assert.Equal(t, "3.20", runner.lastContainer.ImageVersion)
	assert.Equal(t, "linux/amd64", runner.lastContainer.Platform)
	assert.Equal(t, "echo ok", runner.lastContainer.Code)
}

func TestDockerContainerTaskInlinesFileCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo from file"), 0o644))

	runner := &fakeDocker{out: shell.Output{ExitCode: 0}}
	dt := NewDockerContainerTask("t1", path, runner)
	dt.SetImageName("alpine")

	dt.Run(context.Background(), emptyParams())

	assert.Equal(t, "echo from file", runner.lastContainer.Code)
}

func TestDockerImageTaskBuildsRequest(t *testing.T) {
	runner := &fakeDocker{out: shell.Output{ExitCode: 0}}
	it := NewDockerImageTask("t1", "FROM alpine", runner)
	it.SetImageName("myimage")
	it.SetImageVersion("1.0")

	result := it.Run(context.Background(), emptyParams())

	assert.True(t, result.Success)
	assert.Equal(t, "myimage", runner.lastImage.ImageName)
	assert.Equal(t, "1.0", runner.lastImage.ImageVersion)
	assert.Equal(t, "FROM alpine", runner.lastImage.Dockerfile)
}
