package task

import (
	"context"

	"github.com/vk/taskpipego/internal/ctxlog"
	"github.com/vk/taskpipego/internal/model"
	"github.com/vk/taskpipego/internal/shell"
)

// ScriptTask runs its code as a local shell script.
type ScriptTask struct {
	Base
	runner shell.Runner
}

// NewScriptTask constructs a script task bound to its execution
// collaborator.
func NewScriptTask(title, code string, runner shell.Runner) *ScriptTask {
	return &ScriptTask{Base: NewBase(title, code), runner: runner}
}

// Run resolves the code and hands it to the shell runner.
func (t *ScriptTask) Run(ctx context.Context, params model.Params) model.Result {
	logger := ctxlog.FromContext(ctx)

	code, err := t.resolve(params)
	if err != nil {
		logger.Error("Failed to resolve script code.", "task", t.Title(), "error", err)
		return t.failed()
	}

	out, err := t.runner.Run(ctx, shell.Request{
		Code:   code,
		IsFile: IsRegularFile(code),
		Env:    params.VariableValues(),
	})
	if err != nil {
		logger.Error("Failed to spawn script.", "task", t.Title(), "error", err)
		return t.failed()
	}

	return t.resultOf(out.Lines, out.Success())
}
