package task

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/vk/taskpipego/internal/model"
	"github.com/vk/taskpipego/internal/tplengine"
)

// Task is one runnable unit of a task group.
type Task interface {
	// Title is the task's display name; may be empty.
	Title() string
	// Tags lists the task's filter labels.
	Tags() []string
	// VariableName is the name the task's result is published under.
	VariableName() string
	// Run executes the task against the given parameter view. Failures
	// are reported through Result.Success, never by panicking.
	Run(ctx context.Context, params model.Params) model.Result
}

// Base carries the fields every task kind shares.
type Base struct {
	title        string
	code         string
	variableName string
	tags         []string
}

// NewBase initializes the shared fields; the result variable starts with
// the default name until a variable node renames it.
func NewBase(title, code string) Base {
	return Base{
		title:        title,
		code:         code,
		variableName: model.DefaultVariableName,
	}
}

// Title returns the task title.
func (b *Base) Title() string {
	return b.title
}

// Code returns the raw code: inline text or a path to a script file.
func (b *Base) Code() string {
	return b.code
}

// VariableName returns the name the result is published under.
func (b *Base) VariableName() string {
	return b.variableName
}

// SetVariableName renames the task's result variable.
func (b *Base) SetVariableName(name string) {
	if name != "" {
		b.variableName = name
	}
}

// Tags returns a copy of the task's tags.
func (b *Base) Tags() []string {
	return slices.Clone(b.tags)
}

// AddTag adds a tag unless the task already carries it.
func (b *Base) AddTag(tag string) {
	if !slices.Contains(b.tags, tag) {
		b.tags = append(b.tags, tag)
	}
}

// IsRegularFile reports whether the given code is a path to an existing
// regular file rather than inline text. This existence check, not a
// document flag, decides how the code is executed.
func IsRegularFile(code string) bool {
	info, err := os.Stat(code)
	return err == nil && info.Mode().IsRegular()
}

// resolve renders the task's code against the parameter view.
func (b *Base) resolve(params model.Params) (string, error) {
	return tplengine.Render(b.code, params.TemplateData())
}

// failed builds the failure result for this task.
func (b *Base) failed() model.Result {
	return model.Result{
		Variable: model.Variable{Name: b.variableName},
		Success:  false,
	}
}

// resultOf builds the result carrying the produced output lines as the
// variable's value.
func (b *Base) resultOf(lines []string, success bool) model.Result {
	return model.Result{
		Variable: model.Variable{
			Name:  b.variableName,
			Value: strings.Join(lines, "\n"),
		},
		Success: success,
	}
}
