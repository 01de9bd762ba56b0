package executor

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/vk/taskpipego/internal/ctxlog"
	"github.com/vk/taskpipego/internal/model"
	"github.com/vk/taskpipego/internal/pipeline"
	"github.com/vk/taskpipego/internal/task"
)

// Executor runs a parsed document.
type Executor struct{}

// New returns an executor. It is stateless between runs.
func New() *Executor {
	return &Executor{}
}

// Run executes every task group of the document in declaration order,
// filtered by tags, and reports whether all executed tasks succeeded.
func (e *Executor) Run(ctx context.Context, doc *pipeline.Document, tags []string) bool {
	logger := ctxlog.FromContext(ctx).With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	success := true
	for _, group := range doc.Groups() {
		if !e.runGroup(ctx, doc.Model(), group, tags) {
			success = false
		}
	}

	if success {
		logger.Info("🏁 Document run succeeded.")
	} else {
		logger.Error("🏁 Document run failed.")
	}
	return success
}

// runGroup executes one task group and reports its aggregated outcome.
func (e *Executor) runGroup(ctx context.Context, m *model.Model, group *pipeline.TaskGroup, tags []string) bool {
	logger := ctxlog.FromContext(ctx).With("group", group.Title())
	ctx = ctxlog.WithLogger(ctx, logger)

	candidates := filterTasks(group.Tasks(), tags)
	skipped := len(group.Tasks()) - len(candidates)
	logger.Info("▶️ Starting task group.",
		"parallel", group.Parallel(), "tasks", len(candidates), "skipped", skipped)

	// A group with every task filtered out is vacuously successful.
	if len(candidates) == 0 {
		return true
	}

	var success bool
	if group.Parallel() {
		success = e.runParallel(ctx, m, group, candidates)
	} else {
		success = e.runSequential(ctx, m, group, candidates)
	}

	logger.Info("✅ Finished task group.", "success", success)
	return success
}

// runSequential executes candidates in declaration order. Each task sees
// every earlier task's result variable; a failure never stops the rest.
func (e *Executor) runSequential(ctx context.Context, m *model.Model, group *pipeline.TaskGroup, candidates []task.Task) bool {
	success := true
	for _, t := range candidates {
		params := model.NewParams(m, group.Variables())
		result := t.Run(ctx, params)
		e.merge(ctx, group, result)
		if !result.Success {
			success = false
		}
	}
	return success
}

// runParallel dispatches one goroutine per candidate and drains all
// results before aggregating, so every task's side effects happen even
// when an early one fails.
func (e *Executor) runParallel(ctx context.Context, m *model.Model, group *pipeline.TaskGroup, candidates []task.Task) bool {
	results := make(chan model.Result, len(candidates))

	// Parallel tasks must not depend on each other's variables, so every
	// task gets the same pre-dispatch snapshot.
	params := model.NewParams(m, group.Variables())
	for _, t := range candidates {
		go func(t task.Task) {
			results <- t.Run(ctx, params)
		}(t)
	}

	success := true
	for range candidates {
		result := <-results
		e.merge(ctx, group, result)
		if !result.Success {
			success = false
		}
	}
	return success
}

// merge publishes a task result into the group's variable map.
func (e *Executor) merge(ctx context.Context, group *pipeline.TaskGroup, result model.Result) {
	group.SetVariable(result.Variable)
	ctxlog.FromContext(ctx).Info("set variable",
		"name", result.Variable.Name, "value", result.Variable.Value, "success", result.Success)
}

// filterTasks returns the tasks allowed to run under the tag filter. An
// empty filter allows everything; a non-empty filter requires a tag
// intersection, so untagged tasks never match.
func filterTasks(tasks []task.Task, tags []string) []task.Task {
	if len(tags) == 0 {
		return tasks
	}
	var out []task.Task
	for _, t := range tasks {
		if slices.ContainsFunc(t.Tags(), func(tag string) bool {
			return slices.Contains(tags, tag)
		}) {
			out = append(out, t)
		}
	}
	return out
}
