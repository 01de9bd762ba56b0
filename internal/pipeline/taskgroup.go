package pipeline

import (
	"sync"

	"github.com/vk/taskpipego/internal/model"
	"github.com/vk/taskpipego/internal/task"
)

// TaskGroup is a named, ordered list of tasks sharing one scheduling mode
// and one variable map.
type TaskGroup struct {
	title    string
	parallel bool
	tasks    []task.Task

	mu        sync.RWMutex
	variables map[string]model.Variable
}

// NewTaskGroup constructs an empty group. The scheduling mode is fixed for
// the group's lifetime.
func NewTaskGroup(title string, parallel bool) *TaskGroup {
	return &TaskGroup{
		title:     title,
		parallel:  parallel,
		variables: make(map[string]model.Variable),
	}
}

// Title returns the group's title.
func (g *TaskGroup) Title() string {
	return g.title
}

// Parallel reports whether the group's tasks run concurrently.
func (g *TaskGroup) Parallel() bool {
	return g.parallel
}

// Add appends a task in declaration order.
func (g *TaskGroup) Add(t task.Task) {
	g.tasks = append(g.tasks, t)
}

// Tasks returns the group's tasks in declaration order.
func (g *TaskGroup) Tasks() []task.Task {
	out := make([]task.Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

// SetVariable publishes a task result variable into the group's map,
// overwriting any earlier entry of the same name.
func (g *TaskGroup) SetVariable(v model.Variable) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.variables[v.Name] = v
}

// Variable returns the variable stored under name.
func (g *TaskGroup) Variable(name string) (model.Variable, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.variables[name]
	return v, ok
}

// Variables returns a copy of the group's current variable map.
func (g *TaskGroup) Variables() map[string]model.Variable {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]model.Variable, len(g.variables))
	for name, v := range g.variables {
		out[name] = v
	}
	return out
}
