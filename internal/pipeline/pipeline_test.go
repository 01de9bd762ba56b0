package pipeline

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/taskpipego/internal/model"
)

func TestTaskGroupVariableOverwrite(t *testing.T) {
	g := NewTaskGroup("group", false)
	g.SetVariable(model.Variable{Name: "out", Value: "first"})
	g.SetVariable(model.Variable{Name: "out", Value: "second"})

	v, ok := g.Variable("out")
	require.True(t, ok)
	assert.Equal(t, "second", v.Value)
	assert.Len(t, g.Variables(), 1)
}

func TestTaskGroupVariablesCopyIsDetached(t *testing.T) {
	g := NewTaskGroup("group", false)
	g.SetVariable(model.Variable{Name: "a", Value: "1"})

	snapshot := g.Variables()
	snapshot["a"] = model.Variable{Name: "a", Value: "mutated"}

	v, _ := g.Variable("a")
	assert.Equal(t, "1", v.Value)
}

func TestTaskGroupConcurrentSetVariable(t *testing.T) {
	g := NewTaskGroup("group", true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("var%d", i)
			g.SetVariable(model.Variable{Name: name, Value: name})
		}(i)
	}
	wg.Wait()

	assert.Len(t, g.Variables(), 50)
}

func TestDocumentKeepsGroupOrder(t *testing.T) {
	d := NewDocument()
	d.AddGroup(NewTaskGroup("first", false))
	d.AddGroup(NewTaskGroup("second", true))

	groups := d.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "first", groups[0].Title())
	assert.Equal(t, "second", groups[1].Title())
	assert.True(t, groups[1].Parallel())
}
