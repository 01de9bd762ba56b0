package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeMapPreservesInsertionOrder(t *testing.T) {
	m := NewAttributeMap()
	m.Set(NewStringAttribute("c", "3"))
	m.Set(NewStringAttribute("a", "1"))
	m.Set(NewStringAttribute("b", "2"))

	assert.Equal(t, []string{"c", "a", "b"}, m.Names())
}

func TestAttributeMapOverwriteKeepsPosition(t *testing.T) {
	m := NewAttributeMap()
	m.Set(NewStringAttribute("a", "1"))
	m.Set(NewStringAttribute("b", "2"))
	m.Set(NewStringAttribute("a", "changed"))

	assert.Equal(t, []string{"a", "b"}, m.Names())
	attr, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "changed", attr.Value)
}

func TestAttributeMapIgnoresEmptyName(t *testing.T) {
	m := NewAttributeMap()
	m.Set(NewStringAttribute("", "value"))

	assert.Zero(t, m.Len())
}

func TestAttributeMapMerge(t *testing.T) {
	dst := NewAttributeMap()
	dst.Set(NewStringAttribute("a", "1"))

	src := NewAttributeMap()
	src.Set(NewListAttribute("b", []string{"x", "y"}))
	src.Set(NewStringAttribute("a", "overwritten"))

	dst.Merge(src)

	assert.Equal(t, []string{"a", "b"}, dst.Names())
	a, _ := dst.Get("a")
	assert.Equal(t, "overwritten", a.Value)
	b, _ := dst.Get("b")
	assert.Equal(t, []string{"x", "y"}, b.Values)
}

func TestNewVariableCarriesDefaultName(t *testing.T) {
	v := NewVariable()
	assert.Equal(t, DefaultVariableName, v.Name)
	assert.Empty(t, v.Value)
}

func TestParamsSnapshotIsIsolated(t *testing.T) {
	vars := map[string]Variable{"out": {Name: "out", Value: "1"}}
	p := NewParams(NewModel(), vars)

	vars["out"] = Variable{Name: "out", Value: "mutated"}

	v, ok := p.Variable("out")
	require.True(t, ok)
	assert.Equal(t, "1", v.Value)
}

func TestTemplateDataVariableShadowsModelAttribute(t *testing.T) {
	m := NewModel()
	m.Data().Set(NewStringAttribute("greeting", "from model"))
	m.Data().Set(NewListAttribute("hosts", []string{"a", "b"}))

	p := NewParams(m, map[string]Variable{
		"greeting": {Name: "greeting", Value: "from group"},
	})

	data := p.TemplateData()
	assert.Equal(t, "from group", data["greeting"])
	assert.Equal(t, []string{"a", "b"}, data["hosts"])
}
