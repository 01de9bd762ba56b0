package tplengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesReferences(t *testing.T) {
	out, err := Render("echo {{ .greeting }}", map[string]any{"greeting": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "echo hello", out)
}

func TestRenderLeavesPlainCodeUntouched(t *testing.T) {
	code := "for f in *; do echo ${f}; done"
	out, err := Render(code, nil)
	require.NoError(t, err)
	assert.Equal(t, code, out)
}

func TestRenderFailsOnUnresolvedReference(t *testing.T) {
	_, err := Render("echo {{ .missing }}", map[string]any{"present": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve")
}

func TestRenderFailsOnBadSyntax(t *testing.T) {
	_, err := Render("echo {{ .unclosed", map[string]any{})
	require.Error(t, err)
}

func TestRenderSprigFunctions(t *testing.T) {
	out, err := Render(`echo {{ .hosts | join "," }}`, map[string]any{
		"hosts": []string{"a", "b", "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, "echo a,b,c", out)
}

func TestHasTemplate(t *testing.T) {
	assert.True(t, HasTemplate("{{ .x }}"))
	assert.False(t, HasTemplate("echo plain"))
}
