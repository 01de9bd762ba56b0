package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskMatcher() *Matcher {
	m := NewMatcher()
	m.RequireExactlyOnce("code")
	m.Allow("title")
	m.Allow("tags")
	return m
}

func TestMatchesRequiredAndAllowed(t *testing.T) {
	m := newTaskMatcher()

	assert.True(t, m.Matches([]string{"code"}))
	assert.True(t, m.Matches([]string{"code", "tags", "title"}))
}

func TestMatchesRejectsUnknownField(t *testing.T) {
	m := newTaskMatcher()

	require.True(t, m.Matches([]string{"code", "title"}))
	// Adding any unregistered name flips the verdict.
	assert.False(t, m.Matches([]string{"code", "title", "typo"}))
}

func TestMatchesRejectsMissingRequiredField(t *testing.T) {
	m := newTaskMatcher()

	assert.False(t, m.Matches([]string{"tags", "title"}))
	assert.False(t, m.Matches(nil))
}

func TestMatchesRejectsDuplicateName(t *testing.T) {
	m := newTaskMatcher()

	assert.False(t, m.Matches([]string{"code", "code"}))
}

func TestMatchesIsPure(t *testing.T) {
	m := newTaskMatcher()
	names := []string{"code", "title"}

	for i := 0; i < 3; i++ {
		assert.True(t, m.Matches(names))
	}
}

func TestRequireExactlyOnceRejectsDoubleRegistration(t *testing.T) {
	m := NewMatcher()

	assert.True(t, m.RequireExactlyOnce("code"))
	assert.False(t, m.RequireExactlyOnce("code"))
}

func TestEmptyMatcherAcceptsOnlyEmptySet(t *testing.T) {
	m := NewMatcher()

	assert.True(t, m.Matches(nil))
	assert.False(t, m.Matches([]string{"anything"}))
}
