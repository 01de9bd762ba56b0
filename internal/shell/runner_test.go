package shell

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInlineCode(t *testing.T) {
	out, err := NewLocalRunner().Run(context.Background(), Request{
		Code: "echo hello world 1!",
	})
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Contains(t, out.Lines, "hello world 1!")
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo from file\n"), 0o644))

	out, err := NewLocalRunner().Run(context.Background(), Request{
		Code:   path,
		IsFile: true,
	})
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Contains(t, out.Lines, "from file")
}

func TestRunPropagatesEnvironment(t *testing.T) {
	out, err := NewLocalRunner().Run(context.Background(), Request{
		Code: "echo value=${GREETING}",
		Env:  map[string]string{"GREETING": "hi"},
	})
	require.NoError(t, err)
	assert.Contains(t, out.Lines, "value=hi")
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	out, err := NewLocalRunner().Run(context.Background(), Request{
		Code: "echo failing; exit 3",
	})
	require.NoError(t, err)
	assert.False(t, out.Success())
	assert.Equal(t, 3, out.ExitCode)
	assert.Contains(t, out.Lines, "failing")
}

func TestRunCollectsStderr(t *testing.T) {
	out, err := NewLocalRunner().Run(context.Background(), Request{
		Code: "echo oops >&2",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Lines, "oops")
}
