// Package testutil provides the shared harness for document-driven tests:
// a race-safe log capture buffer and a helper that writes a document to a
// temp file and runs the full command path against it.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/taskpipego/internal/cli"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RunResult holds the outcome of one harness run.
type RunResult struct {
	LogOutput string
	Err       error
}

// RunDocument writes the document to a temp file and executes
// `run --file <it>` with the given extra arguments, capturing all output.
func RunDocument(t *testing.T, document string, extraArgs ...string) *RunResult {
	t.Helper()

	path := filepath.Join(t.TempDir(), "document.yml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	out := &SafeBuffer{}
	args := append([]string{"run", "--file", path}, extraArgs...)
	err := cli.Execute(context.Background(), out, args)

	return &RunResult{LogOutput: out.String(), Err: err}
}
