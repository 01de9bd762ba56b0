package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/vk/taskpipego/internal/ctxlog"
)

// Request describes one script execution: the resolved code (inline text or
// a path to an existing file) and the environment entries derived from the
// run's variables.
type Request struct {
	Code   string
	IsFile bool
	Env    map[string]string
}

// Output is what a finished execution produced: every line written to
// stdout or stderr, in arrival order, and the process exit code.
type Output struct {
	Lines    []string
	ExitCode int
}

// Success reports whether the execution finished with the conventional
// zero exit code.
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// Runner runs script code. The error return covers spawn failures only;
// a non-zero exit is a regular Output, not an error.
type Runner interface {
	Run(ctx context.Context, req Request) (Output, error)
}

// LocalRunner executes scripts with the local sh interpreter.
type LocalRunner struct{}

// NewLocalRunner returns the process-spawning runner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run executes the request. Inline code is written to a temp script first;
// file code runs in place.
func (r *LocalRunner) Run(ctx context.Context, req Request) (Output, error) {
	scriptPath := req.Code
	if !req.IsFile {
		tmp, err := os.CreateTemp("", "taskpipego-*.sh")
		if err != nil {
			return Output{}, fmt.Errorf("failed to create temp script: %w", err)
		}
		defer os.Remove(tmp.Name())

		if _, err := tmp.WriteString(req.Code); err != nil {
			tmp.Close()
			return Output{}, fmt.Errorf("failed to write temp script: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return Output{}, fmt.Errorf("failed to close temp script: %w", err)
		}
		scriptPath = tmp.Name()
	}

	cmd := exec.CommandContext(ctx, "sh", scriptPath)
	cmd.Env = append(os.Environ(), flattenEnv(req.Env)...)
	return Capture(ctx, cmd)
}

// Capture starts the prepared command, logs and collects its output lines,
// and waits for completion. Shared with the docker collaborator, which
// prepares its own command line.
func Capture(ctx context.Context, cmd *exec.Cmd) (Output, error) {
	logger := ctxlog.FromContext(ctx)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Output{}, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Output{}, fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return Output{}, fmt.Errorf("failed to start %q: %w", cmd.Path, err)
	}

	var (
		mu    sync.Mutex
		lines []string
		wg    sync.WaitGroup
	)
	collect := func(stream io.Reader, name string) {
		defer wg.Done()
		scanner := bufio.NewScanner(stream)
		for scanner.Scan() {
			line := scanner.Text()
			logger.Info(line, "stream", name)
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
		}
	}

	wg.Add(2)
	go collect(stdout, "stdout")
	go collect(stderr, "stderr")
	wg.Wait()

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return Output{}, fmt.Errorf("failed to run %q: %w", cmd.Path, err)
		}
		exitCode = exitErr.ExitCode()
	}

	return Output{Lines: lines, ExitCode: exitCode}, nil
}

func flattenEnv(env map[string]string) []string {
	entries := make([]string, 0, len(env))
	for name, value := range env {
		entries = append(entries, name+"="+value)
	}
	return entries
}
