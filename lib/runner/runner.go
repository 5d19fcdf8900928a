package runner

import (
	"bytes"
	"context"
	"fmt"
	"github.com/accumulo/accumulo-util/lib/common"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ----------------------------------------
// Implementation
// ----------------------------------------

// execRunner implements IRunner on top of os/exec.
type execRunner struct {
	logger *common.Logger
}

// NewExecRunner creates a new IRunner that executes commands on the local
// host.
func NewExecRunner() IRunner {
	return &execRunner{
		logger: common.CreateLogger("runner"),
	}
}

// prepare builds the exec.Cmd for a Command and logs the invocation.
func (r *execRunner) prepare(ctx context.Context, cmd Command) *exec.Cmd {
	r.logger.Debugf("executing: %s", cmd)

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = cmd.Stdin
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	return c
}

// Run implements IRunner.
func (r *execRunner) Run(ctx context.Context, cmd Command) error {
	c := r.prepare(ctx, cmd)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// RunQuiet implements IRunner.
func (r *execRunner) RunQuiet(ctx context.Context, cmd Command) error {
	c := r.prepare(ctx, cmd)

	var stderr bytes.Buffer
	c.Stdout = io.Discard
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// LookPath implements IRunner.
func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// lastLine returns the last non-blank line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
