package runner

import (
	"context"
	"io"
	"strings"
)

// ----------------------------------------
// Types
// ----------------------------------------

// Command describes a single external command invocation.
type Command struct {
	Path  string    // Binary to run, either an absolute path or a name resolved on PATH
	Args  []string  // Arguments, not including the binary itself
	Dir   string    // Working directory, empty means inherit
	Env   []string  // Extra KEY=VALUE entries appended to the inherited environment
	Stdin io.Reader // Standard input, nil means none
}

// String renders the command line for log output.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// ----------------------------------------
// Interface
// ----------------------------------------

// IRunner is the interface for executing external commands.
type IRunner interface {
	// Run executes the command with stdout and stderr connected to the
	// user's terminal. It returns an error if the command cannot be
	// started or exits with a nonzero status.
	Run(ctx context.Context, cmd Command) error

	// RunQuiet executes the command with stdout discarded and stderr
	// captured. On failure the captured stderr is attached to the
	// returned error so the diagnostic is not lost.
	RunQuiet(ctx context.Context, cmd Command) error

	// LookPath resolves a binary name against the executable search path
	// and returns its absolute path.
	LookPath(name string) (string, error)
}
