package runnertest

import (
	"context"
	"github.com/accumulo/accumulo-util/lib/runner"
	"os/exec"
)

// Call records a single invocation observed by a Recorder.
type Call struct {
	Cmd   runner.Command
	Quiet bool // true if the call came in via RunQuiet
}

// Recorder is a runner.IRunner that never executes anything. Every
// invocation is appended to Calls; the optional Handler decides the
// result and may simulate side effects (for example creating the files
// a build would produce).
type Recorder struct {
	Calls   []Call
	Handler func(cmd runner.Command) error
	Paths   map[string]string // LookPath results, names not present resolve as not found
}

// Run implements runner.IRunner.
func (r *Recorder) Run(_ context.Context, cmd runner.Command) error {
	return r.record(cmd, false)
}

// RunQuiet implements runner.IRunner.
func (r *Recorder) RunQuiet(_ context.Context, cmd runner.Command) error {
	return r.record(cmd, true)
}

// LookPath implements runner.IRunner.
func (r *Recorder) LookPath(name string) (string, error) {
	if path, ok := r.Paths[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func (r *Recorder) record(cmd runner.Command, quiet bool) error {
	r.Calls = append(r.Calls, Call{Cmd: cmd, Quiet: quiet})
	if r.Handler != nil {
		return r.Handler(cmd)
	}
	return nil
}
