package zoodump

import (
	"context"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/accumulo/accumulo-util/lib/layout"
	"github.com/accumulo/accumulo-util/lib/runner"
	"github.com/spf13/afero"
	"path/filepath"
)

// launcherClass is the diagnostic main class started via the launcher.
const launcherClass = "org.apache.accumulo.server.util.DumpZookeeper"

// Options bundles the collaborators and inputs of the dump.
type Options struct {
	Fs     afero.Fs
	Runner runner.IRunner
	Layout layout.Layout
	Args   []string // passed to the dump program verbatim
}

// Run starts DumpZookeeper through the launcher with stdio inherited. The
// launcher's exit status becomes this process's exit status.
func Run(ctx context.Context, opts Options) error {
	launcher, err := findLauncher(opts.Fs, opts.Runner, opts.Layout)
	if err != nil {
		return err
	}

	if err := opts.Runner.Run(ctx, runner.Command{
		Path: launcher,
		Args: append([]string{launcherClass}, opts.Args...),
	}); err != nil {
		return common.ExternalError(err, "zookeeper dump failed")
	}
	return nil
}

// findLauncher locates the accumulo launcher, preferring the local bin
// directory over the search path.
func findLauncher(fsys afero.Fs, run runner.IRunner, lay layout.Layout) (string, error) {
	candidate := filepath.Join(lay.BinDir(), "accumulo")
	if exists, err := afero.Exists(fsys, candidate); err == nil && exists {
		return candidate, nil
	}
	if path, err := run.LookPath("accumulo"); err == nil {
		return path, nil
	}
	return "", common.NewError(common.KindEnvironment, "could not find the accumulo launcher in %s or on PATH", lay.BinDir())
}
