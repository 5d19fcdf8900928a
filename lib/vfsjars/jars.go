package vfsjars

import (
	"context"
	"fmt"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/accumulo/accumulo-util/lib/conf"
	"github.com/accumulo/accumulo-util/lib/layout"
	"github.com/accumulo/accumulo-util/lib/runner"
	"github.com/spf13/afero"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// bootJars are needed by the local classpath before the VFS classloader can
// reach HDFS. They are fetched back out of the context directory after the
// upload.
var bootJars = []string{
	"commons-vfs2.jar",
	"accumulo-start.jar",
	"slf4j-api.jar",
}

// Options bundles the collaborators and inputs of the jar upload.
type Options struct {
	Fs         afero.Fs
	Runner     runner.IRunner
	Layout     layout.Layout
	HadoopHome string
	Out        io.Writer // user-facing result lines, defaults to os.Stdout
}

// Run moves the local jars into the system context directory in HDFS,
// raises their replication and restores the boot jars locally.
func Run(ctx context.Context, opts Options) error {
	logger := common.CreateLogger("load-jars")
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	hadoop, err := findHadoop(opts.Fs, opts.Runner, opts.HadoopHome)
	if err != nil {
		return err
	}

	site, err := conf.LoadSite(opts.Fs, opts.Layout.SitePropertiesPath())
	if err != nil {
		return err
	}
	remoteDir, ok := site.VFSSystemClasspath()
	if !ok {
		return common.NewError(common.KindPrecondition,
			"accumulo.properties does not configure the HDFS classloader, set %s", conf.PropVFSContextClasspathSystem)
	}

	servers, err := conf.CountServers(opts.Fs, opts.Layout.TServersPath())
	if err != nil {
		return err
	}
	replication := replicationFor(servers)

	jars, err := afero.Glob(opts.Fs, filepath.Join(opts.Layout.LibDir(), "*.jar"))
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to scan %s", opts.Layout.LibDir())
	}
	if len(jars) == 0 {
		return common.NewError(common.KindPrecondition, "no jar files found in %s", opts.Layout.LibDir())
	}

	if err := ensureRemoteDir(ctx, opts.Runner, hadoop, remoteDir); err != nil {
		return err
	}

	logger.Infof("moving %d jars to %s", len(jars), remoteDir)
	moveArgs := append([]string{"fs", "-moveFromLocal"}, jars...)
	moveArgs = append(moveArgs, remoteDir)
	if err := opts.Runner.RunQuiet(ctx, runner.Command{Path: hadoop, Args: moveArgs}); err != nil {
		return common.ExternalError(err, "failed to move jars to %s", remoteDir)
	}

	logger.Infof("setting replication to %d", replication)
	if err := opts.Runner.RunQuiet(ctx, runner.Command{
		Path: hadoop,
		Args: []string{"fs", "-setrep", "-R", strconv.Itoa(replication), remoteDir},
	}); err != nil {
		return common.ExternalError(err, "failed to set replication on %s", remoteDir)
	}

	for _, name := range bootJars {
		logger.Infof("fetching %s back for the local classpath", name)
		remote := remoteDir + "/" + name
		if err := opts.Runner.RunQuiet(ctx, runner.Command{
			Path: hadoop,
			Args: []string{"fs", "-copyToLocal", remote, opts.Layout.LibDir()},
		}); err != nil {
			return common.ExternalError(err, "failed to copy %s back to %s", name, opts.Layout.LibDir())
		}
		if err := opts.Runner.RunQuiet(ctx, runner.Command{
			Path: hadoop,
			Args: []string{"fs", "-rm", remote},
		}); err != nil {
			return common.ExternalError(err, "failed to remove %s from %s", name, remoteDir)
		}
	}

	_, _ = fmt.Fprintf(out, "Uploaded %d jars to %s with replication %d\n", len(jars), remoteDir, replication)
	return nil
}

// findHadoop locates the hadoop client, preferring HADOOP_HOME over the
// search path.
func findHadoop(fsys afero.Fs, run runner.IRunner, hadoopHome string) (string, error) {
	if hadoopHome != "" {
		candidate := filepath.Join(hadoopHome, "bin", "hadoop")
		if exists, err := afero.Exists(fsys, candidate); err == nil && exists {
			return candidate, nil
		}
	}
	if path, err := run.LookPath("hadoop"); err == nil {
		return path, nil
	}
	return "", common.NewError(common.KindEnvironment, "could not find the hadoop command, set HADOOP_HOME or add hadoop to PATH")
}

// ensureRemoteDir probes for the context directory and creates it on
// demand.
func ensureRemoteDir(ctx context.Context, run runner.IRunner, hadoop, dir string) error {
	if err := run.RunQuiet(ctx, runner.Command{Path: hadoop, Args: []string{"fs", "-ls", dir}}); err == nil {
		return nil
	}
	if err := run.RunQuiet(ctx, runner.Command{Path: hadoop, Args: []string{"fs", "-mkdir", "-p", dir}}); err != nil {
		return common.ExternalError(err, "failed to create %s", dir)
	}
	return nil
}

// replicationFor returns the block replication for the context directory,
// three replicas plus one more per full fifty servers.
func replicationFor(servers int) int {
	return servers/50 + 3
}
