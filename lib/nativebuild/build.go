package nativebuild

import (
	"context"
	"fmt"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/accumulo/accumulo-util/lib/layout"
	"github.com/accumulo/accumulo-util/lib/runner"
	"github.com/spf13/afero"
	"io"
	"os"
	"path/filepath"
)

const (
	// TarballGlob matches the packaged native source archive in the lib
	// directory.
	TarballGlob = "accumulo-native-*.tar.gz"

	// ArtifactName is the shared library the build produces.
	ArtifactName = "libaccumulo.so"
)

// Options bundles the collaborators and inputs of the build operation.
type Options struct {
	Fs       afero.Fs
	Runner   runner.IRunner
	Layout   layout.Layout
	Out      io.Writer // user-facing result lines, defaults to os.Stdout
	MakeArgs []string  // extra arguments passed through to make
}

// Run builds the native library and installs it into lib/native.
func Run(ctx context.Context, opts Options) error {
	logger := common.CreateLogger("native-build")
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	nativeDir := opts.Layout.NativeDir()
	artifact := filepath.Join(nativeDir, ArtifactName)

	// Idempotent: an installed library is left untouched.
	installed, err := afero.Exists(opts.Fs, artifact)
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to check for %s", artifact)
	}
	if installed {
		_, _ = fmt.Fprintf(out, "Accumulo native library already exists in %s\n", nativeDir)
		return nil
	}

	tarball, err := findTarball(opts.Fs, opts.Layout.LibDir())
	if err != nil {
		return err
	}

	scratch, err := afero.TempDir(opts.Fs, "", "accumulo-native-")
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to create scratch directory")
	}
	defer func() {
		if err := opts.Fs.RemoveAll(scratch); err != nil {
			logger.Warningf("failed to remove scratch directory %s: %v", scratch, err)
		}
	}()

	logger.Infof("unpacking %s", tarball)
	if err := extractTarGz(opts.Fs, tarball, scratch); err != nil {
		return err
	}

	srcDir, err := unpackedSourceDir(opts.Fs, scratch)
	if err != nil {
		return err
	}

	logger.Infof("running make in %s", srcDir)
	if err := opts.Runner.Run(ctx, runner.Command{
		Path: "make",
		Args: opts.MakeArgs,
		Dir:  srcDir,
	}); err != nil {
		return common.ExternalError(err, "unable to build native library")
	}

	if err := installArtifact(opts.Fs, filepath.Join(srcDir, ArtifactName), artifact); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Successfully installed native library in %s\n", nativeDir)
	return nil
}

// findTarball returns the single native source archive in libDir. Zero or
// several matches are errors.
func findTarball(fsys afero.Fs, libDir string) (string, error) {
	matches, err := afero.Glob(fsys, filepath.Join(libDir, TarballGlob))
	if err != nil {
		return "", common.WrapError(common.KindEnvironment, err, "failed to scan %s", libDir)
	}
	switch len(matches) {
	case 0:
		return "", common.NewError(common.KindPrecondition, "no native tarball matching %s found in %s", TarballGlob, libDir)
	case 1:
		return matches[0], nil
	default:
		return "", common.NewError(common.KindPrecondition, "found %d native tarballs in %s, expected exactly one", len(matches), libDir)
	}
}

// unpackedSourceDir returns the single top-level directory the archive
// contained.
func unpackedSourceDir(fsys afero.Fs, scratch string) (string, error) {
	entries, err := afero.ReadDir(fsys, scratch)
	if err != nil {
		return "", common.WrapError(common.KindEnvironment, err, "failed to list %s", scratch)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if len(dirs) != 1 {
		return "", common.NewError(common.KindPrecondition, "expected exactly one directory inside the native tarball, found %d", len(dirs))
	}
	return filepath.Join(scratch, dirs[0]), nil
}

// installArtifact copies the built shared library into its final location,
// creating the target directory if needed.
func installArtifact(fsys afero.Fs, src, dest string) error {
	data, err := afero.ReadFile(fsys, src)
	if err != nil {
		return common.NewError(common.KindExternal, "build completed but %s was not produced", src)
	}
	if err := fsys.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to create %s", filepath.Dir(dest))
	}
	if err := afero.WriteFile(fsys, dest, data, 0755); err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to install %s", dest)
	}
	return nil
}
