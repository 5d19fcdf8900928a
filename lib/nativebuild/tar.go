package nativebuild

import (
	"archive/tar"
	"errors"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// extractTarGz unpacks a gzip-compressed tar archive below dest. Entries
// that would land outside dest are rejected.
func extractTarGz(fsys afero.Fs, tarball, dest string) error {
	f, err := fsys.Open(tarball)
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to open %s", tarball)
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return common.WrapError(common.KindPrecondition, err, "%s is not a gzip archive", tarball)
	}
	defer func() { _ = gz.Close() }()

	reader := tar.NewReader(gz)
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return common.WrapError(common.KindPrecondition, err, "failed to read %s", tarball)
		}

		target, err := entryPath(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := fsys.MkdirAll(target, header.FileInfo().Mode().Perm()); err != nil {
				return common.WrapError(common.KindEnvironment, err, "failed to create %s", target)
			}
		case tar.TypeReg:
			if err := extractFile(fsys, reader, target, header.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		default:
			// The packaged source archive holds only files and
			// directories, anything else is not a native tarball.
			return common.NewError(common.KindPrecondition, "unsupported entry %q in %s", header.Name, tarball)
		}
	}
}

// entryPath maps an archive entry name to a path below dest and rejects
// absolute names and names escaping dest.
func entryPath(dest, name string) (string, error) {
	if path.IsAbs(name) {
		return "", common.NewError(common.KindPrecondition, "archive entry has absolute path: %s", name)
	}
	clean := path.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", common.NewError(common.KindPrecondition, "archive entry escapes the extraction directory: %s", name)
	}
	return filepath.Join(dest, filepath.FromSlash(clean)), nil
}

// extractFile writes one regular archive entry to target.
func extractFile(fsys afero.Fs, reader io.Reader, target string, perm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to create %s", filepath.Dir(target))
	}

	file, err := fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return common.WrapError(common.KindEnvironment, err, "failed to create %s", target)
	}
	if _, err := io.Copy(file, reader); err != nil {
		_ = file.Close()
		return common.WrapError(common.KindEnvironment, err, "failed to write %s", target)
	}
	return file.Close()
}
