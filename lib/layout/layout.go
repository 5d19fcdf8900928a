package layout

import (
	"github.com/accumulo/accumulo-util/lib/common"
	"os"
	"path/filepath"
)

// Well-known names inside an installation.
const (
	ConfDirName   = "conf"
	LibDirName    = "lib"
	BinDirName    = "bin"
	NativeDirName = "native"

	SitePropertiesFileName = "accumulo.properties"
	TServersFileName       = "tservers"
	EnvFileName            = "accumulo-env"
)

// Layout describes the installation the utility operates on. All paths are
// absolute.
type Layout struct {
	HomeDir string // Installation root (ACCUMULO_HOME)
	ConfDir string // Configuration directory (ACCUMULO_CONF_DIR)
}

// LibDir returns the directory holding jar and tarball artifacts.
func (l Layout) LibDir() string {
	return filepath.Join(l.HomeDir, LibDirName)
}

// BinDir returns the directory holding the launcher binaries.
func (l Layout) BinDir() string {
	return filepath.Join(l.HomeDir, BinDirName)
}

// NativeDir returns the destination directory for the built native library.
func (l Layout) NativeDir() string {
	return filepath.Join(l.LibDir(), NativeDirName)
}

// SitePropertiesPath returns the path of the accumulo.properties file.
func (l Layout) SitePropertiesPath() string {
	return filepath.Join(l.ConfDir, SitePropertiesFileName)
}

// TServersPath returns the path of the tablet server host list.
func (l Layout) TServersPath() string {
	return filepath.Join(l.ConfDir, TServersFileName)
}

// EnvFilePath returns the path of the accumulo-env file holding KEY=VALUE
// pairs (JAVA_HOME, HADOOP_HOME, ...) for this installation.
func (l Layout) EnvFilePath() string {
	return filepath.Join(l.ConfDir, EnvFileName)
}

// Resolve determines the installation layout. An empty homeDir falls back to
// the parent of the directory holding the running binary (the binary is
// expected to live in <home>/bin), an empty confDir falls back to
// <home>/conf.
func Resolve(homeDir, confDir string) (Layout, error) {
	if homeDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return Layout{}, common.WrapError(common.KindEnvironment, err,
				"ACCUMULO_HOME is not set and the installation root could not be derived")
		}
		homeDir = filepath.Dir(filepath.Dir(exe))
	}

	homeDir, err := filepath.Abs(homeDir)
	if err != nil {
		return Layout{}, common.WrapError(common.KindEnvironment, err,
			"invalid installation root %s", homeDir)
	}

	if confDir == "" {
		confDir = filepath.Join(homeDir, ConfDirName)
	}
	confDir, err = filepath.Abs(confDir)
	if err != nil {
		return Layout{}, common.WrapError(common.KindEnvironment, err,
			"invalid configuration directory %s", confDir)
	}

	return Layout{HomeDir: homeDir, ConfDir: confDir}, nil
}
