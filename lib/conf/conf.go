package conf

import (
	"bufio"
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/magiconair/properties"
	"github.com/spf13/afero"
	"strings"
)

const (
	// PropVFSContextClasspathSystem names the distributed filesystem
	// directory backing the system context of the VFS classloader.
	PropVFSContextClasspathSystem = "general.vfs.context.classpath.system"
)

// --------------------------------------------------------------------------
// Site Properties
// --------------------------------------------------------------------------

// Site provides read access to a loaded accumulo.properties file.
type Site struct {
	props *properties.Properties
}

// LoadSite reads and parses the properties file at path.
func LoadSite(fsys afero.Fs, path string) (*Site, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, common.WrapError(common.KindPrecondition, err, "cannot read %s", path)
	}

	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, common.WrapError(common.KindPrecondition, err, "cannot parse %s", path)
	}

	return &Site{props: props}, nil
}

// Get returns the trimmed value for a key. The boolean return value is false
// for keys that are missing or have an empty value.
func (s *Site) Get(key string) (string, bool) {
	value, ok := s.props.Get(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// VFSSystemClasspath returns the directory configured for the VFS
// classloader system context. Values may carry a trailing `.*` style glob
// (e.g. hdfs://host:8020/accumulo/classpath/.*.jar); the glob tail and any
// trailing slash are stripped so the result is usable as a directory.
func (s *Site) VFSSystemClasspath() (string, bool) {
	value, ok := s.Get(PropVFSContextClasspathSystem)
	if !ok {
		return "", false
	}

	if i := strings.Index(value, ".*"); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimRight(value, "/")

	return value, value != ""
}

// --------------------------------------------------------------------------
// Server List
// --------------------------------------------------------------------------

// CountServers returns the number of servers in a host list file. Blank
// lines and '#' comment lines do not count.
func CountServers(fsys afero.Fs, path string) (int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, common.WrapError(common.KindPrecondition, err, "cannot read server list %s", path)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, common.WrapError(common.KindPrecondition, err, "cannot read server list %s", path)
	}

	return count, nil
}
