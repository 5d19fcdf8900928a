// Package conf provides read access to the configuration files of an
// installation: the accumulo.properties site file (Java properties format,
// including escapes, line continuation and ${...} references) and the
// tservers host list.
package conf
