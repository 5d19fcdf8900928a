// Package layout resolves the on-disk installation this utility operates
// on: the installation root (ACCUMULO_HOME), the configuration directory
// (ACCUMULO_CONF_DIR) and the well-known directories and files derived from
// them (lib, bin, the native library directory, accumulo.properties and the
// tservers host list).
//
// Resolve only computes paths; it never touches the filesystem. Each
// operation checks the directories it actually needs so that a missing
// directory produces a diagnostic naming the operation's real requirement.
package layout
