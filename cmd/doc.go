// Package cmd implements the command-line interface of the accumulo-util
// maintenance tool. It provides one subcommand per administrative operation
// of an Accumulo installation.
//
// The package is organized into several subpackages:
//
//   - native: Build and install the native map shared library
//   - cert: Generate the self-signed certificate material for the monitor
//   - jars: Seed the VFS classloader directory in HDFS with the local jars
//   - zoo: Dump the ZooKeeper state via the packaged diagnostic
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See accumulo-util -help for a list of all commands.
package cmd
