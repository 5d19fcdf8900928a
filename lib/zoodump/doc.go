// Package zoodump hands off to the packaged DumpZookeeper diagnostic. The
// tool itself adds nothing here, it only locates the launcher and passes
// the command line through.
package zoodump
