// Package runner executes the external tools the maintenance operations
// delegate to (make, keytool, the hadoop client, the store launcher). It
// provides a common contract so operations stay independent of os/exec and
// can be tested against a recording fake.
//
// The package focuses on:
//   - A small Command description (binary, arguments, working directory,
//     extra environment, stdin)
//   - The IRunner interface with passthrough and quiet execution modes
//   - Debug logging of every invocation
//
// Every command is run to completion before control returns; there is no
// backgrounding and no retry.
package runner
