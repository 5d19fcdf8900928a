// Package runnertest provides a scripted runner.IRunner fake for tests.
//
// The package contains:
//   - Recorder: An IRunner that records every Command it receives instead
//     of executing it, with optional per-command behavior
//
// This package is particularly useful for testing the maintenance
// operations, which are defined entirely by the external commands they
// issue.
//
// Example usage:
//
//	// Creating a recorder that pretends hadoop is installed
//	rec := &runnertest.Recorder{
//		Paths: map[string]string{"hadoop": "/opt/hadoop/bin/hadoop"},
//	}
//
//	// Running the code under test, then asserting on rec.Calls
//	err := op.Run(ctx, rec)
package runnertest
