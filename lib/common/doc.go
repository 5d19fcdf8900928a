// Package common provides core types shared across the maintenance
// operations of this utility. It defines the error classification used to
// derive process exit statuses and a small leveled logger with consistent
// formatting across the application.
//
// The package focuses on:
//   - A typed Error carrying a failure Kind, a short diagnostic message and
//     an optional underlying cause
//   - The ExitStatus mapping from errors to process exit statuses
//   - A leveled logger that keeps diagnostic output on stderr so operation
//     results (paths, passwords, summaries) own stdout
package common
