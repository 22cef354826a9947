// Package commands defines the egress CLI.
//
// Commands
//
//   - check    Analyze a model snapshot and write the compliance report
//
// The root command configures structured logging before any subcommand
// runs; analysis itself is a single batch pass over the loaded snapshot.
package commands
