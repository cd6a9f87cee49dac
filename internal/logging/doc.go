// Package logging provides leveled diagnostic output for shov CLI commands.
//
// Verbosity is controlled by two persistent flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors always print. All diagnostic output goes to stderr so
// it never mixes with machine-readable JSON on stdout.
package logging
