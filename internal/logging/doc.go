// Package logging provides the diagnostic logging interface for the colorize
// tools. It abstracts the underlying logging implementation so that commands
// and helpers log consistently, while the styled user-facing output stays in
// package cli.
package logging
