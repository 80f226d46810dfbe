// Package ui provides the styling engine shared by every presentation layer:
// the table of symbolic style names and their ANSI escape codes, the
// per-category themes and the registry that resolves them by name, and the
// Colorize primitive that wraps text in escape codes.
//
// This package performs no I/O. Writers live in package cli.
package ui
