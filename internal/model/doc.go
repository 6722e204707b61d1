// Package model defines the domain types and value objects for the
// mazegen CLI.
//
// This package contains pure data structures with no external dependencies:
// the tri-state Cell, carving Directions, boundary Edges and grid Points.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
