// Package model defines the domain types for the workorders CLI.
//
// This package contains pure data structures with no external dependencies:
// the typed work-order schema returned by the Innergy API, and the RunError
// type that classifies every failure the CLI can encounter. All other
// packages depend on model; model depends on nothing but the standard
// library.
package model
