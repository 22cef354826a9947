// Package model defines read-only access to a parsed building model:
// element references, kinds, storey scoping, property and quantity sets,
// and raw geometric representations. A YAML-backed Snapshot implementation
// is provided for tests and the CLI.
package model
