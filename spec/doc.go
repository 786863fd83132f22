// Package spec defines the specification record the layout search consumes:
// grid parameters, station models (storage slots, transport capability,
// activities, obstacle polygons), parts, and activities.
//
// Loading this record from YAML, and the HTTP wrapper that serves it, are
// external collaborators outside this module's scope (spec.md §1): this
// package only defines the types and the structural Validate checks that
// guard the search from a malformed record.
package spec
