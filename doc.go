// Package stile compiles flat-file site content (key-value text records,
// JSON metadata, images) into the canonical JSON documents a browser-side
// renderer consumes, and validates that content before publication.
//
// The package is a thin facade: Build, Validate, CheckDrift and Watch wrap
// the pkg/... packages with shared option handling. Use those packages
// directly for finer control.
package stile
