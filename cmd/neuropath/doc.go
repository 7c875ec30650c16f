// Package main hosts the neuropath CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves the pipeline's configuration table
// once per invocation and surfaces it through inspection commands: show for
// the resolved variables, verify for on-disk existence checks, classify for
// the modality rules, and init to scaffold an overrides file.
//
// Keep this package lean: resolution and verification live in the internal
// packages; commands only render their results.
package main
