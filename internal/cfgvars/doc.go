// Package cfgvars declares the configuration variables of the pipeline.
//
// It is a passive table: every variable is an Entry explicitly tagged as
// either a relative path fragment (resolved against the base data directory
// during initialization) or a plain constant (thresholds, naming rules,
// modality predicates) that passes through unchanged. The package performs
// no validation and no path resolution itself; that is the job of
// internal/config.
//
// Relative fragments use forward slashes regardless of host platform and may
// contain {subject}-style placeholder tokens and glob characters that stay
// unresolved until a downstream stage substitutes them.
package cfgvars
